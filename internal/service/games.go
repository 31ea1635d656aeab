package service

import (
	"github.com/hooplens/nba-backend/internal/repository"
)

// Collections served verbatim as game results.
const (
	NBAGamesFile      = "nba-games.json"
	FootballGamesFile = "football-games.json"
	CricketGamesFile  = "cricket-games.json"
	stadiumsFile      = "stadiums.json"
)

// GameService serves read-only game result and stadium collections.
type GameService struct {
	store *repository.FileStore
}

func NewGameService(store *repository.FileStore) *GameService {
	return &GameService{store: store}
}

// Results loads a game results collection and returns it verbatim.
func (s *GameService) Results(filename string) (any, error) {
	var games any
	if err := s.store.Load(filename, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// Stadiums returns the raw stored stadium data.
func (s *GameService) Stadiums() (any, error) {
	var stadiums any
	if err := s.store.Load(stadiumsFile, &stadiums); err != nil {
		return nil, err
	}
	return stadiums, nil
}
