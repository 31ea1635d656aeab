package service

import (
	"errors"
	"strings"

	"github.com/hooplens/nba-backend/internal/model"
	"github.com/hooplens/nba-backend/internal/pkg/sanitize"
	"github.com/hooplens/nba-backend/internal/repository"
)

const playersFile = "player-info.json"

var ErrDuplicateName = errors.New("name already exists")

// PlayerService reads and creates player records in the file-backed store.
// lastID tracks the highest id ever observed, touched only under the
// collection lock.
type PlayerService struct {
	store  *repository.FileStore
	lastID int
}

func NewPlayerService(store *repository.FileStore) *PlayerService {
	return &PlayerService{store: store}
}

// List returns the sanitized summary view of every player. A missing
// collection yields repository.ErrNotFound so the handler can 404.
func (s *PlayerService) List() ([]model.PlayerSummary, error) {
	var players []model.Player
	if err := s.store.Load(playersFile, &players); err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, repository.ErrNotFound
	}

	out := make([]model.PlayerSummary, len(players))
	for i, p := range players {
		out[i] = model.PlayerSummary{
			ID:       p.ID,
			Name:     sanitize.String(p.Name),
			Team:     sanitize.String(p.Team),
			Weight:   sanitize.String(orNA(p.Weight)),
			Height:   sanitize.String(orNA(p.Height)),
			Position: sanitize.String(p.Position),
		}
	}
	return out, nil
}

// Create validates nothing (the handler already has), sanitizes the request,
// rejects case-insensitive duplicate names and appends the record with the
// next monotonic id.
func (s *PlayerService) Create(req model.PlayerCreate) (*model.Player, error) {
	unlock := s.store.Lock(playersFile)
	defer unlock()

	var players []model.Player
	if err := s.store.Load(playersFile, &players); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	name := sanitize.String(req.Name)
	for _, p := range players {
		if strings.EqualFold(p.Name, name) {
			return nil, ErrDuplicateName
		}
	}

	// Ids are monotonic past the highest ever observed, never reused.
	for _, p := range players {
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}
	s.lastID++

	player := model.Player{
		ID:        s.lastID,
		Name:      name,
		Position:  sanitize.String(req.Position),
		Team:      sanitize.String(req.Team),
		Height:    orNA(sanitize.String(req.Height)),
		Weight:    orNA(sanitize.String(req.Weight)),
		BirthDate: orNA(sanitize.String(req.BirthDate)),
	}

	players = append(players, player)
	if err := s.store.Save(playersFile, players); err != nil {
		return nil, err
	}
	return &player, nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
