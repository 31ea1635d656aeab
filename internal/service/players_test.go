package service

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/hooplens/nba-backend/internal/model"
	"github.com/hooplens/nba-backend/internal/pkg/seclog"
	"github.com/hooplens/nba-backend/internal/repository"
)

type PlayerServiceSuite struct {
	suite.Suite
	store   *repository.FileStore
	service *PlayerService
}

func TestPlayerServiceSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceSuite))
}

func (s *PlayerServiceSuite) SetupTest() {
	store, err := repository.NewFileStore(s.T().TempDir(), seclog.New(zap.NewNop()))
	s.Require().NoError(err)
	s.store = store
	s.service = NewPlayerService(store)
}

func (s *PlayerServiceSuite) TestCreateFirstPlayer() {
	player, err := s.service.Create(model.PlayerCreate{
		Name:     "LeBron James",
		Position: "Small Forward",
		Team:     "Lakers",
	})
	s.Require().NoError(err)

	s.Equal(1, player.ID)
	s.Equal("LeBron James", player.Name)
	s.Equal("N/A", player.Height)
	s.Equal("N/A", player.Weight)
	s.Equal("N/A", player.BirthDate)
	s.Zero(player.Stats.PointsPerGame)
	s.Zero(player.Stats.AssistsPerGame)
	s.Zero(player.Stats.ReboundsPerGame)
}

func (s *PlayerServiceSuite) TestCreateRejectsCaseInsensitiveDuplicate() {
	_, err := s.service.Create(model.PlayerCreate{Name: "LeBron James", Position: "Small Forward", Team: "Lakers"})
	s.Require().NoError(err)

	_, err = s.service.Create(model.PlayerCreate{Name: "lebron james", Position: "Center", Team: "Heat"})
	s.ErrorIs(err, ErrDuplicateName)
}

func (s *PlayerServiceSuite) TestCreateKeepsOptionalFields() {
	player, err := s.service.Create(model.PlayerCreate{
		Name:      "Stephen Curry",
		Position:  "Point Guard",
		Team:      "Warriors",
		Height:    "6'2\"",
		Weight:    "185 lbs",
		BirthDate: "1988-03-14",
	})
	s.Require().NoError(err)
	s.Equal("6&#x27;2&quot;", player.Height)
	s.Equal("185 lbs", player.Weight)
	s.Equal("1988-03-14", player.BirthDate)
}

func (s *PlayerServiceSuite) TestListReturnsFilteredSummaries() {
	_, err := s.service.Create(model.PlayerCreate{Name: "LeBron James", Position: "Small Forward", Team: "Lakers"})
	s.Require().NoError(err)

	players, err := s.service.List()
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(model.PlayerSummary{
		ID:       1,
		Name:     "LeBron James",
		Team:     "Lakers",
		Weight:   "N/A",
		Height:   "N/A",
		Position: "Small Forward",
	}, players[0])
}

func (s *PlayerServiceSuite) TestListEmptyCollectionIsNotFound() {
	_, err := s.service.List()
	s.ErrorIs(err, repository.ErrNotFound)

	s.Require().NoError(s.store.Save("player-info.json", []model.Player{}))
	_, err = s.service.List()
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *PlayerServiceSuite) TestIDsAreMonotonic() {
	for _, name := range []string{"Player One", "Player Two", "Player Three"} {
		_, err := s.service.Create(model.PlayerCreate{Name: name, Position: "Center", Team: "Team"})
		s.Require().NoError(err)
	}

	var players []model.Player
	s.Require().NoError(s.store.Load("player-info.json", &players))
	s.Equal([]int{1, 2, 3}, []int{players[0].ID, players[1].ID, players[2].ID})
}
