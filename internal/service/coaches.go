package service

import (
	"errors"
	"strings"

	"github.com/hooplens/nba-backend/internal/model"
	"github.com/hooplens/nba-backend/internal/pkg/sanitize"
	"github.com/hooplens/nba-backend/internal/repository"
)

const coachesFile = "coaches.json"

var ErrCoachNotFound = errors.New("coach not found")

// CoachService implements coach CRUD over the file-backed store. lastID is
// the highest id ever observed so deleted ids stay retired; it is read and
// written only under the collection lock.
type CoachService struct {
	store  *repository.FileStore
	lastID int
}

func NewCoachService(store *repository.FileStore) *CoachService {
	return &CoachService{store: store}
}

// List returns every coach, sanitized for output.
func (s *CoachService) List() ([]model.Coach, error) {
	var coaches []model.Coach
	if err := s.store.Load(coachesFile, &coaches); err != nil {
		return nil, err
	}
	for i := range coaches {
		coaches[i] = sanitizeCoach(coaches[i])
	}
	return coaches, nil
}

// Get returns one coach by id.
func (s *CoachService) Get(id int) (*model.Coach, error) {
	var coaches []model.Coach
	if err := s.store.Load(coachesFile, &coaches); err != nil {
		return nil, err
	}
	for _, c := range coaches {
		if c.ID == id {
			c = sanitizeCoach(c)
			return &c, nil
		}
	}
	return nil, ErrCoachNotFound
}

// Create appends a new coach with the next monotonic id, rejecting
// case-insensitive duplicate names.
func (s *CoachService) Create(req model.CoachCreate) (*model.Coach, error) {
	unlock := s.store.Lock(coachesFile)
	defer unlock()

	var coaches []model.Coach
	if err := s.store.Load(coachesFile, &coaches); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	name := sanitize.String(req.Name)
	for _, c := range coaches {
		if strings.EqualFold(c.Name, name) {
			return nil, ErrDuplicateName
		}
	}

	for _, c := range coaches {
		if c.ID > s.lastID {
			s.lastID = c.ID
		}
	}
	s.lastID++

	history := sanitize.Strings(req.History)
	if history == nil {
		history = []string{}
	}

	coach := model.Coach{
		ID:      s.lastID,
		Name:    name,
		Age:     req.Age,
		Team:    sanitize.String(req.Team),
		History: history,
	}

	coaches = append(coaches, coach)
	if err := s.store.Save(coachesFile, coaches); err != nil {
		return nil, err
	}
	return &coach, nil
}

// Update overwrites only the fields present in the request and persists the
// full collection.
func (s *CoachService) Update(id int, req model.CoachUpdate) (*model.Coach, error) {
	unlock := s.store.Lock(coachesFile)
	defer unlock()

	var coaches []model.Coach
	if err := s.store.Load(coachesFile, &coaches); err != nil {
		return nil, err
	}

	idx := -1
	for i, c := range coaches {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCoachNotFound
	}

	coach := &coaches[idx]
	if req.Name != nil {
		coach.Name = sanitize.String(*req.Name)
	}
	if req.Age != nil {
		coach.Age = req.Age
	}
	if req.Team != nil {
		coach.Team = sanitize.String(*req.Team)
	}
	if req.History != nil {
		coach.History = sanitize.Strings(*req.History)
	}

	if err := s.store.Save(coachesFile, coaches); err != nil {
		return nil, err
	}
	out := *coach
	return &out, nil
}

// Delete removes a coach and persists the rest. The collection maximum is
// folded into lastID first so the freed id is never assigned again.
func (s *CoachService) Delete(id int) (*model.Coach, error) {
	unlock := s.store.Lock(coachesFile)
	defer unlock()

	var coaches []model.Coach
	if err := s.store.Load(coachesFile, &coaches); err != nil {
		return nil, err
	}

	for _, c := range coaches {
		if c.ID > s.lastID {
			s.lastID = c.ID
		}
	}

	for i, c := range coaches {
		if c.ID == id {
			coaches = append(coaches[:i], coaches[i+1:]...)
			if err := s.store.Save(coachesFile, coaches); err != nil {
				return nil, err
			}
			return &c, nil
		}
	}
	return nil, ErrCoachNotFound
}

func sanitizeCoach(c model.Coach) model.Coach {
	c.Name = sanitize.String(c.Name)
	c.Team = sanitize.String(c.Team)
	c.History = sanitize.Strings(c.History)
	return c
}
