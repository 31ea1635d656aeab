package coaches

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hooplens/nba-backend/internal/model"
	"github.com/hooplens/nba-backend/internal/pkg/seclog"
	"github.com/hooplens/nba-backend/internal/pkg/validate"
	"github.com/hooplens/nba-backend/internal/repository"
	"github.com/hooplens/nba-backend/internal/service"
)

// Coach ids outside this range are rejected before any storage access.
const maxCoachID = 10000

// Handler serves the coach CRUD endpoints.
type Handler struct {
	coaches *service.CoachService
	sec     *seclog.Logger
}

func NewHandler(coaches *service.CoachService, sec *seclog.Logger) *Handler {
	return &Handler{coaches: coaches, sec: sec}
}

// List returns all coaches
func (h *Handler) List(c *gin.Context) {
	coaches, err := h.coaches.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load coaches data"})
		return
	}
	c.JSON(http.StatusOK, coaches)
}

// Get returns a single coach by id
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.coachID(c)
	if !ok {
		return
	}

	coach, err := h.coaches.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrCoachNotFound) {
			h.sec.Event(seclog.CoachNotFound, append(seclog.Request(c), zap.Int("coach_id", id))...)
			c.JSON(http.StatusNotFound, gin.H{"error": "Coach not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load coaches data"})
		return
	}
	c.JSON(http.StatusOK, coach)
}

// Create adds a new coach (admin only)
func (h *Handler) Create(c *gin.Context) {
	var req model.CoachCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validate.Errors(err)})
		return
	}

	coach, err := h.coaches.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			h.sec.Event(seclog.DuplicateCoachAttempt,
				append(seclog.Request(c), zap.Int("user_id", c.GetInt("user_id")), zap.String("name", req.Name))...)
			c.JSON(http.StatusConflict, gin.H{"error": "Coach with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save coach data"})
		return
	}

	h.sec.Event(seclog.CoachCreated,
		append(seclog.Request(c), zap.Int("user_id", c.GetInt("user_id")), zap.Int("coach_id", coach.ID))...)
	c.JSON(http.StatusCreated, coach)
}

// Update partially updates an existing coach (admin only)
func (h *Handler) Update(c *gin.Context) {
	id, ok := h.coachID(c)
	if !ok {
		return
	}

	var req model.CoachUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validate.Errors(err)})
		return
	}

	coach, err := h.coaches.Update(id, req)
	if err != nil {
		if errors.Is(err, service.ErrCoachNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coach not found"})
			return
		}
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrCorruptData) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load coaches data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save coach data"})
		return
	}

	h.sec.Event(seclog.CoachUpdated,
		append(seclog.Request(c), zap.Int("user_id", c.GetInt("user_id")), zap.Int("coach_id", id))...)
	c.JSON(http.StatusOK, coach)
}

// Delete removes a coach (admin only)
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.coachID(c)
	if !ok {
		return
	}

	coach, err := h.coaches.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrCoachNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coach not found"})
			return
		}
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrCorruptData) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load coaches data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save coaches data"})
		return
	}

	h.sec.Event(seclog.CoachDeleted,
		append(seclog.Request(c), zap.Int("user_id", c.GetInt("user_id")),
			zap.Int("coach_id", id), zap.String("name", coach.Name))...)
	c.JSON(http.StatusOK, gin.H{"result": true, "message": "Coach deleted successfully"})
}

// coachID parses and bounds-checks the id path parameter. Out-of-range ids
// are rejected before the collection is ever read.
func (h *Handler) coachID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 || id > maxCoachID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coach ID"})
		return 0, false
	}
	return id, true
}
