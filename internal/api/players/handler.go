package players

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hooplens/nba-backend/internal/model"
	"github.com/hooplens/nba-backend/internal/pkg/seclog"
	"github.com/hooplens/nba-backend/internal/pkg/validate"
	"github.com/hooplens/nba-backend/internal/repository"
	"github.com/hooplens/nba-backend/internal/service"
)

// Handler serves the player endpoints.
type Handler struct {
	players *service.PlayerService
	sec     *seclog.Logger
}

func NewHandler(players *service.PlayerService, sec *seclog.Logger) *Handler {
	return &Handler{players: players, sec: sec}
}

// Info returns the filtered, sanitized player list
func (h *Handler) Info(c *gin.Context) {
	players, err := h.players.List()
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No player data available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch player information"})
		return
	}
	c.JSON(http.StatusOK, players)
}

// Create adds a new player (any authenticated principal)
func (h *Handler) Create(c *gin.Context) {
	var req model.PlayerCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validate.Errors(err)})
		return
	}

	player, err := h.players.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			h.sec.Event(seclog.DuplicatePlayerAttempt,
				append(seclog.Request(c), zap.Int("user_id", c.GetInt("user_id")), zap.String("name", req.Name))...)
			c.JSON(http.StatusConflict, gin.H{"error": "Player with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save player data"})
		return
	}

	h.sec.Event(seclog.PlayerCreated,
		append(seclog.Request(c), zap.Int("user_id", c.GetInt("user_id")),
			zap.Int("player_id", player.ID), zap.String("name", player.Name))...)
	c.JSON(http.StatusCreated, player)
}
