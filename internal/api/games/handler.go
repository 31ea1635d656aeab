package games

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hooplens/nba-backend/internal/service"
)

// Handler serves the read-only game result and stadium endpoints.
type Handler struct {
	games *service.GameService
}

func NewHandler(games *service.GameService) *Handler {
	return &Handler{games: games}
}

// NBAResults returns NBA game results
func (h *Handler) NBAResults(c *gin.Context) {
	h.results(c, "NBA", service.NBAGamesFile)
}

// FootballResults returns football game results
func (h *Handler) FootballResults(c *gin.Context) {
	h.results(c, "Football", service.FootballGamesFile)
}

// CricketResults returns cricket game results
func (h *Handler) CricketResults(c *gin.Context) {
	h.results(c, "Cricket", service.CricketGamesFile)
}

// results centralizes the shared load-and-wrap logic for the sport-specific
// endpoints.
func (h *Handler) results(c *gin.Context, sport, filename string) {
	games, err := h.games.Results(filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to load %s data", sport)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": games})
}

// Stadiums returns the raw stored stadium data
func (h *Handler) Stadiums(c *gin.Context) {
	stadiums, err := h.games.Stadiums()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stadiums data"})
		return
	}
	c.JSON(http.StatusOK, stadiums)
}

// NBAResultsDoc describes the NBA results endpoint for API consumers.
func (h *Handler) NBAResultsDoc(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"endpoint":    "/api/nba-results",
		"method":      http.MethodGet,
		"description": "Retrieve NBA game results from the stored data file",
		"response_structure": gin.H{
			"success_response": gin.H{
				"status_code": http.StatusOK,
				"format": gin.H{
					"result": []gin.H{{
						"id":                   "string - Unique game identifier",
						"event_away_team":      "string - Away team name",
						"event_home_team":      "string - Home team name",
						"event_away_team_logo": "string - URL to away team logo",
						"event_home_team_logo": "string - URL to home team logo",
						"event_final_result":   "string - Final score (e.g., '112 - 108')",
						"event_date":           "string - ISO 8601 formatted date",
						"event_status":         "string - Game status (e.g., 'Finished')",
					}},
				},
			},
			"error_response": gin.H{
				"status_code": http.StatusInternalServerError,
				"format": gin.H{
					"error": "string - Error message describing the failure",
				},
			},
		},
		"related_endpoints": []string{
			"/api/football-results - Similar structure for football games",
			"/api/cricket-results - Similar structure for cricket games",
			"/api/stadiums - NBA stadium information",
			"/api/player-info - NBA player details",
		},
	})
}
