package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hooplens/nba-backend/internal/api/auth"
	"github.com/hooplens/nba-backend/internal/api/coaches"
	"github.com/hooplens/nba-backend/internal/api/games"
	"github.com/hooplens/nba-backend/internal/api/players"
	"github.com/hooplens/nba-backend/internal/pkg/seclog"
	"github.com/hooplens/nba-backend/internal/pkg/validate"
	"github.com/hooplens/nba-backend/internal/service"
)

// Deps carries everything the router wires into handlers and middleware.
type Deps struct {
	Log            *zap.Logger
	Sec            *seclog.Logger
	Limiter        *service.RateLimiter
	Auth           *auth.Handler
	Players        *players.Handler
	Coaches        *coaches.Handler
	Games          *games.Handler
	AllowedOrigins []string
}

// Per-route ceilings. A route override replaces the 50/hour and 200/day
// defaults entirely; only routes without an override fall back to
// service.DefaultLimit.
var (
	loginLimit  = service.Limit{PerMinute: 5}
	createLimit = service.Limit{PerMinute: 5}
	writeLimit  = service.Limit{PerMinute: 10}
	readLimit   = service.Limit{PerMinute: 30}
	lookupLimit = service.Limit{PerMinute: 60}
)

// SetupRouter builds the gin engine with the full middleware chain and
// route table.
func SetupRouter(d Deps) *gin.Engine {
	validate.RegisterJSONTagNames()

	r := gin.New()
	r.Use(Recovery(d.Log, d.Sec))
	r.Use(RequestID())
	r.Use(RequestLogger(d.Log))
	r.Use(SecurityHeaders())
	r.Use(CORS(d.AllowedOrigins))

	rl := func(route string, lim service.Limit) gin.HandlerFunc {
		return RateLimit(d.Limiter, d.Sec, route, lim)
	}

	api := r.Group("/api")
	{
		api.POST("/auth/login", rl("login", loginLimit), d.Auth.Login)

		api.GET("/nba-results", rl("nba-results", readLimit), d.Games.NBAResults)
		api.GET("/football-results", rl("football-results", readLimit), d.Games.FootballResults)
		api.GET("/cricket-results", rl("cricket-results", readLimit), d.Games.CricketResults)
		api.GET("/stadiums", rl("stadiums", readLimit), d.Games.Stadiums)

		api.GET("/player-info", rl("player-info", readLimit), d.Players.Info)
		api.POST("/player", rl("player-create", writeLimit), d.Auth.Middleware(), d.Players.Create)

		api.GET("/coaches", rl("coaches-list", readLimit), d.Coaches.List)
		api.GET("/coaches/:id", rl("coaches-get", lookupLimit), d.Coaches.Get)

		// The rate limiter gates every request before token verification.
		api.POST("/coaches", rl("coaches-create", createLimit),
			d.Auth.Middleware(), d.Auth.RequireAdmin(), d.Coaches.Create)
		api.PUT("/coaches/:id", rl("coaches-update", writeLimit),
			d.Auth.Middleware(), d.Auth.RequireAdmin(), d.Coaches.Update)
		api.DELETE("/coaches/:id", rl("coaches-delete", createLimit),
			d.Auth.Middleware(), d.Auth.RequireAdmin(), d.Coaches.Delete)

		// Placeholders kept for frontend compatibility.
		api.GET("/press-conferences", rl("press-conferences", service.DefaultLimit), func(c *gin.Context) {
			c.JSON(http.StatusOK, []any{})
		})
		api.POST("/summarize", rl("summarize", service.DefaultLimit), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{})
		})

		api.GET("/health", rl("health", service.DefaultLimit), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "NBA Backend API"})
		})
	}

	r.GET("/doc/nba-results", rl("nba-results-doc", service.DefaultLimit), d.Games.NBAResultsDoc)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	})

	return r
}
