package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hooplens/nba-backend/internal/api"
	"github.com/hooplens/nba-backend/internal/api/auth"
	"github.com/hooplens/nba-backend/internal/api/coaches"
	"github.com/hooplens/nba-backend/internal/api/games"
	"github.com/hooplens/nba-backend/internal/api/players"
	"github.com/hooplens/nba-backend/internal/pkg/config"
	"github.com/hooplens/nba-backend/internal/pkg/jwt"
	"github.com/hooplens/nba-backend/internal/pkg/logger"
	"github.com/hooplens/nba-backend/internal/pkg/seclog"
	"github.com/hooplens/nba-backend/internal/repository"
	"github.com/hooplens/nba-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.Init(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	zlog.Info("Starting NBA Backend API")

	secret := cfg.JWT.SecretKey
	if secret == "" {
		secret = randomSecret()
		zlog.Warn("No JWT secret configured, generated an ephemeral one; tokens will not survive restarts")
	}

	sec := seclog.New(zlog)

	store, err := repository.NewFileStore(cfg.Data.Dir, sec)
	if err != nil {
		zlog.Fatal("Failed to open data directory", zap.Error(err))
	}

	users, err := service.NewUserStore()
	if err != nil {
		zlog.Fatal("Failed to seed credential store", zap.Error(err))
	}

	tokens := jwt.NewService([]byte(secret), time.Duration(cfg.JWT.ExpireHours)*time.Hour)

	gin.SetMode(gin.ReleaseMode)

	r := api.SetupRouter(api.Deps{
		Log:            zlog,
		Sec:            sec,
		Limiter:        service.NewRateLimiter(),
		Auth:           auth.NewHandler(users, tokens, sec),
		Players:        players.NewHandler(service.NewPlayerService(store), sec),
		Coaches:        coaches.NewHandler(service.NewCoachService(store), sec),
		Games:          games.NewHandler(service.NewGameService(store)),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	addr := cfg.GetServerAddr()
	zlog.Info("Listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Failed to generate JWT secret: %v", err)
	}
	return hex.EncodeToString(buf)
}
