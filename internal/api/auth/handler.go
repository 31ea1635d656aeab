package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hooplens/nba-backend/internal/model"
	"github.com/hooplens/nba-backend/internal/pkg/jwt"
	"github.com/hooplens/nba-backend/internal/pkg/seclog"
	"github.com/hooplens/nba-backend/internal/pkg/validate"
	"github.com/hooplens/nba-backend/internal/service"
)

// Handler owns the login endpoint and the token/role middleware.
type Handler struct {
	users  *service.UserStore
	tokens *jwt.Service
	sec    *seclog.Logger
}

func NewHandler(users *service.UserStore, tokens *jwt.Service, sec *seclog.Logger) *Handler {
	return &Handler{users: users, tokens: tokens, sec: sec}
}

// Login authenticates a user and returns an access token
func (h *Handler) Login(c *gin.Context) {
	var req model.UserLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validate.Errors(err)})
		return
	}

	user, err := h.users.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.sec.Event(seclog.FailedLogin, append(seclog.Request(c), zap.String("username", req.Username))...)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	h.sec.Event(seclog.SuccessfulLogin, append(seclog.Request(c), zap.Int("user_id", user.ID))...)
	c.JSON(http.StatusOK, model.TokenResponse{
		AccessToken: token,
		User:        user.Info(),
	})
}

// Middleware validates the bearer token and stores its claims in the
// request context.
func (h *Handler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := jwt.ExtractBearer(c.GetHeader("Authorization"))
		if err != nil {
			h.sec.Event(seclog.UnauthorizedAccess, seclog.Request(c)...)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := h.tokens.Verify(token)
		if err != nil {
			h.sec.Event(seclog.UnauthorizedAccess, seclog.Request(c)...)
			if errors.Is(err, jwt.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			}
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireAdmin rejects authenticated principals whose role claim is not
// admin. Any authenticated principal satisfies the user role.
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != model.RoleAdmin {
			h.sec.Event(seclog.InsufficientPermissions,
				append(seclog.Request(c), zap.Int("user_id", c.GetInt("user_id")))...)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
