// Package seclog records security-relevant events (failed logins, permission
// denials, traversal attempts, file errors) as structured append-only log
// entries.
package seclog

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Event names, mirrored across handlers and middleware.
const (
	SuccessfulLogin         = "SUCCESSFUL_LOGIN"
	FailedLogin             = "FAILED_LOGIN"
	RateLimitExceeded       = "RATE_LIMIT_EXCEEDED"
	UnauthorizedAccess      = "UNAUTHORIZED_ACCESS"
	InsufficientPermissions = "INSUFFICIENT_PERMISSIONS"
	TraversalAttempt        = "DIRECTORY_TRAVERSAL_ATTEMPT"
	UnauthorizedFileAccess  = "UNAUTHORIZED_FILE_ACCESS"
	JSONDecodeError         = "JSON_DECODE_ERROR"
	FileError               = "FILE_ERROR"
	DuplicatePlayerAttempt  = "DUPLICATE_PLAYER_ATTEMPT"
	DuplicateCoachAttempt   = "DUPLICATE_COACH_ATTEMPT"
	PlayerCreated           = "PLAYER_CREATED"
	CoachCreated            = "COACH_CREATED"
	CoachUpdated            = "COACH_UPDATED"
	CoachDeleted            = "COACH_DELETED"
	CoachNotFound           = "COACH_NOT_FOUND"
	ServerError             = "SERVER_ERROR"
)

// Logger writes security events through a dedicated zap logger. zap cores
// serialize writes, so concurrent callers cannot interleave entries.
type Logger struct {
	log *zap.Logger
}

// New creates a security event logger on top of the given zap logger.
func New(base *zap.Logger) *Logger {
	return &Logger{log: base.Named("security")}
}

// Event appends one security event. Callers attach client address, route and
// request context as fields.
func (l *Logger) Event(event string, fields ...zap.Field) {
	all := make([]zap.Field, 0, len(fields)+2)
	all = append(all,
		zap.String("event", event),
		zap.Time("at", time.Now().UTC()),
	)
	all = append(all, fields...)
	l.log.Warn(event, all...)
}

// Request builds the standard per-request context fields: client address,
// route and request id.
func Request(c *gin.Context) []zap.Field {
	return []zap.Field{
		zap.String("ip", c.ClientIP()),
		zap.String("route", c.FullPath()),
		zap.String("request_id", c.GetString("request_id")),
	}
}
