package api

import (
	"errors"
	"net/http"

	"scoutquest/internal/service"
	"scoutquest/pkg/auth"
	"scoutquest/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps a service error to its HTTP status. Unknown errors are
// logged and answered with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrValidation.Error(), "fields": verr.Fields})
	case errors.Is(err, service.ErrScoutNotFound),
		errors.Is(err, service.ErrAchievementNotFound),
		errors.Is(err, service.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyApplied),
		errors.Is(err, service.ErrApplicationNotPending),
		errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		logger.Logger().Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func currentSession(c *gin.Context) (*auth.Session, bool) {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		logger.Logger().Error("session not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return nil, false
	}
	return session, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		logger.Logger().Info("failed to parse "+name, zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
