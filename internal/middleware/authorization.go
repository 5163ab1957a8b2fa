package middleware

import (
	"context"
	"errors"
	"net/http"

	"scoutquest/internal/model"
	"scoutquest/internal/service"
	"scoutquest/pkg/auth"
	"scoutquest/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScoutGetter interface {
	GetScout(ctx context.Context, scoutID uuid.UUID) (*model.Scout, error)
}

type Authorization struct {
	scouts ScoutGetter
}

func NewAuthorization(scouts ScoutGetter) *Authorization {
	return &Authorization{
		scouts: scouts,
	}
}

// AdminOnly reloads the signed-in scout so a revoked admin flag takes effect
// before the session expires.
func (a *Authorization) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Logger()

		session, ok := auth.SessionFromContext(c)
		if !ok {
			log.Error("session not found in context")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		scout, err := a.scouts.GetScout(c.Request.Context(), session.ScoutID)
		if err != nil {
			if errors.Is(err, service.ErrScoutNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "scout not found"})
				return
			}
			log.Error("failed to get scout data", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		if !scout.IsAdmin {
			log.Info("unauthorized access attempt to admin endpoint",
				zap.String("scout_id", scout.ID.String()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		c.Set("is_admin", true)
		c.Next()
	}
}
