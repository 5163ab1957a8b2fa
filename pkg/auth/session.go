package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"scoutquest/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sessionContextKey = "session"
	defaultTTL        = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid session token")

// Session is the signed-in state of one scout. It is created on sign-in and
// removed from the store on sign-out.
type Session struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ScoutID   uuid.UUID `json:"scout_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Config struct {
	Secret string        `json:"secret"`
	Issuer string        `json:"issuer"`
	TTL    time.Duration `json:"ttl"`
}

type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	store  Store
	now    func() time.Time
}

func NewManager(cfg Config, store Store) *Manager {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Manager{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    ttl,
		store:  store,
		now:    time.Now,
	}
}

// Open stores the session and returns the bearer token that refers to it.
func (m *Manager) Open(ctx context.Context, session *Session) (string, error) {
	now := m.now().UTC()
	session.ID = uuid.NewString()
	session.CreatedAt = now
	session.ExpiresAt = now.Add(m.ttl)

	if err := m.store.Save(ctx, session, m.ttl); err != nil {
		return "", err
	}

	claims := jwt.RegisteredClaims{
		ID:        session.ID,
		Subject:   session.UserID.String(),
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	session, err := m.store.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return session, nil
}

func (m *Manager) Close(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}

func (m *Manager) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Logger()

		token, err := tokenFromRequest(c)
		if err != nil {
			log.Info("rejected request without session", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		session, err := m.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, ErrInvalidToken) {
				log.Info("invalid session token", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
				return
			}
			log.Error("failed to resolve session", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// tokenFromRequest reads the bearer token, falling back to the access_token
// query parameter for websocket handshakes.
func tokenFromRequest(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if token := c.Query("access_token"); token != "" {
			return token, nil
		}
		return "", errors.New("authorization header is required")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("invalid authorization format")
	}

	return strings.TrimSpace(parts[1]), nil
}

func SessionFromContext(c *gin.Context) (*Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*Session)
	return session, ok
}

// WithSession is used by tests and internal callers to attach a session
// without going through the middleware.
func WithSession(c *gin.Context, session *Session) {
	c.Set(sessionContextKey, session)
}
