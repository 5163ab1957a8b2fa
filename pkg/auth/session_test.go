package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]Session)}
}

func (s *memoryStore) Save(_ context.Context, session *Session, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

func (s *memoryStore) Get(_ context.Context, sessionID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *memoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func testManager() (*Manager, *memoryStore) {
	store := newMemoryStore()
	return NewManager(Config{Secret: "test-secret", Issuer: "scoutquest", TTL: time.Hour}, store), store
}

func TestManager_OpenResolveClose(t *testing.T) {
	m, store := testManager()
	ctx := context.Background()

	session := &Session{UserID: uuid.New(), ScoutID: uuid.New(), Email: "scout@example.com", IsAdmin: true}
	token, err := m.Open(ctx, session)
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	assert.Len(t, store.sessions, 1)

	resolved, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, session.ScoutID, resolved.ScoutID)
	assert.True(t, resolved.IsAdmin)

	require.NoError(t, m.Close(ctx, session.ID))

	_, err = m.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_ResolveRejectsBadTokens(t *testing.T) {
	m, _ := testManager()
	ctx := context.Background()

	session := &Session{UserID: uuid.New(), ScoutID: uuid.New()}
	token, err := m.Open(ctx, session)
	require.NoError(t, err)

	other := NewManager(Config{Secret: "other-secret", Issuer: "scoutquest"}, newMemoryStore())
	_, err = other.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Resolve(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{ID: session.ID, Issuer: "scoutquest"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Resolve(ctx, unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_ResolveExpired(t *testing.T) {
	m, _ := testManager()
	ctx := context.Background()

	issued := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issued }
	token, err := m.Open(ctx, &Session{UserID: uuid.New()})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m, _ := testManager()

	token, err := m.Open(context.Background(), &Session{UserID: uuid.New(), Email: "scout@example.com"})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", m.SessionMiddleware(), func(c *gin.Context) {
		session, ok := SessionFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": session.Email})
	})

	tests := []struct {
		name   string
		header string
		query  string
		want   int
	}{
		{name: "missing header", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc", want: http.StatusUnauthorized},
		{name: "valid bearer", header: "Bearer " + token, want: http.StatusOK},
		{name: "valid query token", query: "?access_token=" + token, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Contains(t, w.Body.String(), "scout@example.com")
			}
		})
	}
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, CheckPassword(hash, "correct horse"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), ErrPasswordMismatch)
}
