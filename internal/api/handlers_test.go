package api

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"scoutquest/internal/model"
	"scoutquest/internal/progression"
	"scoutquest/internal/service"
	"scoutquest/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func withSession(session *auth.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.WithSession(c, session)
		c.Next()
	}
}

func allowAll(c *gin.Context) { c.Next() }

func perform(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestAchievementRoutes_Apply(t *testing.T) {
	session := &auth.Session{ScoutID: uuid.New()}
	achievementID := uuid.New()

	tests := []struct {
		name           string
		path           string
		mockSetup      func(as *mockAchievementService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Created",
			path: "/api/v1/achievements/" + achievementID.String() + "/apply",
			mockSetup: func(as *mockAchievementService) {
				as.On("Apply", mock.Anything, session.ScoutID, achievementID).Return(&model.ScoutAchievement{
					ID:            uuid.New(),
					ScoutID:       session.ScoutID,
					AchievementID: achievementID,
					Status:        model.StatusPending,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate",
			path: "/api/v1/achievements/" + achievementID.String() + "/apply",
			mockSetup: func(as *mockAchievementService) {
				as.On("Apply", mock.Anything, session.ScoutID, achievementID).Return(nil, service.ErrAlreadyApplied)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  service.ErrAlreadyApplied.Error(),
		},
		{
			name: "Unknown achievement",
			path: "/api/v1/achievements/" + achievementID.String() + "/apply",
			mockSetup: func(as *mockAchievementService) {
				as.On("Apply", mock.Anything, session.ScoutID, achievementID).Return(nil, service.ErrAchievementNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  service.ErrAchievementNotFound.Error(),
		},
		{
			name:           "Malformed id",
			path:           "/api/v1/achievements/not-a-uuid/apply",
			mockSetup:      func(*mockAchievementService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid achievement_id",
		},
		{
			name: "Storage failure is hidden",
			path: "/api/v1/achievements/" + achievementID.String() + "/apply",
			mockSetup: func(as *mockAchievementService) {
				as.On("Apply", mock.Anything, session.ScoutID, achievementID).Return(nil, errors.New("pq: deadlock"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to apply for achievement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			as := &mockAchievementService{}
			tt.mockSetup(as)

			router := gin.New()
			NewAchievementRoutes(router.Group("/api/v1"), as, withSession(session))

			w := perform(router, http.MethodPost, tt.path, nil)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				var body map[string]string
				decode(t, w, &body)
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				var body ApplicationResponse
				decode(t, w, &body)
				assert.Equal(t, "pending", body.Status)
			}

			as.AssertExpectations(t)
		})
	}
}

func TestAchievementRoutes_Board(t *testing.T) {
	session := &auth.Session{ScoutID: uuid.New()}
	as := &mockAchievementService{}
	as.On("Board", mock.Anything, session.ScoutID, progression.Filter{
		Search:   "fire",
		Category: "outdoor",
		Level:    progression.FilterAll,
	}).Return(&progression.Board{
		Available: []model.Achievement{{ID: uuid.New(), Name: "Fire Building", CategoryID: "outdoor"}},
	}, nil)

	router := gin.New()
	NewAchievementRoutes(router.Group("/api/v1"), as, withSession(session))

	w := perform(router, http.MethodGet, "/api/v1/achievements?search=fire&category=outdoor", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body BoardResponse
	decode(t, w, &body)
	require.Len(t, body.Available, 1)
	assert.Equal(t, "Fire Building", body.Available[0].Name)
	assert.Equal(t, []string{}, body.Available[0].Requirements)
	assert.Empty(t, body.Pending)
	as.AssertExpectations(t)
}

func TestAdminRoutes_Review(t *testing.T) {
	reviewer := &auth.Session{ScoutID: uuid.New(), IsAdmin: true}
	applicationID := uuid.New()

	tests := []struct {
		name           string
		action         string
		mockSetup      func(rs *mockReviewService)
		expectedStatus int
		expectedPoints int
	}{
		{
			name:   "Approve credits points",
			action: "approve",
			mockSetup: func(rs *mockReviewService) {
				rs.On("Approve", mock.Anything, applicationID, reviewer.ScoutID).Return(&model.ReviewOutcome{
					Application:   model.ScoutAchievement{ID: applicationID, Status: model.StatusApproved},
					PointsAwarded: 25,
					ScoutPoints:   125,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedPoints: 125,
		},
		{
			name:   "Approve twice",
			action: "approve",
			mockSetup: func(rs *mockReviewService) {
				rs.On("Approve", mock.Anything, applicationID, reviewer.ScoutID).Return(nil, service.ErrApplicationNotPending)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "Reject",
			action: "reject",
			mockSetup: func(rs *mockReviewService) {
				rs.On("Reject", mock.Anything, applicationID, reviewer.ScoutID).Return(&model.ReviewOutcome{
					Application: model.ScoutAchievement{ID: applicationID, Status: model.StatusRejected},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Unknown application",
			action: "reject",
			mockSetup: func(rs *mockReviewService) {
				rs.On("Reject", mock.Anything, applicationID, reviewer.ScoutID).Return(nil, service.ErrApplicationNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := &mockReviewService{}
			tt.mockSetup(rs)

			router := gin.New()
			NewAdminRoutes(router.Group("/api/v1"), rs, &mockAdminService{}, withSession(reviewer), allowAll)

			w := perform(router, http.MethodPost,
				"/api/v1/admin/applications/"+applicationID.String()+"/"+tt.action, nil)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var body ReviewResponse
				decode(t, w, &body)
				assert.Equal(t, tt.expectedPoints, body.ScoutPoints)
			}
			rs.AssertExpectations(t)
		})
	}
}

func TestAdminRoutes_ValidationErrors(t *testing.T) {
	ads := &mockAdminService{}
	ads.On("CreateAchievement", mock.Anything, mock.Anything).Return(nil, &service.ValidationError{
		Fields: map[string]string{"points": "Points must be at least 1"},
	})

	router := gin.New()
	NewAdminRoutes(router.Group("/api/v1"), &mockReviewService{}, ads, withSession(&auth.Session{}), allowAll)

	w := perform(router, http.MethodPost, "/api/v1/admin/achievements", map[string]interface{}{"name": "Knots"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decode(t, w, &body)
	assert.Equal(t, "validation failed", body.Error)
	assert.Equal(t, "Points must be at least 1", body.Fields["points"])
}

func TestAdminRoutes_DeleteScout(t *testing.T) {
	scoutID := uuid.New()
	ads := &mockAdminService{}
	ads.On("DeleteScout", mock.Anything, scoutID).Return(nil)

	router := gin.New()
	NewAdminRoutes(router.Group("/api/v1"), &mockReviewService{}, ads, withSession(&auth.Session{}), allowAll)

	w := perform(router, http.MethodDelete, "/api/v1/admin/scouts/"+scoutID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	ads.AssertExpectations(t)
}

func TestAuthRoutes(t *testing.T) {
	t.Run("Sign in with wrong password", func(t *testing.T) {
		as := &mockAuthService{}
		as.On("SignIn", mock.Anything, service.SignInInput{Email: "a@b.co", Password: "nope"}).
			Return(nil, "", service.ErrInvalidCredentials)

		router := gin.New()
		NewAuthRoutes(router.Group("/api/v1"), as, allowAll)

		w := perform(router, http.MethodPost, "/api/v1/auth/signin",
			map[string]string{"email": "a@b.co", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Sign up returns token and session", func(t *testing.T) {
		session := &auth.Session{ID: "sid", Email: "a@b.co", Name: "Alex"}
		as := &mockAuthService{}
		as.On("SignUp", mock.Anything, mock.AnythingOfType("service.SignUpInput")).Return(session, "jwt", nil)

		router := gin.New()
		NewAuthRoutes(router.Group("/api/v1"), as, allowAll)

		w := perform(router, http.MethodPost, "/api/v1/auth/signup", map[string]string{
			"email": "a@b.co", "password": "campfire", "confirm_password": "campfire", "name": "Alex",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var body SessionResponse
		decode(t, w, &body)
		assert.Equal(t, "jwt", body.Token)
		assert.Equal(t, "sid", body.Session.ID)
	})

	t.Run("Malformed body", func(t *testing.T) {
		router := gin.New()
		NewAuthRoutes(router.Group("/api/v1"), &mockAuthService{}, allowAll)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Sign out closes the session", func(t *testing.T) {
		session := &auth.Session{ID: "sid"}
		as := &mockAuthService{}
		as.On("SignOut", mock.Anything, session).Return(nil)

		router := gin.New()
		NewAuthRoutes(router.Group("/api/v1"), as, withSession(session))

		w := perform(router, http.MethodPost, "/api/v1/auth/signout", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		as.AssertExpectations(t)
	})
}
