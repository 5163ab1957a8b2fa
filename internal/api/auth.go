package api

import (
	"net/http"

	"scoutquest/internal/service"
	"scoutquest/pkg/auth"
	"scoutquest/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type authRoutes struct {
	as service.AuthServiceI
}

func NewAuthRoutes(handler *gin.RouterGroup, as service.AuthServiceI, sessionMW gin.HandlerFunc) {
	r := &authRoutes{as: as}
	h := handler.Group("/auth")
	{
		h.POST("/signup", r.SignUp)
		h.POST("/signin", r.SignIn)
		h.POST("/signout", sessionMW, r.SignOut)
		h.GET("/session", sessionMW, r.GetSession)
	}
}

type SessionResponse struct {
	Token   string        `json:"token,omitempty"`
	Session *auth.Session `json:"session"`
}

func (r *authRoutes) SignUp(c *gin.Context) {
	log := logger.Logger()

	var req service.SignUpInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, token, err := r.as.SignUp(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to sign up")
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Token: token, Session: session})
}

func (r *authRoutes) SignIn(c *gin.Context) {
	log := logger.Logger()

	var req service.SignInInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, token, err := r.as.SignIn(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to sign in")
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Token: token, Session: session})
}

func (r *authRoutes) SignOut(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	if err := r.as.SignOut(c.Request.Context(), session); err != nil {
		respondError(c, err, "failed to sign out")
		return
	}

	c.Status(http.StatusNoContent)
}

func (r *authRoutes) GetSession(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Session: session})
}
