package api

import (
	"context"
	"net/http"
	"time"

	"scoutquest/internal/model"
	"scoutquest/internal/service"
	"scoutquest/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type adminRoutes struct {
	rs  service.ReviewServiceI
	ads service.AdminServiceI
}

func NewAdminRoutes(
	handler *gin.RouterGroup,
	rs service.ReviewServiceI,
	ads service.AdminServiceI,
	sessionMW gin.HandlerFunc,
	adminMW gin.HandlerFunc,
) {
	r := &adminRoutes{rs: rs, ads: ads}
	h := handler.Group("/admin")
	h.Use(sessionMW, adminMW)
	{
		h.GET("/applications", r.ListPending)
		h.POST("/applications/:application_id/approve", r.Approve)
		h.POST("/applications/:application_id/reject", r.Reject)

		h.GET("/scouts", r.ListScouts)
		h.POST("/scouts", r.CreateScout)
		h.PUT("/scouts/:scout_id", r.UpdateScout)
		h.DELETE("/scouts/:scout_id", r.DeleteScout)

		h.GET("/achievements", r.ListAchievements)
		h.POST("/achievements", r.CreateAchievement)
		h.PUT("/achievements/:achievement_id", r.UpdateAchievement)
		h.DELETE("/achievements/:achievement_id", r.DeleteAchievement)
	}
}

type PendingApplicationResponse struct {
	ID                uuid.UUID `json:"id"`
	ScoutID           uuid.UUID `json:"scout_id"`
	ScoutName         string    `json:"scout_name"`
	AchievementID     uuid.UUID `json:"achievement_id"`
	AchievementName   string    `json:"achievement_name"`
	AchievementPoints int       `json:"achievement_points"`
	Category          string    `json:"category"`
	AppliedAt         time.Time `json:"applied_at"`
}

type ReviewResponse struct {
	Application   ApplicationResponse `json:"application"`
	PointsAwarded int                 `json:"points_awarded"`
	ScoutPoints   int                 `json:"scout_points"`
}

func (r *adminRoutes) ListPending(c *gin.Context) {
	apps, err := r.rs.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list applications")
		return
	}

	out := make([]PendingApplicationResponse, len(apps))
	for i, app := range apps {
		out[i] = PendingApplicationResponse{
			ID:                app.ID,
			ScoutID:           app.ScoutID,
			ScoutName:         app.ScoutName,
			AchievementID:     app.AchievementID,
			AchievementName:   app.AchievementName,
			AchievementPoints: app.AchievementPoints,
			Category:          app.CategoryID,
			AppliedAt:         app.AppliedAt,
		}
	}

	c.JSON(http.StatusOK, out)
}

func (r *adminRoutes) Approve(c *gin.Context) {
	r.review(c, r.rs.Approve, "failed to approve application")
}

func (r *adminRoutes) Reject(c *gin.Context) {
	r.review(c, r.rs.Reject, "failed to reject application")
}

type reviewFunc func(ctx context.Context, applicationID, reviewerID uuid.UUID) (*model.ReviewOutcome, error)

func (r *adminRoutes) review(c *gin.Context, fn reviewFunc, fallback string) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	applicationID, ok := uuidParam(c, "application_id")
	if !ok {
		return
	}

	outcome, err := fn(c.Request.Context(), applicationID, session.ScoutID)
	if err != nil {
		respondError(c, err, fallback)
		return
	}

	c.JSON(http.StatusOK, ReviewResponse{
		Application:   toApplicationResponse(outcome.Application),
		PointsAwarded: outcome.PointsAwarded,
		ScoutPoints:   outcome.ScoutPoints,
	})
}

func (r *adminRoutes) ListScouts(c *gin.Context) {
	scouts, err := r.ads.ListScouts(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list scouts")
		return
	}

	out := make([]ScoutResponse, len(scouts))
	for i, s := range scouts {
		out[i] = toScoutResponse(s)
	}

	c.JSON(http.StatusOK, out)
}

func (r *adminRoutes) CreateScout(c *gin.Context) {
	log := logger.Logger()

	var req service.CreateScoutInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	scout, err := r.ads.CreateScout(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to create scout")
		return
	}

	c.JSON(http.StatusCreated, toScoutResponse(scout))
}

func (r *adminRoutes) UpdateScout(c *gin.Context) {
	log := logger.Logger()

	scoutID, ok := uuidParam(c, "scout_id")
	if !ok {
		return
	}

	var req service.UpdateScoutInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	scout, err := r.ads.UpdateScout(c.Request.Context(), scoutID, req)
	if err != nil {
		respondError(c, err, "failed to update scout")
		return
	}

	c.JSON(http.StatusOK, toScoutResponse(scout))
}

func (r *adminRoutes) DeleteScout(c *gin.Context) {
	scoutID, ok := uuidParam(c, "scout_id")
	if !ok {
		return
	}

	if err := r.ads.DeleteScout(c.Request.Context(), scoutID); err != nil {
		respondError(c, err, "failed to delete scout")
		return
	}

	c.Status(http.StatusNoContent)
}

func (r *adminRoutes) ListAchievements(c *gin.Context) {
	achievements, err := r.ads.ListAchievements(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list achievements")
		return
	}

	out := make([]AchievementResponse, len(achievements))
	for i, a := range achievements {
		out[i] = toAchievementResponse(*a)
	}

	c.JSON(http.StatusOK, out)
}

func (r *adminRoutes) CreateAchievement(c *gin.Context) {
	log := logger.Logger()

	var req service.AchievementInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	achievement, err := r.ads.CreateAchievement(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to create achievement")
		return
	}

	c.JSON(http.StatusCreated, toAchievementResponse(*achievement))
}

func (r *adminRoutes) UpdateAchievement(c *gin.Context) {
	log := logger.Logger()

	achievementID, ok := uuidParam(c, "achievement_id")
	if !ok {
		return
	}

	var req service.AchievementInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	achievement, err := r.ads.UpdateAchievement(c.Request.Context(), achievementID, req)
	if err != nil {
		respondError(c, err, "failed to update achievement")
		return
	}

	c.JSON(http.StatusOK, toAchievementResponse(*achievement))
}

func (r *adminRoutes) DeleteAchievement(c *gin.Context) {
	achievementID, ok := uuidParam(c, "achievement_id")
	if !ok {
		return
	}

	if err := r.ads.DeleteAchievement(c.Request.Context(), achievementID); err != nil {
		respondError(c, err, "failed to delete achievement")
		return
	}

	c.Status(http.StatusNoContent)
}
