package api

import (
	"net/http"

	"scoutquest/internal/progression"
	"scoutquest/internal/service"

	"github.com/gin-gonic/gin"
)

type achievementRoutes struct {
	as service.AchievementServiceI
}

func NewAchievementRoutes(handler *gin.RouterGroup, as service.AchievementServiceI, sessionMW gin.HandlerFunc) {
	r := &achievementRoutes{as: as}
	h := handler.Group("/achievements")
	h.Use(sessionMW)
	{
		h.GET("", r.GetBoard)
		h.POST("/:achievement_id/apply", r.Apply)
	}
}

type BoardResponse struct {
	Available []AchievementResponse `json:"available"`
	Pending   []AchievementResponse `json:"pending"`
	Completed []AchievementResponse `json:"completed"`
	Rejected  []AchievementResponse `json:"rejected"`
}

func (r *achievementRoutes) GetBoard(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	filter := progression.Filter{
		Search:   c.Query("search"),
		Category: c.DefaultQuery("category", progression.FilterAll),
		Level:    c.DefaultQuery("level", progression.FilterAll),
	}

	board, err := r.as.Board(c.Request.Context(), session.ScoutID, filter)
	if err != nil {
		respondError(c, err, "failed to get achievements")
		return
	}

	c.JSON(http.StatusOK, BoardResponse{
		Available: toAchievementList(board.Available),
		Pending:   toAchievementList(board.Pending),
		Completed: toAchievementList(board.Completed),
		Rejected:  toAchievementList(board.Rejected),
	})
}

func (r *achievementRoutes) Apply(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	achievementID, ok := uuidParam(c, "achievement_id")
	if !ok {
		return
	}

	app, err := r.as.Apply(c.Request.Context(), session.ScoutID, achievementID)
	if err != nil {
		respondError(c, err, "failed to apply for achievement")
		return
	}

	c.JSON(http.StatusCreated, toApplicationResponse(*app))
}
