package api

import (
	"net/http"

	"scoutquest/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type scoutRoutes struct {
	ss service.ScoutServiceI
}

// NewReferenceRoutes serves the rank, reward and category lists, which need
// no session.
func NewReferenceRoutes(handler *gin.RouterGroup, ss service.ScoutServiceI) {
	r := &scoutRoutes{ss: ss}
	handler.GET("/ranks", r.GetRanks)
	handler.GET("/rewards", r.GetRewards)
	handler.GET("/categories", r.GetCategories)
}

func NewScoutRoutes(handler *gin.RouterGroup, ss service.ScoutServiceI, sessionMW gin.HandlerFunc) {
	r := &scoutRoutes{ss: ss}
	h := handler.Group("/scouts")
	h.Use(sessionMW)
	{
		h.GET("/me", r.GetProfile)
		h.GET("/me/rewards", r.GetScoutRewards)
		h.GET("/me/categories", r.GetCategoryCompletion)
		h.GET("/leaderboard", r.GetLeaderboard)
	}
}

func (r *scoutRoutes) GetRanks(c *gin.Context) {
	ranks := r.ss.Ranks()
	out := make([]RankResponse, len(ranks))
	for i, rank := range ranks {
		out[i] = toRankResponse(rank)
	}
	c.JSON(http.StatusOK, out)
}

func (r *scoutRoutes) GetRewards(c *gin.Context) {
	rewards := r.ss.Rewards()
	out := make([]RewardResponse, len(rewards))
	for i, reward := range rewards {
		out[i] = toRewardResponse(reward)
	}
	c.JSON(http.StatusOK, out)
}

func (r *scoutRoutes) GetCategories(c *gin.Context) {
	categories := r.ss.Categories()
	out := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		out[i] = toCategoryResponse(category)
	}
	c.JSON(http.StatusOK, out)
}

func (r *scoutRoutes) GetProfile(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	profile, err := r.ss.Profile(c.Request.Context(), session.ScoutID)
	if err != nil {
		respondError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

type ScoutRewardResponse struct {
	RewardResponse
	Unlocked bool `json:"unlocked"`
	Progress int  `json:"progress"`
}

func (r *scoutRoutes) GetScoutRewards(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	rewards, err := r.ss.ScoutRewards(c.Request.Context(), session.ScoutID)
	if err != nil {
		respondError(c, err, "failed to get rewards")
		return
	}

	out := make([]ScoutRewardResponse, len(rewards))
	for i, reward := range rewards {
		out[i] = ScoutRewardResponse{
			RewardResponse: toRewardResponse(reward.Reward),
			Unlocked:       reward.Unlocked,
			Progress:       reward.Progress,
		}
	}

	c.JSON(http.StatusOK, out)
}

type CategoryProgressResponse struct {
	Category  CategoryResponse `json:"category"`
	Completed int              `json:"completed"`
	Total     int              `json:"total"`
	Percent   int              `json:"percent"`
}

func (r *scoutRoutes) GetCategoryCompletion(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	progress, err := r.ss.CategoryCompletion(c.Request.Context(), session.ScoutID)
	if err != nil {
		respondError(c, err, "failed to get category completion")
		return
	}

	out := make([]CategoryProgressResponse, len(progress))
	for i, p := range progress {
		out[i] = CategoryProgressResponse{
			Category:  toCategoryResponse(p.Category),
			Completed: p.Completed,
			Total:     p.Total,
			Percent:   p.Percent,
		}
	}

	c.JSON(http.StatusOK, out)
}

type LeaderboardEntryResponse struct {
	Position int          `json:"position"`
	ScoutID  uuid.UUID    `json:"scout_id"`
	Name     string       `json:"name"`
	Points   int          `json:"points"`
	Rank     RankResponse `json:"rank"`
}

func (r *scoutRoutes) GetLeaderboard(c *gin.Context) {
	entries, err := r.ss.Leaderboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to get leaderboard")
		return
	}

	out := make([]LeaderboardEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntryResponse{
			Position: e.Position,
			ScoutID:  e.ScoutID,
			Name:     e.Name,
			Points:   e.Points,
			Rank:     toRankResponse(e.Rank),
		}
	}

	c.JSON(http.StatusOK, out)
}
