package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeffrey-mu/weight-loss/middlewares"
	"github.com/Jeffrey-mu/weight-loss/services"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

func (ctl *StatsController) Today(c *gin.Context) {
	userID, _ := middlewares.UserID(c)

	stats, err := ctl.stats.Today(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
