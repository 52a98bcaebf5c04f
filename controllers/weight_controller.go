package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jeffrey-mu/weight-loss/middlewares"
	"github.com/Jeffrey-mu/weight-loss/services"
)

type WeightController struct {
	weights *services.WeightService
}

func NewWeightController(weights *services.WeightService) *WeightController {
	return &WeightController{weights: weights}
}

func (ctl *WeightController) List(c *gin.Context) {
	userID, _ := middlewares.UserID(c)

	records, err := ctl.weights.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

type WeightCreateRequest struct {
	Date    time.Time `json:"date" binding:"required"`
	Weight  float64   `json:"weight" binding:"required"`
	BodyFat *float64  `json:"bodyFat"`
	Waist   *float64  `json:"waist"`
	Hip     *float64  `json:"hip"`
	Note    string    `json:"note"`
}

func (ctl *WeightController) Create(c *gin.Context) {
	userID, _ := middlewares.UserID(c)

	var req WeightCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	record, err := ctl.weights.Create(c.Request.Context(), userID, services.WeightInput{
		Date:    req.Date,
		Weight:  req.Weight,
		BodyFat: req.BodyFat,
		Waist:   req.Waist,
		Hip:     req.Hip,
		Note:    req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

type WeightUpdateRequest struct {
	Date    *time.Time `json:"date"`
	Weight  *float64   `json:"weight"`
	BodyFat *float64   `json:"bodyFat"`
	Waist   *float64   `json:"waist"`
	Hip     *float64   `json:"hip"`
	Note    *string    `json:"note"`
}

func (ctl *WeightController) Update(c *gin.Context) {
	userID, _ := middlewares.UserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req WeightUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	record, err := ctl.weights.Update(c.Request.Context(), userID, id, services.WeightUpdate{
		Date:    req.Date,
		Weight:  req.Weight,
		BodyFat: req.BodyFat,
		Waist:   req.Waist,
		Hip:     req.Hip,
		Note:    req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (ctl *WeightController) Delete(c *gin.Context) {
	userID, _ := middlewares.UserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctl.weights.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Weight record removed"})
}
