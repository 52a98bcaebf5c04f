package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jeffrey-mu/weight-loss/middlewares"
	"github.com/Jeffrey-mu/weight-loss/models"
	"github.com/Jeffrey-mu/weight-loss/services"
)

type DietController struct {
	diets *services.DietService
}

func NewDietController(diets *services.DietService) *DietController {
	return &DietController{diets: diets}
}

func (ctl *DietController) List(c *gin.Context) {
	userID, _ := middlewares.UserID(c)
	date, ok := dateQuery(c)
	if !ok {
		return
	}

	records, err := ctl.diets.List(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

type DietCreateRequest struct {
	Date     time.Time       `json:"date" binding:"required"`
	Type     models.MealType `json:"type" binding:"required"`
	FoodName string          `json:"foodName" binding:"required"`
	Amount   *float64        `json:"amount"`
	Calories float64         `json:"calories" binding:"required"`
}

func (ctl *DietController) Create(c *gin.Context) {
	userID, _ := middlewares.UserID(c)

	var req DietCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	record, err := ctl.diets.Create(c.Request.Context(), userID, services.DietInput{
		Date:     req.Date,
		Type:     req.Type,
		FoodName: req.FoodName,
		Amount:   req.Amount,
		Calories: req.Calories,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

type DietUpdateRequest struct {
	Date     *time.Time       `json:"date"`
	Type     *models.MealType `json:"type"`
	FoodName *string          `json:"foodName"`
	Amount   *float64         `json:"amount"`
	Calories *float64         `json:"calories"`
}

func (ctl *DietController) Update(c *gin.Context) {
	userID, _ := middlewares.UserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req DietUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	record, err := ctl.diets.Update(c.Request.Context(), userID, id, services.DietUpdate{
		Date:     req.Date,
		Type:     req.Type,
		FoodName: req.FoodName,
		Amount:   req.Amount,
		Calories: req.Calories,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (ctl *DietController) Delete(c *gin.Context) {
	userID, _ := middlewares.UserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctl.diets.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Diet record removed"})
}
