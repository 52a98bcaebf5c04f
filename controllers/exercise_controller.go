package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jeffrey-mu/weight-loss/middlewares"
	"github.com/Jeffrey-mu/weight-loss/services"
)

type ExerciseController struct {
	exercises *services.ExerciseService
}

func NewExerciseController(exercises *services.ExerciseService) *ExerciseController {
	return &ExerciseController{exercises: exercises}
}

func (ctl *ExerciseController) List(c *gin.Context) {
	userID, _ := middlewares.UserID(c)
	date, ok := dateQuery(c)
	if !ok {
		return
	}

	records, err := ctl.exercises.List(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

type ExerciseCreateRequest struct {
	Date     time.Time `json:"date" binding:"required"`
	Type     string    `json:"type" binding:"required"`
	Duration float64   `json:"duration" binding:"required"`
	Calories float64   `json:"calories" binding:"required"`
}

func (ctl *ExerciseController) Create(c *gin.Context) {
	userID, _ := middlewares.UserID(c)

	var req ExerciseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	record, err := ctl.exercises.Create(c.Request.Context(), userID, services.ExerciseInput{
		Date:     req.Date,
		Type:     req.Type,
		Duration: req.Duration,
		Calories: req.Calories,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

type ExerciseUpdateRequest struct {
	Date     *time.Time `json:"date"`
	Type     *string    `json:"type"`
	Duration *float64   `json:"duration"`
	Calories *float64   `json:"calories"`
}

func (ctl *ExerciseController) Update(c *gin.Context) {
	userID, _ := middlewares.UserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ExerciseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	record, err := ctl.exercises.Update(c.Request.Context(), userID, id, services.ExerciseUpdate{
		Date:     req.Date,
		Type:     req.Type,
		Duration: req.Duration,
		Calories: req.Calories,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (ctl *ExerciseController) Delete(c *gin.Context) {
	userID, _ := middlewares.UserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctl.exercises.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exercise record removed"})
}
