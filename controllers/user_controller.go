package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jeffrey-mu/weight-loss/middlewares"
	"github.com/Jeffrey-mu/weight-loss/services"
	"github.com/Jeffrey-mu/weight-loss/utils"
)

type UserController struct {
	users   *services.UserService
	avatars *utils.AvatarStore
}

// NewUserController accepts a nil avatar store; avatar uploads then
// fail with 500 until S3 is configured.
func NewUserController(users *services.UserService, avatars *utils.AvatarStore) *UserController {
	return &UserController{users: users, avatars: avatars}
}

type ProfileRequest struct {
	Nickname      *string    `json:"nickname"`
	Gender        *string    `json:"gender"`
	Age           *int       `json:"age"`
	Height        *float64   `json:"height"`
	InitialWeight *float64   `json:"initialWeight"`
	TargetWeight  *float64   `json:"targetWeight"`
	TargetDate    *time.Time `json:"targetDate"`
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	userID, _ := middlewares.UserID(c)

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ctl.users.UpdateProfile(c.Request.Context(), userID, services.ProfileUpdate{
		Nickname:      req.Nickname,
		Gender:        req.Gender,
		Age:           req.Age,
		Height:        req.Height,
		InitialWeight: req.InitialWeight,
		TargetWeight:  req.TargetWeight,
		TargetDate:    req.TargetDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type AvatarRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

func (ctl *UserController) UploadAvatar(c *gin.Context) {
	userID, _ := middlewares.UserID(c)

	if ctl.avatars == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "avatar storage not configured"})
		return
	}

	var req AvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	url, err := ctl.avatars.UploadBase64Image(c.Request.Context(), req.ImageBase64, fmt.Sprintf("user-%d", userID))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ctl.users.SetAvatar(c.Request.Context(), userID, url); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
