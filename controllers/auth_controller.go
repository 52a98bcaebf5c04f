package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeffrey-mu/weight-loss/middlewares"
	"github.com/Jeffrey-mu/weight-loss/models"
	"github.com/Jeffrey-mu/weight-loss/services"
	"github.com/Jeffrey-mu/weight-loss/utils"
)

type AuthController struct {
	auth   *services.AuthService
	users  *services.UserService
	tokens *utils.TokenManager
	policy *services.AdminPolicy
}

func NewAuthController(auth *services.AuthService, users *services.UserService,
	tokens *utils.TokenManager, policy *services.AdminPolicy) *AuthController {
	return &AuthController{auth: auth, users: users, tokens: tokens, policy: policy}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname"`
}

func (ctl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ctl.auth.Register(c.Request.Context(), services.RegisterInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Nickname: req.Nickname,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := ctl.tokens.Issue(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type LoginRequest struct {
	Account  string `json:"account" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ctl.auth.Login(c.Request.Context(), req.Account, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := ctl.tokens.Issue(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// MeResponse is the caller's own identity projection; the embedded User
// already hides the password hash from JSON.
type MeResponse struct {
	*models.User
	IsAdmin bool `json:"isAdmin"`
}

func (ctl *AuthController) Me(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	user, err := ctl.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MeResponse{User: user, IsAdmin: ctl.policy.IsAdmin(user)})
}
