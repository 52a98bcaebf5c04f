package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jeffrey-mu/weight-loss/middlewares"
	"github.com/Jeffrey-mu/weight-loss/models"
	"github.com/Jeffrey-mu/weight-loss/services"
)

type AdminController struct {
	admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{admin: admin}
}

func (ctl *AdminController) Overview(c *gin.Context) {
	overview, err := ctl.admin.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (ctl *AdminController) ListUsers(c *gin.Context) {
	users, err := ctl.admin.ListUsers(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type RoleRequest struct {
	Role models.Role `json:"role" binding:"required"`
}

func (ctl *AdminController) UpdateRole(c *gin.Context) {
	actor, _ := middlewares.AdminUser(c)
	targetID, ok := pathID(c)
	if !ok {
		return
	}

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		return
	}

	if err := ctl.admin.UpdateRole(c.Request.Context(), actor.ID, targetID, req.Role); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (ctl *AdminController) DeleteUser(c *gin.Context) {
	actor, _ := middlewares.AdminUser(c)
	targetID, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctl.admin.DeleteUser(c.Request.Context(), actor.ID, targetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// pathID parses the :id path parameter, responding 400 itself when the
// value is not a positive integer.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
