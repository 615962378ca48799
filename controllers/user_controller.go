package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leonelalz/nutritrack-api-sub000/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	profile, err := ctl.users.GetProfile(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile takes a patch body: absent fields are left unchanged.
func (ctl *UserController) UpdateProfile(c *gin.Context) {
	var patch services.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := ctl.users.UpdateProfile(c.Request.Context(), userID(c), patch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
