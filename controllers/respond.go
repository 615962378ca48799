package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leonelalz/nutritrack-api-sub000/apperrors"
)

// fail maps domain errors onto HTTP statuses; anything that is not an
// AppError is a 500.
func fail(c *gin.Context, err error) {
	if appErr := apperrors.As(err); appErr != nil {
		c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message, "code": appErr.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// userID reads the authenticated user set by the auth middleware.
func userID(c *gin.Context) uint {
	return c.GetUint("userID")
}
