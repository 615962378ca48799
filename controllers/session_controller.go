package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leonelalz/nutritrack-api-sub000/services"
)

type SessionController struct {
	sessions *services.SessionService
}

func NewSessionController(sessions *services.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

func (ctl *SessionController) LogSession(c *gin.Context) {
	var body struct {
		ExerciseID   uint      `json:"exercise_id" binding:"required"`
		DurationMins int       `json:"duration_mins" binding:"required"`
		PerformedAt  time.Time `json:"performed_at"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.PerformedAt.IsZero() {
		body.PerformedAt = time.Now()
	}

	session, err := ctl.sessions.LogSession(c.Request.Context(), userID(c), body.ExerciseID, body.DurationMins, body.PerformedAt)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (ctl *SessionController) ListRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	list, err := ctl.sessions.ListRecent(c.Request.Context(), userID(c), limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
