package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leonelalz/nutritrack-api-sub000/models"
	"github.com/leonelalz/nutritrack-api-sub000/services"
)

type EnrollmentController struct {
	enrollments *services.EnrollmentService
}

func NewEnrollmentController(enrollments *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollments: enrollments}
}

func parseKind(raw string) (models.EnrollmentKind, bool) {
	switch models.EnrollmentKind(raw) {
	case models.KindPlan:
		return models.KindPlan, true
	case models.KindRoutine:
		return models.KindRoutine, true
	}
	return "", false
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func (ctl *EnrollmentController) Activate(c *gin.Context) {
	var body struct {
		Kind      string `json:"kind" binding:"required"`
		TargetID  uint   `json:"target_id" binding:"required"`
		StartDate string `json:"start_date"` // YYYY-MM-DD, defaults to today
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind, ok := parseKind(body.Kind)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be PLAN or ROUTINE"})
		return
	}

	var startDate *time.Time
	if body.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", body.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
			return
		}
		startDate = &parsed
	}

	view, err := ctl.enrollments.Activate(c.Request.Context(), userID(c), kind, body.TargetID, startDate, body.Notes)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (ctl *EnrollmentController) Pause(c *gin.Context)    { ctl.mutate(c, ctl.enrollments.Pause) }
func (ctl *EnrollmentController) Resume(c *gin.Context)   { ctl.mutate(c, ctl.enrollments.Resume) }
func (ctl *EnrollmentController) Complete(c *gin.Context) { ctl.mutate(c, ctl.enrollments.Complete) }
func (ctl *EnrollmentController) Cancel(c *gin.Context)   { ctl.mutate(c, ctl.enrollments.Cancel) }
func (ctl *EnrollmentController) Advance(c *gin.Context)  { ctl.mutate(c, ctl.enrollments.AdvanceUnit) }

func (ctl *EnrollmentController) mutate(c *gin.Context, op func(ctx context.Context, userID, enrollmentID uint) (*services.EnrollmentView, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := op(c.Request.Context(), userID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (ctl *EnrollmentController) UpdateNotes(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch services.EnrollmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := ctl.enrollments.UpdateNotes(c.Request.Context(), userID(c), id, patch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (ctl *EnrollmentController) GetActive(c *gin.Context) {
	kind, ok := parseKind(c.Query("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be PLAN or ROUTINE"})
		return
	}
	view, err := ctl.enrollments.GetActive(c.Request.Context(), userID(c), kind)
	if err != nil {
		fail(c, err)
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active enrollment"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (ctl *EnrollmentController) ListAll(c *gin.Context) {
	views, err := ctl.enrollments.ListAll(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
