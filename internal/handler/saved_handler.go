package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Rhea-16/scholarLink/internal/models"
	"github.com/Rhea-16/scholarLink/internal/tracking"
	"github.com/Rhea-16/scholarLink/pkg/response"
)

type trackingService interface {
	Save(ctx context.Context, userID, scholarshipID string) (*models.SavedScholarship, error)
	Unsave(ctx context.Context, userID, scholarshipID string) error
	Update(ctx context.Context, userID, scholarshipID string, req models.UpdateTrackingRequest) (*models.SavedScholarship, error)
	List(ctx context.Context, userID string, req models.TrackedListRequest) ([]models.Scholarship, error)
	AddReminder(ctx context.Context, userID, scholarshipID string, req models.CreateReminderRequest) (*models.Reminder, error)
	ToggleReminder(ctx context.Context, userID, scholarshipID, reminderID string) (*models.Reminder, error)
	DeleteReminder(ctx context.Context, userID, scholarshipID, reminderID string) error
}

// SavedHandler manages the caller's saved scholarships and their reminders.
type SavedHandler struct {
	service trackingService
}

// NewSavedHandler constructs the handler.
func NewSavedHandler(svc trackingService) *SavedHandler {
	return &SavedHandler{service: svc}
}

// List godoc
// @Summary List saved scholarships
// @Tags Saved
// @Produce json
// @Security BearerAuth
// @Param filter query string false "all, saved, applied or tracking"
// @Param search query string false "Name or provider search"
// @Success 200 {object} response.Envelope
// @Router /saved [get]
func (h *SavedHandler) List(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	req := models.TrackedListRequest{
		Filter: tracking.ParseListFilter(c.Query("filter")),
		Search: c.Query("search"),
	}
	items, err := h.service.List(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Save godoc
// @Summary Save a scholarship
// @Tags Saved
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scholarship ID"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /saved/{id} [post]
func (h *SavedHandler) Save(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	entry, err := h.service.Save(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// Unsave godoc
// @Summary Remove a saved scholarship
// @Tags Saved
// @Security BearerAuth
// @Param id path string true "Scholarship ID"
// @Success 204
// @Router /saved/{id} [delete]
func (h *SavedHandler) Unsave(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	if err := h.service.Unsave(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Update godoc
// @Summary Update tracking details
// @Tags Saved
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scholarship ID"
// @Param payload body models.UpdateTrackingRequest true "Tracking update"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /saved/{id} [patch]
func (h *SavedHandler) Update(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	var req models.UpdateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid tracking payload"))
		return
	}
	entry, err := h.service.Update(c.Request.Context(), claims.UserID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entry)
}

// AddReminder godoc
// @Summary Add a reminder
// @Tags Saved
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scholarship ID"
// @Param payload body models.CreateReminderRequest true "Reminder"
// @Success 201 {object} response.Envelope
// @Router /saved/{id}/reminders [post]
func (h *SavedHandler) AddReminder(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	var req models.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid reminder payload"))
		return
	}
	reminder, err := h.service.AddReminder(c.Request.Context(), claims.UserID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, reminder)
}

// ToggleReminder godoc
// @Summary Toggle reminder completion
// @Tags Saved
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scholarship ID"
// @Param reminderId path string true "Reminder ID"
// @Success 200 {object} response.Envelope
// @Router /saved/{id}/reminders/{reminderId} [patch]
func (h *SavedHandler) ToggleReminder(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	reminder, err := h.service.ToggleReminder(c.Request.Context(), claims.UserID, c.Param("id"), c.Param("reminderId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, reminder)
}

// DeleteReminder godoc
// @Summary Delete a reminder
// @Tags Saved
// @Security BearerAuth
// @Param id path string true "Scholarship ID"
// @Param reminderId path string true "Reminder ID"
// @Success 204
// @Router /saved/{id}/reminders/{reminderId} [delete]
func (h *SavedHandler) DeleteReminder(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	if err := h.service.DeleteReminder(c.Request.Context(), claims.UserID, c.Param("id"), c.Param("reminderId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
