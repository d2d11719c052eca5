package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Rhea-16/scholarLink/internal/models"
	"github.com/Rhea-16/scholarLink/pkg/response"
)

type profileService interface {
	Register(ctx context.Context, userID string, req models.RegisterProfileRequest) (*models.StudentProfile, error)
	Update(ctx context.Context, userID string, req models.RegisterProfileRequest) (*models.StudentProfile, error)
	Get(ctx context.Context, userID string) (*models.StudentProfile, error)
}

// ProfileHandler exposes the student's eligibility profile.
type ProfileHandler struct {
	service profileService
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(svc profileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// Register godoc
// @Summary Register student profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.RegisterProfileRequest true "Profile"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /profile/register [post]
func (h *ProfileHandler) Register(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	var req models.RegisterProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid profile payload"))
		return
	}
	profile, err := h.service.Register(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, profile)
}

// Get godoc
// @Summary Get own profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 428 {object} response.Envelope
// @Router /profile/me [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	profile, err := h.service.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, profile)
}

// Update godoc
// @Summary Replace own profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.RegisterProfileRequest true "Profile"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 428 {object} response.Envelope
// @Router /profile/me [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	var req models.RegisterProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid profile payload"))
		return
	}
	profile, err := h.service.Update(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, profile)
}
