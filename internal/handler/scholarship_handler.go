package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rhea-16/scholarLink/internal/middleware"
	"github.com/Rhea-16/scholarLink/internal/models"
	"github.com/Rhea-16/scholarLink/internal/service"
	appErrors "github.com/Rhea-16/scholarLink/pkg/errors"
	"github.com/Rhea-16/scholarLink/pkg/response"
)

type scholarshipService interface {
	List(ctx context.Context, userID string, req models.ScholarshipListRequest) ([]models.Scholarship, *models.Pagination, error)
	Eligible(ctx context.Context, userID string, req models.ScholarshipListRequest) ([]models.Scholarship, *models.Pagination, error)
	Get(ctx context.Context, userID, id string) (*models.Scholarship, error)
	Create(ctx context.Context, actorID string, req models.ScholarshipUpsertRequest) (*models.Scholarship, error)
	Update(ctx context.Context, actorID, id string, req models.ScholarshipUpsertRequest) (*models.Scholarship, error)
	Delete(ctx context.Context, actorID, id string) error
	Export(ctx context.Context, req models.ScholarshipListRequest, rawFormat string) (*service.ScholarshipExport, error)
}

// ScholarshipHandler serves the scholarship catalog.
type ScholarshipHandler struct {
	service scholarshipService
}

// NewScholarshipHandler constructs the handler.
func NewScholarshipHandler(svc scholarshipService) *ScholarshipHandler {
	return &ScholarshipHandler{service: svc}
}

type listQuery struct {
	models.ScholarshipCriteria
	SortBy string `form:"sortBy"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func bindListRequest(c *gin.Context) (models.ScholarshipListRequest, error) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return models.ScholarshipListRequest{}, bindError(err, "invalid query parameters")
	}
	return models.ScholarshipListRequest{
		Criteria: q.ScholarshipCriteria,
		SortBy:   models.ParseSortMode(q.SortBy),
		Page:     q.Page,
		PageSize: q.Limit,
	}, nil
}

// List godoc
// @Summary List scholarships
// @Description Filter, rank and paginate the catalog. Authenticated callers also receive their saved state.
// @Tags Scholarships
// @Produce json
// @Param search query string false "Name or provider search"
// @Param state query string false "State"
// @Param category query string false "Category"
// @Param gender query string false "Gender"
// @Param incomeLimit query string false "Family income ceiling"
// @Param branch query string false "Course branch"
// @Param providerType query string false "Provider type"
// @Param sortBy query string false "relevance, deadline or amount"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /scholarships [get]
func (h *ScholarshipHandler) List(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, pagination, err := h.service.List(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMeta(c, "sort_by", req.SortBy)
	response.JSON(c, http.StatusOK, items, pagination, middleware.ExtractMeta(c))
}

// Eligible godoc
// @Summary List scholarships matching my profile
// @Tags Scholarships
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or provider search"
// @Param providerType query string false "Provider type"
// @Param sortBy query string false "relevance, deadline or amount"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 428 {object} response.Envelope
// @Router /scholarships/eligible [get]
func (h *ScholarshipHandler) Eligible(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	req, err := bindListRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, pagination, err := h.service.Eligible(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMeta(c, "sort_by", req.SortBy)
	response.JSON(c, http.StatusOK, items, pagination, middleware.ExtractMeta(c))
}

// Get godoc
// @Summary Get scholarship
// @Tags Scholarships
// @Produce json
// @Param id path string true "Scholarship ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /scholarships/{id} [get]
func (h *ScholarshipHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

// Export godoc
// @Summary Export filtered scholarships
// @Tags Scholarships
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /scholarships/export [get]
func (h *ScholarshipHandler) Export(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.service.Export(c.Request.Context(), req, c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}

// Create godoc
// @Summary Create scholarship
// @Tags Scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ScholarshipUpsertRequest true "Scholarship"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin/scholarships [post]
func (h *ScholarshipHandler) Create(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	var req models.ScholarshipUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid scholarship payload"))
		return
	}
	item, err := h.service.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Replace scholarship
// @Tags Scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scholarship ID"
// @Param payload body models.ScholarshipUpsertRequest true "Scholarship"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/scholarships/{id} [put]
func (h *ScholarshipHandler) Update(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	var req models.ScholarshipUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid scholarship payload"))
		return
	}
	item, err := h.service.Update(c.Request.Context(), claims.UserID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

// Delete godoc
// @Summary Delete scholarship
// @Tags Scholarships
// @Security BearerAuth
// @Param id path string true "Scholarship ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /admin/scholarships/{id} [delete]
func (h *ScholarshipHandler) Delete(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	if c.Param("id") == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "id is required"))
		return
	}
	if err := h.service.Delete(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
