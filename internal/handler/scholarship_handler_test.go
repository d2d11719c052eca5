package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rhea-16/scholarLink/internal/middleware"
	"github.com/Rhea-16/scholarLink/internal/models"
	"github.com/Rhea-16/scholarLink/internal/service"
	appErrors "github.com/Rhea-16/scholarLink/pkg/errors"
)

type scholarshipServiceMock struct {
	lastUser  string
	lastReq   models.ScholarshipListRequest
	items     []models.Scholarship
	err       error
	deletedID string
	format    string
}

func (m *scholarshipServiceMock) List(_ context.Context, userID string, req models.ScholarshipListRequest) ([]models.Scholarship, *models.Pagination, error) {
	m.lastUser = userID
	m.lastReq = req
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.items, models.NewPagination(1, 9, len(m.items)), nil
}

func (m *scholarshipServiceMock) Eligible(ctx context.Context, userID string, req models.ScholarshipListRequest) ([]models.Scholarship, *models.Pagination, error) {
	return m.List(ctx, userID, req)
}

func (m *scholarshipServiceMock) Get(_ context.Context, _ string, id string) (*models.Scholarship, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, appErrors.ErrNotFound
}

func (m *scholarshipServiceMock) Create(_ context.Context, _ string, req models.ScholarshipUpsertRequest) (*models.Scholarship, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Scholarship{ID: "new", Name: req.Name}, nil
}

func (m *scholarshipServiceMock) Update(_ context.Context, _ string, id string, req models.ScholarshipUpsertRequest) (*models.Scholarship, error) {
	return &models.Scholarship{ID: id, Name: req.Name}, nil
}

func (m *scholarshipServiceMock) Delete(_ context.Context, _ string, id string) error {
	m.deletedID = id
	return nil
}

func (m *scholarshipServiceMock) Export(_ context.Context, req models.ScholarshipListRequest, format string) (*service.ScholarshipExport, error) {
	m.lastReq = req
	m.format = format
	return &service.ScholarshipExport{Filename: "scholarships.csv", ContentType: "text/csv", Payload: []byte("id\n")}, nil
}

func TestScholarshipHandlerListBindsQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &scholarshipServiceMock{items: []models.Scholarship{{ID: "a", Name: "Merit"}}}
	h := NewScholarshipHandler(svc)

	c, w := newGinContext(http.MethodGet, "/scholarships?state=Kerala&incomeLimit=250000&providerType=Private&sortBy=deadline&page=2&limit=5", nil)
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", svc.lastUser)
	assert.Equal(t, "Kerala", svc.lastReq.Criteria.State)
	assert.Equal(t, "250000", svc.lastReq.Criteria.IncomeLimit)
	assert.Equal(t, "Private", svc.lastReq.Criteria.ProviderType)
	assert.Equal(t, models.SortDeadline, svc.lastReq.SortBy)
	assert.Equal(t, 2, svc.lastReq.Page)
	assert.Equal(t, 5, svc.lastReq.PageSize)

	var envelope listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 1)
	assert.Equal(t, "deadline", envelope.Meta["sort_by"])
	assert.NotNil(t, envelope.Pagination)
}

func TestScholarshipHandlerListUnknownSortFallsBack(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &scholarshipServiceMock{}
	h := NewScholarshipHandler(svc)

	c, w := newGinContext(http.MethodGet, "/scholarships?sortBy=popularity", nil)
	withStudent(c, "user-1")
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.SortRelevance, svc.lastReq.SortBy)
	assert.Equal(t, "user-1", svc.lastUser)
}

func TestScholarshipHandlerListUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewScholarshipHandler(&scholarshipServiceMock{err: appErrors.ErrUnavailable})

	c, w := newGinContext(http.MethodGet, "/scholarships", nil)
	h.List(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestScholarshipHandlerEligibleRequiresUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewScholarshipHandler(&scholarshipServiceMock{})

	c, w := newGinContext(http.MethodGet, "/scholarships/eligible", nil)
	h.Eligible(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestScholarshipHandlerGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewScholarshipHandler(&scholarshipServiceMock{items: []models.Scholarship{{ID: "a", Name: "Merit"}}})

	c, w := newGinContext(http.MethodGet, "/scholarships/a", nil)
	c.Params = gin.Params{{Key: "id", Value: "a"}}
	h.Get(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Merit", envelope.Data["scholarship_name"])

	c, w = newGinContext(http.MethodGet, "/scholarships/zzz", nil)
	c.Params = gin.Params{{Key: "id", Value: "zzz"}}
	h.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScholarshipHandlerExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &scholarshipServiceMock{}
	h := NewScholarshipHandler(svc)

	c, w := newGinContext(http.MethodGet, "/scholarships/export?category=OBC", nil)
	h.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", svc.format)
	assert.Equal(t, "OBC", svc.lastReq.Criteria.Category)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "scholarships.csv")
	assert.Equal(t, "id\n", w.Body.String())
}

func TestScholarshipHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewScholarshipHandler(&scholarshipServiceMock{})

	c, w := newGinContext(http.MethodPost, "/admin/scholarships", []byte(`{"scholarship_name":"Merit","provider_name":"State"}`))
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "admin-1", Role: models.RoleAdmin})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestScholarshipHandlerCreateReadOnlyCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewScholarshipHandler(&scholarshipServiceMock{err: appErrors.Clone(appErrors.ErrForbidden, "catalog is read-only")})

	c, w := newGinContext(http.MethodPost, "/admin/scholarships", []byte(`{"scholarship_name":"Merit","provider_name":"State"}`))
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "admin-1", Role: models.RoleAdmin})
	h.Create(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestScholarshipHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &scholarshipServiceMock{}
	h := NewScholarshipHandler(svc)

	c, w := newGinContext(http.MethodDelete, "/admin/scholarships/a", nil)
	c.Params = gin.Params{{Key: "id", Value: "a"}}
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "admin-1", Role: models.RoleAdmin})
	h.Delete(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "a", svc.deletedID)
}
