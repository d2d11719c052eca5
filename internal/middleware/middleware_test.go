package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rhea-16/scholarLink/internal/models"
	appErrors "github.com/Rhea-16/scholarLink/pkg/errors"
	"github.com/Rhea-16/scholarLink/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubValidator map[string]*models.JWTClaims

func (s stubValidator) ValidateToken(token string) (*models.JWTClaims, error) {
	if claims, ok := s[token]; ok {
		return claims, nil
	}
	return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
}

var tokens = stubValidator{
	"student": {UserID: "u1", Role: models.RoleStudent},
	"admin":   {UserID: "a1", Role: models.RoleAdmin},
}

func perform(r http.Handler, method, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWT(t *testing.T) {
	r := gin.New()
	r.GET("/me", JWT(tokens), func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		require.True(t, ok)
		c.String(http.StatusOK, claims.UserID+"|"+c.GetString(logger.ContextUserIDKey))
	})

	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodGet, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodGet, "/me", "Token student").Code)
	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodGet, "/me", "Bearer nope").Code)

	w := perform(r, http.MethodGet, "/me", "bearer student")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1|u1", w.Body.String())
}

func TestOptionalJWT(t *testing.T) {
	r := gin.New()
	r.GET("/list", OptionalJWT(tokens), func(c *gin.Context) {
		if claims, ok := CurrentClaims(c); ok {
			c.String(http.StatusOK, claims.UserID)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	assert.Equal(t, "anonymous", perform(r, http.MethodGet, "/list", "").Body.String())
	assert.Equal(t, "anonymous", perform(r, http.MethodGet, "/list", "Bearer expired").Body.String())
	assert.Equal(t, "u1", perform(r, http.MethodGet, "/list", "Bearer student").Body.String())
}

func TestRequireRoles(t *testing.T) {
	r := gin.New()
	r.POST("/admin", JWT(tokens), RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.POST("/no-auth", RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusForbidden, perform(r, http.MethodPost, "/admin", "Bearer student").Code)
	assert.Equal(t, http.StatusNoContent, perform(r, http.MethodPost, "/admin", "Bearer admin").Code)
	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodPost, "/no-auth", "").Code)
}

type recordedRequest struct {
	method, path string
	status       int
}

type stubObserver struct {
	requests []recordedRequest
}

func (s *stubObserver) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	s.requests = append(s.requests, recordedRequest{method, path, status})
}

func TestMetrics(t *testing.T) {
	observer := &stubObserver{}
	r := gin.New()
	r.Use(Metrics(observer))
	r.GET("/scholarships/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	perform(r, http.MethodGet, "/scholarships/42", "")
	perform(r, http.MethodGet, "/unknown", "")

	require.Len(t, observer.requests, 2)
	assert.Equal(t, recordedRequest{http.MethodGet, "/scholarships/:id", http.StatusOK}, observer.requests[0])
	assert.Equal(t, "/unknown", observer.requests[1].path)
	assert.Equal(t, http.StatusNotFound, observer.requests[1].status)

	r = gin.New()
	r.Use(Metrics(nil))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/ok", "").Code)
}

type stubAuditWriter struct {
	logs []*models.AuditLog
}

func (s *stubAuditWriter) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	s.logs = append(s.logs, log)
	return nil
}

func TestAudit(t *testing.T) {
	writer := &stubAuditWriter{}
	r := gin.New()
	r.PUT("/profile/:id", JWT(tokens), Audit(writer, "PROFILE_UPDATE", "profile"), func(c *gin.Context) {
		if c.Query("fail") != "" {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	perform(r, http.MethodPut, "/profile/u1?fail=1", "Bearer student")
	assert.Empty(t, writer.logs)

	perform(r, http.MethodPut, "/profile/u1", "Bearer student")
	require.Len(t, writer.logs, 1)
	entry := writer.logs[0]
	assert.Equal(t, "PROFILE_UPDATE", entry.Action)
	assert.Equal(t, "u1", *entry.UserID)
	assert.Equal(t, "u1", *entry.ResourceID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(entry.NewValues, &body))
	assert.Equal(t, "/profile/:id", body["path"])
}

func TestResponseMeta(t *testing.T) {
	r := gin.New()
	r.Use(WithResponseMeta())
	r.GET("/", func(c *gin.Context) {
		SetMeta(c, "sort_by", "amount")
		c.JSON(http.StatusOK, ExtractMeta(c))
	})

	var meta map[string]interface{}
	require.NoError(t, json.Unmarshal(perform(r, http.MethodGet, "/", "").Body.Bytes(), &meta))
	assert.Equal(t, "amount", meta["sort_by"])
	assert.Contains(t, meta, "processing_time_ms")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, ExtractMeta(c))
	SetMeta(c, "k", 1)
	assert.Equal(t, 1, ExtractMeta(c)["k"])
}
