package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Rhea-16/scholarLink/internal/middleware"
	"github.com/Rhea-16/scholarLink/internal/models"
	appErrors "github.com/Rhea-16/scholarLink/pkg/errors"
	"github.com/Rhea-16/scholarLink/pkg/response"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return nil
	}
	return claims
}

// currentUserID returns the caller's id, or "" for anonymous requests.
func currentUserID(c *gin.Context) string {
	if claims := claimsFromContext(c); claims != nil {
		return claims.UserID
	}
	return ""
}

// requireClaims writes 401 and returns nil when the request is anonymous.
func requireClaims(c *gin.Context) *models.JWTClaims {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
	}
	return claims
}

func bindError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}
