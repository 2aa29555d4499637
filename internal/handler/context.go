package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/NikolasPires/mind-flow/internal/auth"
	apperrors "github.com/NikolasPires/mind-flow/internal/errors"
	"github.com/NikolasPires/mind-flow/internal/model"
)

// domainError translates a service error into the standard error payload.
func domainError(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// currentClaims extracts the authenticated caller's claims set by the JWT
// middleware.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	return claims, nil
}

// requirePsicologo returns the caller's claims only when the token carries
// the professional role.
func requirePsicologo(c echo.Context) (*auth.Claims, error) {
	claims, err := currentClaims(c)
	if err != nil {
		return nil, err
	}
	if claims.Role != string(model.RolePsicologo) {
		return nil, echo.NewHTTPError(http.StatusForbidden, "professional role required")
	}
	return claims, nil
}
