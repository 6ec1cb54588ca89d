package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/soundline/storefront/internal/models"
)

const (
	CookieName = "session"
	TTL        = 7 * 24 * time.Hour
)

// Sign issues the HS256 session token carried in the session cookie.
func Sign(userID uint, role models.Role, secret []byte) (string, time.Time, error) {
	exp := time.Now().Add(TTL)
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"exp":  exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

func CreateCookie(value string, exp time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// RequireLogin resolves the session cookie into userID/role on the echo
// context. Requests without a valid session get a 401 before the handler
// runs.
func RequireLogin(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}
			sub, ok := claims["sub"].(float64)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}
			role, _ := claims["role"].(string)

			c.Set("userID", uint(sub))
			c.Set("role", role)
			return next(c)
		}
	}
}

// UserID reads the authenticated user id placed by RequireLogin.
func UserID(c echo.Context) (uint, error) {
	v := c.Get("userID")
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.New("no authenticated user in context")
	}
	return id, nil
}
