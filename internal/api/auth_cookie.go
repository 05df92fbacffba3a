package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Sessions expire two hours after issue; revocation of a capability
// flag does not wait for expiry because flags are re-read per request.
const authTokenTTL = 2 * time.Hour

const authCookiePurpose = "auth"

type authClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (handler *Handler) buildAuthToken(userID uint, role string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(authTokenTTL)
	claims := authClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(handler.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign auth token: %w", err)
	}
	return signed, expiresAt, nil
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, userID uint, role string) error {
	now := time.Now()
	token, expiresAt, err := handler.buildAuthToken(userID, role, now)
	if err != nil {
		return err
	}

	sealed, err := handler.cookieCodec.seal(authCookiePurpose, []byte(token))
	if err != nil {
		return fmt.Errorf("seal auth cookie: %w", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    sealed,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// sessionClaims reads and verifies the auth cookie. Every failure mode
// (missing cookie, bad seal, bad signature, expiry) degrades to "no
// session" for the caller.
func (handler *Handler) sessionClaims(c *fiber.Ctx) (*authClaims, error) {
	rawValue := strings.TrimSpace(c.Cookies(authCookieName))
	if rawValue == "" {
		return nil, errors.New("missing auth cookie")
	}

	tokenValue, err := handler.cookieCodec.open(authCookiePurpose, rawValue)
	if err != nil {
		return nil, errors.New("invalid auth cookie")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(string(tokenValue), claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
