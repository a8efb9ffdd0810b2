package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const userIDKey = "user_id"

var errNoUserID = errors.New("token carries no numeric user id")

// Authenticator verifies HS256 bearer tokens issued by the identity service.
type Authenticator struct {
	secret []byte
	logger *zap.Logger
}

func NewAuthenticator(secret string, logger *zap.Logger) (*Authenticator, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Authenticator{secret: []byte(secret), logger: logger}, nil
}

// Middleware rejects requests without a valid token with 401 and stores the caller's
// user id in the echo context.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := bearerToken(header)
			if !ok {
				return fail(c, http.StatusUnauthorized, "Access token required", nil)
			}

			userID, err := a.UserID(token)
			if err != nil {
				a.logger.Debug("rejected token", zap.Error(err))
				return fail(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserID verifies token and extracts the user id from the user_id, id or sub claim.
func (a *Authenticator) UserID(token string) (int64, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return 0, err
	}
	if !parsed.Valid {
		return 0, errors.New("invalid token")
	}

	for _, name := range []string{"user_id", "id", "sub"} {
		if raw, ok := claims[name]; ok {
			return claimToID(raw)
		}
	}
	return 0, errNoUserID
}

func claimToID(raw any) (int64, error) {
	var id int64
	switch v := raw.(type) {
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("%w: %v", errNoUserID, v)
		}
		id = int64(v)
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", errNoUserID, v)
		}
		id = parsed
	default:
		return 0, fmt.Errorf("%w: %T", errNoUserID, raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %d", errNoUserID, id)
	}
	return id, nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// currentUserID is only valid behind Middleware.
func currentUserID(c echo.Context) int64 {
	id, _ := c.Get(userIDKey).(int64)
	return id
}
