package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/utils/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var (
	errMissingToken  = errors.New("missing bearer token")
	errInvalidToken  = errors.New("invalid bearer token")
	errInvalidClaims = errors.New("invalid claims")
)

// BlogClaims are the claims carried by a user's bearer token. The subject is the user id.
type BlogClaims struct {
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
	jwt.RegisteredClaims
}

type JWTAuthMiddleware struct {
	logger *slog.Logger
	secret []byte
	issuer string
}

func NewJWTAuthMiddleware(logger *slog.Logger, secret, issuer string) *JWTAuthMiddleware {
	if secret == "" {
		logger.Warn("JWT_SECRET not set, every request is anonymous")
	}
	return &JWTAuthMiddleware{logger: logger, secret: []byte(secret), issuer: issuer}
}

// OptionalJWT attaches the user when a valid token is present and lets the
// request through either way. An invalid token is treated as no token.
func (m *JWTAuthMiddleware) OptionalJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := m.validateJWT(c)
			if err == nil {
				setUser(c, user)
			} else if !errors.Is(err, errMissingToken) {
				m.logger.Debug("ignoring invalid token on optional route", "error", err)
			}
			return next(c)
		}
	}
}

// RequireJWT rejects the request with 401 unless a valid token is present.
func (m *JWTAuthMiddleware) RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := m.validateJWT(c)
			if err != nil {
				if errors.Is(err, errMissingToken) {
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}
				m.logger.Warn("rejected bearer token", "error", err, "path", c.Request().URL.Path)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			setUser(c, user)
			return next(c)
		}
	}
}

func setUser(c echo.Context, user *domain.UserContext) {
	ctx := domain.SetUserContext(c.Request().Context(), user)
	ctx = logger.WithUserID(ctx, strconv.FormatInt(user.UserID, 10))
	c.SetRequest(c.Request().WithContext(ctx))
}

func (m *JWTAuthMiddleware) validateJWT(c echo.Context) (*domain.UserContext, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	tokenStr, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(tokenStr) == "" {
		return nil, errMissingToken
	}
	if len(m.secret) == 0 {
		return nil, fmt.Errorf("%w: JWT secret not configured", errInvalidToken)
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(tokenStr), &BlogClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*BlogClaims)
	if !ok || !parsed.Valid {
		return nil, errInvalidClaims
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: subject %q is not a user id", errInvalidClaims, claims.Subject)
	}

	user := &domain.UserContext{UserID: userID, Username: claims.Username, IsSuperuser: claims.IsSuperuser}
	if !user.IsValid() {
		return nil, errInvalidClaims
	}
	return user, nil
}

// IssueToken signs a token for user. Used by tooling and tests.
func IssueToken(secret, issuer string, user domain.UserContext, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := BlogClaims{
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.UserID, 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
