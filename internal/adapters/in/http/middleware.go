package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"fooddelivery/internal/core/application/gates"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/auth"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userContextKey is where Authenticate stores the loaded user aggregate.
const userContextKey = "current_user"

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests by their Bearer token and loads the
// signed-in user aggregate into the request context. Loading the aggregate on
// every request (rather than trusting claims) means account state and role
// changes take effect immediately, not at token expiry.
type AuthMiddleware struct {
	users  ports.UserRepository
	jwtKey []byte
	logger *slog.Logger
}

// NewAuthMiddleware creates the authentication middleware.
func NewAuthMiddleware(users ports.UserRepository, jwtKey []byte, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		users:  users,
		jwtKey: jwtKey,
		logger: logger.With("component", "auth_middleware"),
	}
}

// Authenticate validates the Bearer token and loads the user it names.
// Requests without a valid token and an existing account get 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return unauthorized(ctx, "Missing bearer token")
		}

		claims, err := auth.ValidateUserJWT(strings.TrimPrefix(header, bearerPrefix), m.jwtKey)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				return unauthorized(ctx, "Token expired")
			}
			return unauthorized(ctx, "Invalid token")
		}

		userID, err := kernel.UUIDFromString(claims.UserID)
		if err != nil {
			return unauthorized(ctx, "Invalid token")
		}

		account, err := m.users.Get(ctx.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return unauthorized(ctx, "Account no longer exists")
			}
			m.logger.ErrorContext(ctx.Request().Context(), "Failed to load account",
				"user_id", claims.UserID, "error", err)
			return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Failed to load account",
			})
		}

		ctx.Set(userContextKey, account)
		return next(ctx)
	}
}

// CurrentUser returns the authenticated user aggregate, or nil when the
// request did not pass through Authenticate.
func CurrentUser(ctx echo.Context) *user.User {
	account, _ := ctx.Get(userContextKey).(*user.User)
	return account
}

// GateMiddleware runs a gate chain against the signed-in user. A blocking
// decision becomes 403 with the redirect path the client should follow,
// typically the account-state page.
func GateMiddleware(chain gates.Chain) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			decision := chain.Check(CurrentUser(ctx))
			if !decision.Allowed() {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:     http.StatusForbidden,
					Message:  "Account is not allowed to perform this action",
					Redirect: decision.RedirectTo(),
				})
			}
			return next(ctx)
		}
	}
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
