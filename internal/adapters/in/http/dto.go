package http

import (
	"net/http"
	"time"

	"fooddelivery/internal/pkg/results"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of transport-level failures: malformed requests,
// missing or invalid credentials, blocked gates.
type ErrorResponse struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// ResultResponse is the body of every command endpoint. Success carries the
// operation value; failure carries the messages explaining what was refused.
type ResultResponse struct {
	Success bool     `json:"success"`
	Value   any      `json:"value,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// successJSON writes a successful command result with the given value.
func successJSON(ctx echo.Context, status int, value any) error {
	return ctx.JSON(status, ResultResponse{Success: true, Value: value})
}

// failureJSON writes a refused command result. The request was well-formed,
// so this is 422 rather than 400.
func failureJSON[T any](ctx echo.Context, result results.Result[T]) error {
	return ctx.JSON(http.StatusUnprocessableEntity,
		ResultResponse{Success: false, Errors: result.Errors()})
}

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Phone    string   `json:"phone"`
	Password string   `json:"password" validate:"required,min=8,max=72"`
	Roles    []string `json:"roles" validate:"required,min=1,dive,oneof=customer courier admin"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries the signed JWT issued on a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// AccountStateResponse describes the signed-in account for the account-state
// page, where users land while their registration is under review.
type AccountStateResponse struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	State string   `json:"state"`
	Roles []string `json:"roles"`
}

// PlaceOrderItemRequest is one requested menu item within a PlaceOrderRequest.
type PlaceOrderItemRequest struct {
	FoodItemID string `json:"food_item_id" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	Building   string                  `json:"building" validate:"required"`
	RoomNumber string                  `json:"room_number" validate:"required"`
	Notes      string                  `json:"notes"`
	Items      []PlaceOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateFoodItemRequest is the body of POST /api/v1/admin/food-items.
type CreateFoodItemRequest struct {
	Name       string `json:"name" validate:"required"`
	PriceCents int64  `json:"price_cents" validate:"gte=0"`
}

// ReviewAccountRequest is the body of POST /api/v1/admin/users/:id/review.
// Approve is a pointer so that a missing field fails validation instead of
// silently declining the account.
type ReviewAccountRequest struct {
	Approve *bool `json:"approve" validate:"required"`
}

// MenuItemResponse is one entry of GET /api/v1/menu.
type MenuItemResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// ActiveOrderResponse is one entry of GET /api/v1/orders/active.
type ActiveOrderResponse struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	CourierID  *string   `json:"courier_id,omitempty"`
	Building   string    `json:"building"`
	RoomNumber string    `json:"room_number"`
	Notes      string    `json:"notes,omitempty"`
	PlacedAt   time.Time `json:"placed_at"`
	TotalCents int64     `json:"total_cents"`
}
