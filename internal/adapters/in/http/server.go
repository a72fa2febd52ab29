// Package http is the inbound HTTP adapter: an echo server translating JSON
// requests into commands and queries and command Results back into responses.
// Authentication (JWT) and authorization (gates) run as middleware before the
// handlers; handlers themselves only bind, validate, and dispatch.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fooddelivery/internal/core/application/gates"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/auth"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler   commands.RegisterUserCommandHandler
	reviewAccountHandler  commands.ReviewAccountCommandHandler
	placeOrderHandler     commands.PlaceOrderCommandHandler
	acceptOrderHandler    commands.AcceptOrderCommandHandler
	sendOrderHandler      commands.SendOrderCommandHandler
	deliverOrderHandler   commands.DeliverOrderCommandHandler
	createFoodItemHandler commands.CreateFoodItemCommandHandler
	deleteFoodItemHandler commands.DeleteFoodItemCommandHandler

	// Query handlers
	getMenuHandler         queries.GetMenuQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler

	// Login needs direct credential access; everything else goes through
	// commands and queries.
	users    ports.UserRepository
	jwtKey   []byte
	tokenTTL time.Duration

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	reviewAccountHandler commands.ReviewAccountCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	sendOrderHandler commands.SendOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	createFoodItemHandler commands.CreateFoodItemCommandHandler,
	deleteFoodItemHandler commands.DeleteFoodItemCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	users ports.UserRepository,
	jwtKey []byte,
	tokenTTL time.Duration,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerUserHandler:    registerUserHandler,
		reviewAccountHandler:   reviewAccountHandler,
		placeOrderHandler:      placeOrderHandler,
		acceptOrderHandler:     acceptOrderHandler,
		sendOrderHandler:       sendOrderHandler,
		deliverOrderHandler:    deliverOrderHandler,
		createFoodItemHandler:  createFoodItemHandler,
		deleteFoodItemHandler:  deleteFoodItemHandler,
		getMenuHandler:         getMenuHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
		users:                  users,
		jwtKey:                 jwtKey,
		tokenTTL:               tokenTTL,
		logger:                 logger.With("component", "http_server"),
	}
}

// RegisterRoutes wires all endpoints onto the echo instance, grouped by the
// gates that guard them.
func (s *Server) RegisterRoutes(e *echo.Echo, authMiddleware *AuthMiddleware) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)

	// Signed in, any account state. The account-state page is the one place
	// a Pending or Declined user may still reach.
	authed := api.Group("", authMiddleware.Authenticate)
	authed.GET("/account/state", s.AccountState)

	// Signed in and approved.
	approved := authed.Group("",
		GateMiddleware(gates.NewChain(gates.NewAccountStateGate())))
	approved.GET("/menu", s.GetMenu)

	customers := approved.Group("",
		GateMiddleware(gates.NewChain(gates.NewRoleGate(user.RoleCustomer))))
	customers.POST("/orders", s.PlaceOrder)

	couriers := approved.Group("",
		GateMiddleware(gates.NewChain(gates.NewRoleGate(user.RoleCourier))))
	couriers.GET("/orders/active", s.GetActiveOrders)
	couriers.POST("/orders/:id/accept", s.AcceptOrder)
	couriers.POST("/orders/:id/send", s.SendOrder)
	couriers.POST("/orders/:id/deliver", s.DeliverOrder)

	admins := approved.Group("/admin",
		GateMiddleware(gates.NewChain(gates.NewRoleGate(user.RoleAdmin))))
	admins.POST("/food-items", s.CreateFoodItem)
	admins.DELETE("/food-items/:id", s.DeleteFoodItem)
	admins.POST("/users/:id/review", s.ReviewAccount)
}

// Register handles POST /api/v1/auth/register - creates a Pending account.
func (s *Server) Register(ctx echo.Context) error {
	var request RegisterRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	roles := make([]user.Role, len(request.Roles))
	for i, role := range request.Roles {
		roles[i] = user.Role(role)
	}

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		request.Name,
		request.Email,
		request.Phone,
		request.Password,
		roles,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.internalError(ctx, "Failed to register account", err)
	}
	if !result.IsSuccess() {
		return failureJSON(ctx, result)
	}

	return successJSON(ctx, http.StatusCreated, result.MustValue().String())
}

// Login handles POST /api/v1/auth/login - issues a JWT for valid credentials.
// Unknown emails and wrong passwords are indistinguishable on purpose.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	account, err := s.users.GetByEmail(ctx.Request().Context(), request.Email)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return unauthorized(ctx, "Invalid credentials")
		}
		return s.internalError(ctx, "Failed to sign in", err)
	}

	if !auth.ComparePassword(request.Password, account.PasswordHash()) {
		return unauthorized(ctx, "Invalid credentials")
	}

	token, err := auth.GenerateUserJWT(account.ID().String(), s.tokenTTL, s.jwtKey)
	if err != nil {
		return s.internalError(ctx, "Failed to sign in", err)
	}

	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// AccountState handles GET /api/v1/account/state - shows the signed-in
// account's review state. Reachable in every account state.
func (s *Server) AccountState(ctx echo.Context) error {
	account := CurrentUser(ctx)

	roles := make([]string, 0, len(account.Roles()))
	for _, role := range account.Roles() {
		roles = append(roles, role.String())
	}

	return ctx.JSON(http.StatusOK, AccountStateResponse{
		ID:    account.ID().String(),
		Name:  account.Name(),
		State: account.State().String(),
		Roles: roles,
	})
}

// GetMenu handles GET /api/v1/menu - lists all food items.
func (s *Server) GetMenu(ctx echo.Context) error {
	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve menu", err)
	}

	response := make([]MenuItemResponse, len(menu))
	for i, item := range menu {
		response[i] = MenuItemResponse{
			ID:         item.ID.String(),
			Name:       item.Name,
			PriceCents: item.Price.Cents(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders - places an order for the signed-in
// customer.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	items := make([]commands.PlaceOrderItem, 0, len(request.Items))
	for _, requested := range request.Items {
		foodItemID, err := kernel.UUIDFromString(requested.FoodItemID)
		if err != nil {
			return badRequest(ctx, err)
		}

		item, err := commands.NewPlaceOrderItem(foodItemID, requested.Quantity)
		if err != nil {
			return badRequest(ctx, err)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(),
		CurrentUser(ctx).ID(),
		request.Building,
		request.RoomNumber,
		request.Notes,
		items,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.internalError(ctx, "Failed to place order", err)
	}
	if !result.IsSuccess() {
		return failureJSON(ctx, result)
	}

	return successJSON(ctx, http.StatusCreated, result.MustValue().String())
}

// GetActiveOrders handles GET /api/v1/orders/active - lists undelivered
// orders, oldest first.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve active orders", err)
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, activeOrder := range orders {
		var courierID *string
		if activeOrder.CourierID != nil {
			id := activeOrder.CourierID.String()
			courierID = &id
		}

		response[i] = ActiveOrderResponse{
			ID:         activeOrder.ID.String(),
			Status:     activeOrder.Status.String(),
			CourierID:  courierID,
			Building:   activeOrder.Location.Building(),
			RoomNumber: activeOrder.Location.RoomNumber(),
			Notes:      activeOrder.Location.Notes(),
			PlacedAt:   activeOrder.PlacedAt,
			TotalCents: activeOrder.Total.Cents(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept - assigns the order to
// the signed-in courier.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, CurrentUser(ctx).ID())
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.internalError(ctx, "Failed to accept order", err)
	}
	if !result.IsSuccess() {
		return failureJSON(ctx, result)
	}

	return successJSON(ctx, http.StatusOK, result.MustValue().String())
}

// SendOrder handles POST /api/v1/orders/:id/send - marks the order as on its
// way. Only the assigned courier may do this.
func (s *Server) SendOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSendOrderCommand(orderID, CurrentUser(ctx).ID())
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.sendOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.internalError(ctx, "Failed to send order", err)
	}
	if !result.IsSuccess() {
		return failureJSON(ctx, result)
	}

	return successJSON(ctx, http.StatusOK, result.MustValue().String())
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver - completes the
// delivery. Only the assigned courier may do this.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, CurrentUser(ctx).ID())
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.internalError(ctx, "Failed to deliver order", err)
	}
	if !result.IsSuccess() {
		return failureJSON(ctx, result)
	}

	return successJSON(ctx, http.StatusOK, result.MustValue().String())
}

// CreateFoodItem handles POST /api/v1/admin/food-items - adds a menu entry.
func (s *Server) CreateFoodItem(ctx echo.Context) error {
	var request CreateFoodItemRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	cmd, err := commands.NewCreateFoodItemCommand(
		kernel.NewUUID(), request.Name, request.PriceCents)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.createFoodItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.internalError(ctx, "Failed to create food item", err)
	}
	if !result.IsSuccess() {
		return failureJSON(ctx, result)
	}

	return successJSON(ctx, http.StatusCreated, result.MustValue().String())
}

// DeleteFoodItem handles DELETE /api/v1/admin/food-items/:id - removes a menu
// entry. Existing order lines keep their snapshots.
func (s *Server) DeleteFoodItem(ctx echo.Context) error {
	foodItemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteFoodItemCommand(foodItemID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.deleteFoodItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.internalError(ctx, "Failed to delete food item", err)
	}
	if !result.IsSuccess() {
		return failureJSON(ctx, result)
	}

	return successJSON(ctx, http.StatusOK, result.MustValue().String())
}

// ReviewAccount handles POST /api/v1/admin/users/:id/review - approves or
// declines a Pending account.
func (s *Server) ReviewAccount(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var request ReviewAccountRequest
	if err = bindAndValidate(ctx, &request); err != nil {
		return err
	}

	cmd, err := commands.NewReviewAccountCommand(userID, *request.Approve)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.reviewAccountHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.internalError(ctx, "Failed to review account", err)
	}
	if !result.IsSuccess() {
		return failureJSON(ctx, result)
	}

	return successJSON(ctx, http.StatusOK, result.MustValue().String())
}

func bindAndValidate(ctx echo.Context, request any) error {
	if err := ctx.Bind(request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}
	return nil
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func (s *Server) internalError(ctx echo.Context, message string, err error) error {
	s.logger.ErrorContext(ctx.Request().Context(), message, "error", err)
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
