package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/consultingshop/checkout-service/internal/entities"
	"github.com/consultingshop/checkout-service/internal/service"
	"github.com/consultingshop/checkout-service/internal/viva"
	"github.com/consultingshop/checkout-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CheckoutService interface {
	StartCheckout(ctx context.Context, customer entities.Customer, billing entities.Billing, items []service.CartItem) (orderCode, redirectURL string, err error)
	CompleteCheckout(ctx context.Context, orderCode, transactionID string) (service.VerifyResult, error)
	GetOrder(ctx context.Context, orderCode string) (entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CheckoutService
}

func NewHTTPHandler(logger *slog.Logger, svc CheckoutService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/checkout", h.StartCheckout)
	r.Get("/checkout/verify", h.VerifyCheckout)
	r.Get("/orders/{order_code}", h.GetOrder)
	r.Get("/admin/orders", h.LatestOrders)
}

// StartCheckout creates a payment order and returns the redirect URL.
// @Summary      Start checkout
// @Description  Prices the cart server-side, creates a gateway order and returns the hosted payment page URL
// @Tags         checkout
// @Accept       json
// @Param        request  body      CheckoutRequest  true  "Cart and customer"
// @Success      200  {object}  CheckoutResponse
// @Failure      400  {object}  FailureResponse "empty_cart / unknown_product"
// @Failure      502  {object}  FailureResponse "gateway_error"
// @Router       /checkout [post]
func (h *HTTPHandler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteJSON(w, FailureResponse{Error: "invalid_request"}, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	customer := entities.Customer{Email: req.Customer.Email, FullName: req.Customer.FullName}
	orderCode, redirectURL, err := h.svc.StartCheckout(ctx, customer, req.Billing, CartItemsToService(req.Items))

	switch {
	case err == nil:
	case errors.Is(err, entities.ErrEmptyCart):
		checkoutsFailed.WithLabelValues("empty_cart").Inc()
		utils.WriteJSON(w, FailureResponse{Error: "empty_cart"}, http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrProductNotFound):
		checkoutsFailed.WithLabelValues("unknown_product").Inc()
		utils.WriteJSON(w, FailureResponse{Error: "unknown_product"}, http.StatusBadRequest)
		return
	case isGatewayError(err):
		checkoutsFailed.WithLabelValues("gateway_error").Inc()
		h.logger.ErrorContext(ctx, "gateway rejected checkout", slog.Any("error", err))
		utils.WriteJSON(w, FailureResponse{Error: "gateway_error"}, http.StatusBadGateway)
		return
	default:
		checkoutsFailed.WithLabelValues("internal").Inc()
		h.logger.ErrorContext(ctx, "failed to start checkout", slog.Any("error", err))
		utils.WriteJSON(w, FailureResponse{Error: "internal_error"}, http.StatusInternalServerError)
		return
	}

	checkoutsStarted.Inc()
	utils.WriteJSON(w, CheckoutResponse{OK: true, OrderCode: orderCode, RedirectURL: redirectURL}, http.StatusOK)
}

// VerifyCheckout reconciles an order with the gateway after the buyer returns.
// @Summary      Verify payment
// @Description  Fetches the remote payment state and updates the local order status. Idempotent, safe to retry.
// @Tags         checkout
// @Param        order_code      query  string  true   "Gateway-assigned order code"
// @Param        transaction_id  query  string  false  "Gateway transaction id (transaction-based variant)"
// @Success      200  {object}  VerifyResponse
// @Failure      404  {object}  FailureResponse "order_not_found / gateway_order_not_found"
// @Failure      409  {object}  FailureResponse "order_data_mismatch"
// @Failure      502  {object}  FailureResponse "verify_failed"
// @Router       /checkout/verify [get]
func (h *HTTPHandler) VerifyCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderCode := r.URL.Query().Get("order_code")
	transactionID := r.URL.Query().Get("transaction_id")

	if err := h.validate.Var(orderCode, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	result, err := h.svc.CompleteCheckout(ctx, orderCode, transactionID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		verificationsTotal.WithLabelValues("order_not_found").Inc()
		utils.WriteJSON(w, FailureResponse{Error: "order_not_found"}, http.StatusNotFound)
		return
	}
	if err != nil {
		// transport failure, nothing was written: the client may retry
		verificationsTotal.WithLabelValues("verify_failed").Inc()
		h.logger.ErrorContext(ctx, "verification failed",
			slog.Any("error", err), slog.String("order_code", orderCode))
		utils.WriteJSON(w, FailureResponse{Error: "verify_failed"}, http.StatusBadGateway)
		return
	}

	if !result.OK {
		verificationsTotal.WithLabelValues(result.FailCode).Inc()
		status := http.StatusConflict
		if result.FailCode == service.FailGatewayOrderNotFound {
			status = http.StatusNotFound
		}
		utils.WriteJSON(w, FailureResponse{Error: result.FailCode, Details: result.Details}, status)
		return
	}

	verificationsTotal.WithLabelValues(result.Status).Inc()
	if result.Transitioned {
		ordersPaid.Inc()
	}

	utils.WriteJSON(w, VerifyResponse{
		OK:            true,
		Status:        result.Status,
		TransactionID: result.TransactionID,
	}, http.StatusOK)
}

// GetOrder returns one order with its line items.
// @Summary      Get order
// @Tags         orders
// @Param        order_code  path  string  true  "Gateway-assigned order code"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{order_code} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderCode := chi.URLParam(r, "order_code")

	if err := h.validate.Var(orderCode, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrder(ctx, orderCode)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_code", orderCode))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

const defaultOrdersLimit = 50

// LatestOrders returns the most recent orders for the back-office.
// @Summary      List recent orders
// @Tags         orders
// @Param        limit  query  int  false  "Maximum number of orders"  default(50)
// @Success      200  {array}  Order
// @Router       /admin/orders [get]
func (h *HTTPHandler) LatestOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultOrdersLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.WriteError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	orders, err := h.svc.LatestOrders(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

func isGatewayError(err error) bool {
	var reqErr *viva.RequestError
	return errors.Is(err, viva.ErrAuth) || errors.Is(err, viva.ErrUnavailable) || errors.As(err, &reqErr)
}
