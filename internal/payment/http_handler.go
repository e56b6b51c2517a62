package payment

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type checkoutReq struct {
	User        string          `json:"user"`
	Email       string          `json:"email"`
	TotalAmount decimal.Decimal `json:"valorTotal"`
	Cart        Cart            `json:"carrinho"`
	Method      Method          `json:"formaPagamento" validate:"required,oneof=CARTAO_CREDITO CARTAO_DEBITO PIX"`
}

// Checkout handles POST /v1/user/checkout
// @Summary Record a payment for a cart
// @Tags payments
// @Accept json
// @Param request body checkoutReq true "Checkout request"
// @Success 200
// @Failure 400 {object} httpx.ErrorResponse
// @Router /v1/user/checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	_, err := h.service.Checkout(r.Context(), CheckoutRequest{
		User:        req.User,
		Email:       req.Email,
		TotalAmount: req.TotalAmount,
		Cart:        req.Cart,
		Method:      req.Method,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidMethod) {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment method", nil)
			return
		}
		httpx.InternalError(w, r, err, "checkout")
		return
	}

	httpx.OK(w)
}

// ListByEmail handles GET /v1/user/pagamentos/{email}
// @Summary List payments recorded for an email
// @Tags payments
// @Produce json
// @Param email path string true "Email"
// @Success 200 {array} Payment
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/user/pagamentos/{email} [get]
func (h *HTTPHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	payments, err := h.service.FindAllByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, ErrNoPaymentsFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NO_PAYMENTS_FOUND", "No payments found for email: "+email, nil)
			return
		}
		httpx.InternalError(w, r, err, "list payments")
		return
	}
	httpx.JSON(w, r, http.StatusOK, payments)
}
