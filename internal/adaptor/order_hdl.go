package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"lupang-store/internal/dto/request"
	"lupang-store/internal/usecase"
	"lupang-store/pkg/utils"

	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Error("Failed to read request body", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	// An unparseable body degrades to an empty record, which then fails
	// the required-field check below.
	body, err := request.DecodeBody(raw)
	if err != nil {
		body = []byte("{}")
	}

	var req request.CreateOrderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		req = request.CreateOrderRequest{}
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		h.log.Warn("Create order validation failed", zap.Any("errors", errs))
		utils.ResponseBadRequest(w, "Missing order or product information", nil)
		return
	}

	resp, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		h.log.Error("Create order failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, resp)
}
