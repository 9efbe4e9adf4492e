package wire

import (
	"lupang-store/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrder(r chi.Router, orderHandler *adaptor.OrderHandler) {
	r.Post("/api/orders", orderHandler.CreateOrder)
}
