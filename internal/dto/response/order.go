package response

type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}
