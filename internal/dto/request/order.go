package request

type CreateOrderRequest struct {
	UserID       string   `json:"userId" validate:"required"`
	ProductNames []string `json:"productNames" validate:"required,min=1"`
	TotalAmount  float64  `json:"totalAmount"`
}
