package usecase

import (
	"context"
	"fmt"
	"time"

	"lupang-store/internal/data/entity"
	"lupang-store/internal/data/repository"
	"lupang-store/internal/dto/request"
	"lupang-store/internal/dto/response"
	"lupang-store/pkg/utils"

	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.CreateOrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

// CreateOrder builds an order record and puts it into the orders
// collection. The userId reference is taken as-is without checking the
// users collection. TotalAmount defaults to 0 when the client omits it.
func (s *orderService) CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.CreateOrderResponse, error) {
	order := &entity.Order{
		OrderID:      utils.GenerateOrderID(),
		UserID:       req.UserID,
		ProductNames: req.ProductNames,
		TotalAmount:  req.TotalAmount,
		OrderDate:    time.Now().UTC(),
		Status:       entity.StatusOrdered,
	}

	if err := s.repo.Order.Put(ctx, order); err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("order_id", order.OrderID),
			zap.String("user_id", order.UserID))
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order placed",
		zap.String("order_id", order.OrderID),
		zap.String("user_id", order.UserID),
		zap.Float64("total_amount", order.TotalAmount))

	return &response.CreateOrderResponse{
		Message: "Order placed successfully!",
		OrderID: order.OrderID,
	}, nil
}
