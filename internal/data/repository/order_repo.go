package repository

import (
	"context"
	"fmt"

	"lupang-store/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Put(ctx context.Context, order *entity.Order) error
	Scan(ctx context.Context) ([]*entity.Order, error)
}

type orderRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewOrderRepository(col *mongo.Collection, log *zap.Logger) OrderRepository {
	return &orderRepository{
		col: col,
		log: log,
	}
}

// Put writes an order record keyed by OrderID.
func (or *orderRepository) Put(ctx context.Context, order *entity.Order) error {
	opts := options.Replace().SetUpsert(true)

	_, err := or.col.ReplaceOne(ctx, bson.M{"_id": order.OrderID}, order, opts)
	if err != nil {
		or.log.Error("Failed to put order",
			zap.Error(err),
			zap.String("order_id", order.OrderID),
			zap.String("user_id", order.UserID),
		)
		return fmt.Errorf("put order %s: %w", order.OrderID, err)
	}

	return nil
}

// Scan loads the full orders collection.
func (or *orderRepository) Scan(ctx context.Context) ([]*entity.Order, error) {
	cursor, err := or.col.Find(ctx, bson.M{})
	if err != nil {
		or.log.Error("Failed to scan orders", zap.Error(err))
		return nil, fmt.Errorf("scan orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*entity.Order
	if err := cursor.All(ctx, &orders); err != nil {
		or.log.Error("Failed to decode orders", zap.Error(err))
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	return orders, nil
}
