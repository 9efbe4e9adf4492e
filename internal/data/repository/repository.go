package repository

import (
	"lupang-store/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User  UserRepository
	Order OrderRepository
}

func NewRepository(store *database.Store, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(store.Users, log),
		Order: NewOrderRepository(store.Orders, log),
	}
}
