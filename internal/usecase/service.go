package usecase

import (
	"lupang-store/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Order OrderService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, log),
		Order: NewOrderService(repo, log),
	}
}
