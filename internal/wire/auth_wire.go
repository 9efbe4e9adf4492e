package wire

import (
	"lupang-store/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/api/signup", authHandler.Signup)
	r.Post("/api/login", authHandler.Login)
}
