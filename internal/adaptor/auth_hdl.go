package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"lupang-store/internal/dto/request"
	"lupang-store/internal/dto/response"
	"lupang-store/internal/usecase"
	"lupang-store/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Signup handles POST /api/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Error("Failed to read request body", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	// A body that is neither JSON nor base64-wrapped JSON is fatal here;
	// the other operations fall back to an empty record instead.
	body, err := request.DecodeBody(raw)
	if err != nil {
		h.log.Warn("Signup body parse failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Failed to parse request body", nil)
		return
	}

	var req request.SignupRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.log.Warn("Signup body decode failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Failed to parse request body", nil)
		return
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		h.log.Warn("Signup validation failed",
			zap.Any("errors", errs),
			zap.Strings("received_keys", request.RecordKeys(body)))
		utils.ResponseBadRequest(w,
			"Missing required fields (userId or email, plus password, name, phone)",
			request.RecordKeys(body))
		return
	}

	resp, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		h.log.Error("Signup failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseCreated(w, resp)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Error("Failed to read request body", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	body, err := request.DecodeBody(raw)
	if err != nil {
		body = []byte("{}")
	}

	var req request.LoginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		req = request.LoginRequest{}
	}

	outcome, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.log.Error("Login failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	// Credential failures are successful HTTP calls with success:false,
	// never 4xx.
	switch outcome.Status {
	case usecase.LoginAuthenticated:
		utils.ResponseSuccess(w, response.LoginResponse{
			Success: true,
			Message: "Login successful!",
			Token:   outcome.Token,
			User:    outcome.Name,
		})
	case usecase.LoginWrongPassword:
		utils.ResponseSuccess(w, response.LoginResponse{
			Success: false,
			Message: "Incorrect password",
		})
	default:
		utils.ResponseSuccess(w, response.LoginResponse{
			Success: false,
			Message: "No account found for that email",
		})
	}
}
