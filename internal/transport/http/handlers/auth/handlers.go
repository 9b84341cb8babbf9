package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"payrolld/internal/auth"
	"payrolld/internal/transport/http/api"
	"payrolld/internal/transport/http/middleware"
)

type Handler struct {
	Secret            string
	ClerkUsername     string
	ClerkPasswordHash string
	TokenTTL          time.Duration
}

func NewHandler(secret, clerkUsername, clerkPasswordHash string, tokenTTL time.Duration) *Handler {
	return &Handler{
		Secret:            secret,
		ClerkUsername:     clerkUsername,
		ClerkPasswordHash: clerkPasswordHash,
		TokenTTL:          tokenTTL,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", requestID)
		return
	}

	token, err := auth.Login(h.Secret, h.ClerkUsername, h.ClerkPasswordHash, req.Username, req.Password, h.TokenTTL)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal error", requestID)
		return
	}

	api.Success(w, loginResponse{Token: token, ExpiresAt: time.Now().Add(h.TokenTTL)}, requestID)
}
