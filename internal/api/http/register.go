package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shkapi/storefront/internal/api/service"
	"github.com/shkapi/storefront/pkg/httpx"
	"github.com/shkapi/storefront/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP creates a credential record from {username, password}.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	u, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			httpx.WriteError(w, http.StatusBadRequest, "username already exists")
		default:
			l.Error("registration failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, registerResponse{
		Message: "user registered",
		User:    userInfo{Username: u.Username},
	})
}
