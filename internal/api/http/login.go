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

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP exchanges {username, password} for a session token. The 401
// response is identical for unknown users and wrong passwords so the
// endpoint can't be used to enumerate accounts.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		default:
			l.Error("login failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "login failed")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Message: "login successful",
		Token:   token,
	})
}
