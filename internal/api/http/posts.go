package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shkapi/storefront/internal/api/service"
	"github.com/shkapi/storefront/pkg/httpx"
	"github.com/shkapi/storefront/pkg/slogx"
)

type PostsHandler struct {
	PostService *service.PostService
}

// HandleList returns all posts, newest first. Public.
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		l.Error("list posts failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list posts")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPostResponses(posts))
}

// HandleCreate inserts a post owned by the authenticated identity.
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing token")
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "title and content are required")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.Content == "" {
		httpx.WriteError(w, http.StatusBadRequest, "title and content are required")
		return
	}

	p, err := h.PostService.CreatePost(r.Context(), id.UserID, req.Title, req.Content)
	if err != nil {
		l.Error("create post failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to create post")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toPostResponse(p))
}
