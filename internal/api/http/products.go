package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shkapi/storefront/internal/api/service"
	"github.com/shkapi/storefront/pkg/httpx"
	"github.com/shkapi/storefront/pkg/slogx"
)

type ProductsHandler struct {
	ProductService *service.ProductService
}

// HandleList returns the catalogue, newest first. Public.
func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	products, err := h.ProductService.ListProducts(r.Context())
	if err != nil {
		l.Error("list products failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProductResponses(products))
}

// HandleCreate inserts a catalogue entry. Requires authentication.
func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "name and price are required")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Price <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, "name and price are required")
		return
	}

	p, err := h.ProductService.CreateProduct(r.Context(), req.Name, req.Description, req.Price, req.Image)
	if err != nil {
		l.Error("create product failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProductResponse(p))
}

// HandleSeed installs the demo catalogue.
func (h *ProductsHandler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	products, err := h.ProductService.SeedProducts(r.Context())
	if err != nil {
		l.Error("seed products failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to seed products")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, seedResponse{
		Message:  "products seeded",
		Products: toProductResponses(products),
	})
}
