package http

import (
	"encoding/json"
	"net/http"

	"github.com/shkapi/storefront/internal/api/domain"
	"github.com/shkapi/storefront/internal/api/service"
	"github.com/shkapi/storefront/pkg/httpx"
	"github.com/shkapi/storefront/pkg/slogx"
)

type OrdersHandler struct {
	OrderService *service.OrderService
}

// HandleList returns the caller's own orders, newest first.
func (h *OrdersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing token")
		return
	}

	orders, err := h.OrderService.ListOrders(r.Context(), id.UserID)
	if err != nil {
		l.Error("list orders failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toOrderResponses(orders))
}

// HandleCreate persists an order tied to the authenticated identity.
func (h *OrdersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing token")
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "products are required")
		return
	}
	if len(req.Products) == 0 {
		httpx.WriteError(w, http.StatusBadRequest, "products are required")
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Products))
	for _, p := range req.Products {
		if p.ProductID == "" || p.Quantity <= 0 {
			httpx.WriteError(w, http.StatusBadRequest, "products are required")
			return
		}
		items = append(items, domain.OrderItem{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
		})
	}

	o, err := h.OrderService.CreateOrder(r.Context(), id.UserID, items)
	if err != nil {
		l.Error("create order failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toOrderResponse(o))
}
