package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shkapi/storefront/internal/api/service"
	"github.com/shkapi/storefront/internal/api/store"
	"github.com/shkapi/storefront/pkg/httpx"
	"github.com/shkapi/storefront/pkg/jwtx"
	"github.com/shkapi/storefront/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService    *service.AuthService
	ProductService *service.ProductService
	OrderService   *service.OrderService
	PostService    *service.PostService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProducts()
	r.registerOrders()
	r.registerPosts()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /register", &RegisterHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /login", &LoginHandler{AuthService: r.AuthService})
}

func (r *Router) registerProducts() {
	h := &ProductsHandler{ProductService: r.ProductService}

	r.Mux.Handle("GET /products", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("POST /products",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
	r.Mux.Handle("POST /products/seed", http.HandlerFunc(h.HandleSeed))
}

func (r *Router) registerOrders() {
	h := &OrdersHandler{OrderService: r.OrderService}

	r.Mux.Handle("GET /orders",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
	r.Mux.Handle("POST /orders",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerPosts() {
	h := &PostsHandler{PostService: r.PostService}

	r.Mux.Handle("GET /posts", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("POST /posts",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
