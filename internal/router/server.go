package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/avoronova/servicedesk/internal/config"
	"github.com/avoronova/servicedesk/internal/handlers"
)

const (
	compressLevel = 5
)

type Middleware interface {
	Handle(h http.Handler) http.Handler
}

type Router struct {
	address string
	router  *chi.Mux
}

func NewRouter(conf *config.ServerConfig, h *handlers.HandlerSet, middlewares ...Middleware) *Router {

	r := chi.NewRouter()

	for _, m := range middlewares {
		r.Use(m.Handle)
	}
	r.Use(middleware.Compress(compressLevel))

	r.Get("/", h.HandleIndex)
	r.Post("/create_order", h.HandleCreateOrder)
	r.Put("/update_order/{orderID}", h.HandleUpdateOrder)
	r.Post("/pay", h.HandlePay)
	r.Get("/order_status/{orderID}", h.HandleOrderStatus)

	return &Router{router: r, address: conf.RunAddress()}
}

// Handler exposes the mux so tests can mount it on httptest servers.
func (r *Router) Handler() http.Handler {
	return r.router
}

func (r *Router) ListenAndServe() error {
	err := http.ListenAndServe(r.address, r.router)
	return err
}
