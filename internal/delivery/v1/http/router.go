package http

import (
	"net/http"

	_ "github.com/DRSN-tech/billing-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/billing-backend/internal/usecase"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// UseCases — набор сценариев, которые обслуживает HTTP API.
type UseCases struct {
	Customers  usecase.CustomerUC
	Products   usecase.ProductUC
	Categories usecase.CategoryUC
	Invoices   usecase.InvoiceUC
}

type Router struct {
	router   *chi.Mux
	logger   logger.Logger
	registry *prometheus.Registry
}

func NewRouter(router *chi.Mux, logger logger.Logger, registry *prometheus.Registry) *Router {
	return &Router{router: router, logger: logger, registry: registry}
}

func (r *Router) Init(uc UseCases, swaggerURL string) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(RequestLogger(r.logger))
	r.router.Use(middleware.Recoverer)
	r.router.Use(NewMetrics(r.registry).Instrument)

	r.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.router.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(swaggerURL), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(Authenticate)

		registerCustomerRoutes(v1, NewCustomerHandler(uc.Customers, r.logger))
		registerProductRoutes(v1, NewProductHandler(uc.Products, r.logger))
		registerCategoryRoutes(v1, NewCategoryHandler(uc.Categories, r.logger))
		registerInvoiceRoutes(v1, NewInvoiceHandler(uc.Invoices, r.logger))
	})
}

func registerCustomerRoutes(router chi.Router, h *CustomerHandler) {
	router.Route("/customers", func(cr chi.Router) {
		cr.Get("/", h.listCustomers)
		cr.Post("/", h.createCustomer)
		cr.Get("/{id}", h.getCustomer)
		cr.Put("/{id}", h.updateCustomer)
		cr.Delete("/{id}", h.deleteCustomer)
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Post("/", h.createProduct)
		pr.Put("/{id}", h.updateProduct)
		pr.Delete("/{id}", h.deleteProduct)
	})
}

func registerCategoryRoutes(router chi.Router, h *CategoryHandler) {
	router.Route("/categories", func(cr chi.Router) {
		cr.Get("/", h.listCategories)
		cr.Post("/", h.addCategory)
		cr.Delete("/{name}", h.deleteCategory)
	})
}

func registerInvoiceRoutes(router chi.Router, h *InvoiceHandler) {
	router.Route("/invoices", func(ir chi.Router) {
		ir.Get("/", h.listInvoices)
		ir.Post("/", h.createInvoice)
		ir.Get("/{id}", h.getInvoice)
		ir.Get("/{id}/pdf", h.invoicePDF)
	})
}
