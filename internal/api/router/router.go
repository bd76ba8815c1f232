package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/belajarhosting/platform/internal/api/handlers"
	"github.com/belajarhosting/platform/internal/api/middleware"
	"github.com/belajarhosting/platform/internal/auth"
	"github.com/belajarhosting/platform/internal/config"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/metrics"
	"github.com/belajarhosting/platform/internal/pkg/utils"
)

// Handlers bundles every handler the router mounts
type Handlers struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Catalog    *handlers.CatalogHandler
	VPS        *handlers.VPSHandler
	Hosting    *handlers.HostingHandler
	Database   *handlers.DatabaseHandler
	Automation *handlers.AutomationHandler
	Domain     *handlers.DomainHandler
	Credit     *handlers.CreditHandler
	Blog       *handlers.BlogHandler
	Bookmark   *handlers.BookmarkHandler
	Class      *handlers.ClassHandler
	Admin      *handlers.AdminHandler
}

// New builds the HTTP handler tree. Routes live under cfg.Server.BasePath
// (default /api) in three groups: public, user token and admin token.
func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.RateLimit(100, 200)) // 100 req/sec, burst of 200
	r.Use(metrics.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusNotFound, map[string]string{"message": "Not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "Method not allowed"})
	})

	// Operational endpoints outside the API base path
	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		metrics.Handler().ServeHTTP(w, r)
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route(cfg.Server.BasePath, func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Get("/status", h.Health.Healthz)

			r.Post("/auth/register", h.Auth.Register)
			r.Post("/auth/verify-otp", h.Auth.VerifyOTP)
			r.Post("/auth/resend-otp", h.Auth.ResendOTP)
			r.Post("/auth/login", h.Auth.Login)
			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/auth/config", h.Auth.Config)
			r.Post("/admin/auth/login", h.Auth.AdminLogin)

			r.Get("/catalog", h.Catalog.Full)
			r.Get("/catalog/locations", h.Catalog.Locations)
			r.Get("/catalog/vps-plans", h.Catalog.VPSPlans)
			r.Get("/catalog/hosting-plans", h.Catalog.HostingPlans)
			r.Get("/catalog/database-engines", h.Catalog.DatabaseEngines)

			r.Get("/blogs", h.Blog.List)
			r.Get("/blogs/{slug}", h.Blog.GetBySlug)
			r.Get("/classes", h.Class.List)
		})

		// Customer routes (user token scope)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret, auth.ScopeUser))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/vps", func(r chi.Router) {
				r.Get("/", h.VPS.List)
				r.Post("/", h.VPS.Deploy)
				r.Get("/{id}", h.VPS.Get)
				r.Delete("/{id}", h.VPS.Delete)
				r.Post("/{id}/start", h.VPS.Start)
				r.Post("/{id}/stop", h.VPS.Stop)
				r.Post("/{id}/restart", h.VPS.Restart)
				r.Post("/{id}/reinstall", h.VPS.Reinstall)
			})

			r.Route("/hosting", func(r chi.Router) {
				r.Get("/", h.Hosting.List)
				r.Post("/", h.Hosting.Deploy)
				r.Get("/{id}", h.Hosting.Get)
				r.Put("/{id}/subdomains", h.Hosting.SetSubdomains)
				r.Delete("/{id}", h.Hosting.Delete)
			})

			r.Route("/databases", func(r chi.Router) {
				r.Get("/", h.Database.List)
				r.Post("/", h.Database.Deploy)
				r.Get("/{id}", h.Database.Get)
				r.Delete("/{id}", h.Database.Delete)
			})

			r.Route("/automation", func(r chi.Router) {
				r.Get("/", h.Automation.List)
				r.Post("/", h.Automation.Deploy)
				r.Get("/{id}", h.Automation.Get)
				r.Delete("/{id}", h.Automation.Delete)
			})

			r.Get("/domains/check", h.Domain.Check)
			r.Get("/domains/check-all", h.Domain.CheckAll)

			r.Route("/credits", func(r chi.Router) {
				r.Get("/balance", h.Credit.Balance)
				r.Post("/topup", h.Credit.TopUp)
				r.Get("/transactions", h.Credit.List)
				r.Post("/transactions/{id}/cancel", h.Credit.Cancel)
			})

			r.Route("/bookmarks", func(r chi.Router) {
				r.Get("/", h.Bookmark.List)
				r.Post("/", h.Bookmark.Create)
				r.Put("/{id}", h.Bookmark.Update)
				r.Delete("/{id}", h.Bookmark.Delete)
			})
		})

		// Back-office routes (admin token scope)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret, auth.ScopeAdmin))

			r.Get("/admin/auth/me", h.Auth.Me)
			r.Get("/admin/dashboard", h.Admin.Dashboard)

			r.Route("/admin/users", func(r chi.Router) {
				r.Get("/", h.Admin.ListUsers)
				r.Patch("/{id}/role", h.Admin.UpdateUserRole)
				r.Patch("/{id}/verify", h.Admin.SetUserVerified)
				r.Delete("/{id}", h.Admin.DeleteUser)
			})

			r.Route("/admin/orders", func(r chi.Router) {
				r.Get("/", h.Admin.ListOrders)
				r.Get("/{id}", h.Admin.GetOrder)
				r.Patch("/{id}/status", h.Admin.UpdateOrderStatus)
				r.Post("/{id}/fulfill", h.Admin.FulfillOrder)
			})

			r.Route("/admin/transactions", func(r chi.Router) {
				r.Get("/", h.Admin.ListTransactions)
				r.Post("/{id}/settle", h.Admin.SettleTransaction)
				r.Post("/{id}/reject", h.Admin.RejectTransaction)
			})

			r.Route("/admin/blogs", func(r chi.Router) {
				r.Get("/", h.Blog.AdminList)
				r.Post("/", h.Blog.Create)
				r.Get("/{id}", h.Blog.AdminGet)
				r.Put("/{id}", h.Blog.Update)
				r.Patch("/{id}/publish", h.Blog.SetPublished)
				r.Delete("/{id}", h.Blog.Delete)
			})

			r.Route("/admin/classes", func(r chi.Router) {
				r.Get("/", h.Class.AdminList)
				r.Post("/", h.Class.Create)
				r.Put("/{id}", h.Class.Update)
				r.Delete("/{id}", h.Class.Delete)
			})
		})
	})

	return r
}
