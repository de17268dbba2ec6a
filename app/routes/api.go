// Package routes declares the API surface. Route names feed the
// route:list command.
package routes

import (
	"net/http"

	"github.com/chitralaya/chitralaya/app/controllers"
	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/pkg/ctx"
	"github.com/chitralaya/chitralaya/pkg/middleware"
	"github.com/chitralaya/chitralaya/pkg/rbac"
	"github.com/chitralaya/chitralaya/pkg/router"
)

// Handlers carries everything route registration needs.
type Handlers struct {
	Auth          *controllers.AuthController
	Products      *controllers.ProductController
	Orders        *controllers.OrderController
	Payments      *controllers.PaymentController
	Addresses     *controllers.AddressController
	Notifications *controllers.NotificationController
	Admin         *controllers.AdminController

	// ResolveUser backs the auth middleware's live account check.
	ResolveUser middleware.UserResolver
	// Metrics serves the Prometheus scrape endpoint.
	Metrics http.Handler
	// StaticRoot, when non-empty, serves local-disk uploads.
	StaticRoot string
}

func Register(r *router.Router, h Handlers) {
	authed := middleware.Auth(h.ResolveUser)
	adminOnly := rbac.HasRole(models.RoleAdmin)

	r.HandleFunc("/metrics", func(w http.ResponseWriter, req *http.Request) {
		h.Metrics.ServeHTTP(w, req)
	})
	r.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"ok"}`)) //nolint:errcheck
	})

	if h.StaticRoot != "" {
		fs := http.StripPrefix("/storage/", http.FileServer(http.Dir(h.StaticRoot)))
		r.HandleFunc("/storage/*", fs.ServeHTTP)
	}

	api := r.Group("/api")

	// auth
	authGroup := api.Group("/auth")
	authGroup.Post("/register", "auth.register", ctx.Handler(h.Auth.Register))
	authGroup.Post("/login", "auth.login", ctx.Handler(h.Auth.Login))
	authGroup.Get("/profile", "auth.profile", ctx.Handler(h.Auth.Profile), authed)
	authGroup.Put("/profile", "auth.profile.update", ctx.Handler(h.Auth.UpdateProfile), authed)

	// public catalog
	products := api.Group("/products")
	products.Get("/", "products.list", ctx.Handler(h.Products.List))
	products.Get("/{id}", "products.get", ctx.Handler(h.Products.Get))
	products.Post("/", "products.create", ctx.Handler(h.Products.Create), authed, adminOnly)
	products.Put("/{id}", "products.update", ctx.Handler(h.Products.Update), authed, adminOnly)
	products.Delete("/{id}", "products.delete", ctx.Handler(h.Products.Delete), authed, adminOnly)

	// orders
	orders := api.Group("/orders", authed)
	orders.Post("/", "orders.place", ctx.Handler(h.Orders.Place))
	orders.Post("/repaint", "orders.repaint", ctx.Handler(h.Orders.PlaceRepaint))
	orders.Get("/", "orders.mine", ctx.Handler(h.Orders.ListMine))
	orders.Get("/admin/all", "orders.admin.list", ctx.Handler(h.Orders.AdminList), adminOnly)
	orders.Get("/{id}", "orders.get", ctx.Handler(h.Orders.GetMine))
	orders.Put("/{id}", "orders.admin.update", ctx.Handler(h.Orders.AdminUpdate), adminOnly)
	orders.Delete("/{id}", "orders.delete", ctx.Handler(h.Orders.DeleteMine))

	// payments
	payments := api.Group("/razorpay")
	payments.Get("/key", "payments.key", ctx.Handler(h.Payments.Key))
	payments.Post("/create-order", "payments.create", ctx.Handler(h.Payments.CreateIntent), authed)
	payments.Post("/verify-payment", "payments.verify", ctx.Handler(h.Payments.Verify), authed)

	// address book
	addresses := api.Group("/addresses", authed)
	addresses.Get("/", "addresses.list", ctx.Handler(h.Addresses.List))
	addresses.Post("/", "addresses.create", ctx.Handler(h.Addresses.Create))
	addresses.Get("/default", "addresses.default", ctx.Handler(h.Addresses.Default))
	addresses.Get("/{id}", "addresses.get", ctx.Handler(h.Addresses.Get))
	addresses.Put("/{id}", "addresses.update", ctx.Handler(h.Addresses.Update))
	addresses.Put("/{id}/default", "addresses.setDefault", ctx.Handler(h.Addresses.SetDefault))
	addresses.Delete("/{id}", "addresses.delete", ctx.Handler(h.Addresses.Delete))

	// notifications: creation is open to shoppers, the rest is back office
	notifications := api.Group("/notifications", authed)
	notifications.Post("/repaint", "notifications.repaint", ctx.Handler(h.Notifications.CreateRepaint))
	notifications.Get("/", "notifications.list", ctx.Handler(h.Notifications.List), adminOnly)
	notifications.Get("/count", "notifications.count", ctx.Handler(h.Notifications.UnreadCount), adminOnly)
	notifications.Get("/{id}", "notifications.get", ctx.Handler(h.Notifications.Get), adminOnly)
	notifications.Put("/{id}", "notifications.update", ctx.Handler(h.Notifications.Update), adminOnly)

	// admin back office
	admin := api.Group("/admin", authed, adminOnly)
	admin.Get("/dashboard", "admin.dashboard", ctx.Handler(h.Admin.Dashboard))
	admin.Get("/users", "admin.users.list", ctx.Handler(h.Admin.ListUsers))
	admin.Get("/users/{id}", "admin.users.get", ctx.Handler(h.Admin.GetUser))
	admin.Put("/users/{id}", "admin.users.update", ctx.Handler(h.Admin.UpdateUser))
	admin.Delete("/users/{id}", "admin.users.delete", ctx.Handler(h.Admin.DeleteUser))
	admin.Get("/products", "admin.products.list", ctx.Handler(h.Admin.ListProducts))
	admin.Get("/products/{id}", "admin.products.get", ctx.Handler(h.Admin.GetProduct))
	admin.Post("/products", "admin.products.create", ctx.Handler(h.Admin.CreateProduct))
	admin.Put("/products/{id}", "admin.products.update", ctx.Handler(h.Products.Update))
	admin.Delete("/products/{id}", "admin.products.delete", ctx.Handler(h.Products.Delete))
	admin.Get("/orders", "admin.orders.list", ctx.Handler(h.Orders.AdminList))
	admin.Get("/orders/{id}", "admin.orders.get", ctx.Handler(h.Orders.AdminGet))
	admin.Put("/orders/{id}", "admin.orders.update", ctx.Handler(h.Orders.AdminUpdate))
	admin.Get("/addresses", "admin.addresses.list", ctx.Handler(h.Addresses.AdminList))
	admin.Get("/addresses/{id}", "admin.addresses.get", ctx.Handler(h.Addresses.AdminGet))
	admin.Put("/addresses/{id}", "admin.addresses.update", ctx.Handler(h.Addresses.AdminUpdate))
	admin.Delete("/addresses/{id}", "admin.addresses.delete", ctx.Handler(h.Addresses.AdminDelete))
	admin.Get("/notifications/stream", "admin.notifications.stream", ctx.Handler(h.Notifications.Stream))
}
