package router

import (
	"database/sql"
	"net/http"

	"avoska-api/internal/config"
	"avoska-api/internal/handlers"
	"avoska-api/internal/middleware"
	"avoska-api/internal/services"
	"avoska-api/internal/session"
	"avoska-api/internal/store"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func SetupRouter(db *sql.DB, sessions session.Store, cfg config.Config, logger zerolog.Logger) http.Handler {
	userService := services.NewUserService(store.NewUsers(db), logger)
	productService := services.NewProductService(store.NewProducts(db), logger)
	orderService := services.NewOrderService(store.NewOrders(db), logger)

	secret := []byte(cfg.SessionSecret)

	authHandler := handlers.NewAuthHandler(userService, sessions, secret, cfg.SessionCookie, logger)
	productHandler := handlers.NewProductHandler(productService, logger)
	orderHandler := handlers.NewOrderHandler(orderService, logger)
	adminHandler := handlers.NewAdminHandler(orderService, sessions, secret, cfg.SessionCookie, cfg.AdminUsername, cfg.AdminPassword, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(10), 20)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(rateLimiter.Middleware())
	r.Use(middleware.Session(sessions, secret, cfg.SessionCookie, logger))

	r.HandleFunc("/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/products", productHandler.List).Methods("GET")

	r.Handle("/orders", middleware.RequireSession(http.HandlerFunc(orderHandler.List))).Methods("GET")
	r.Handle("/orders", middleware.RequireUser(http.HandlerFunc(orderHandler.Create))).Methods("POST")

	admin := r.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/login", adminHandler.Login).Methods("POST")

	adminOrders := admin.PathPrefix("/orders").Subrouter()
	adminOrders.Use(middleware.RequireAdmin)
	adminOrders.HandleFunc("", adminHandler.ListOrders).Methods("GET")
	adminOrders.HandleFunc("/{orderId}", adminHandler.UpdateOrderStatus).Methods("PUT")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS wraps the router itself so preflight requests get their
	// headers even when no route matches the OPTIONS method.
	return middleware.CORS(cfg.CORSOrigin)(r)
}
