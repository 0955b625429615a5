package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"

	"zoo-visitor-platform/internal/config"
	"zoo-visitor-platform/internal/handlers"
	"zoo-visitor-platform/internal/logger"
	"zoo-visitor-platform/internal/middleware"
	"zoo-visitor-platform/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	timeout := time.Duration(cfg.Backend.TimeoutSeconds) * time.Second

	// Remote service clients
	orderClient := services.NewOrderClient(cfg.Backend.BaseURL, timeout)
	paymentMethodClient := services.NewPaymentMethodClient(cfg.Backend.BaseURL, timeout)
	authClient := services.NewAuthClient(cfg.Backend.BaseURL, timeout)
	articleClient := services.NewArticleClient(cfg.Backend.BaseURL, timeout)
	weatherClient := services.NewWeatherClient(cfg.Weather.BaseURL, cfg.Weather.Latitude, cfg.Weather.Longitude, timeout)
	assistantClient := services.NewAssistantClient(cfg.Assistant.BaseURL, cfg.Assistant.APIKey, cfg.Assistant.Model, timeout)

	// Local services
	journal := services.NewOrderJournal(cfg.Storage.DataDir)
	checkoutService := services.NewCheckoutService(orderClient, paymentMethodClient, journal)
	historyService := services.NewOrderHistoryService(orderClient, journal)

	// Handlers
	ticketHandler := handlers.NewTicketHandler()
	cartHandler := handlers.NewCartHandler(sessionStore)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, sessionStore)
	orderHandler := handlers.NewOrderHandler(historyService)
	paymentMethodHandler := handlers.NewPaymentMethodHandler(paymentMethodClient)
	authHandler := handlers.NewAuthHandler(authClient, sessionStore)
	articleHandler := handlers.NewArticleHandler(articleClient)
	widgetHandler := handlers.NewWidgetHandler(weatherClient, assistantClient)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore)
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Recover)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(chimiddleware.StripSlashes)
	r.Use(authMiddleware.LoadUser)

	r.NotFound(middleware.NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler().ServeHTTP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/tickets", ticketHandler.ListTicketTypes)

		r.Get("/cart", cartHandler.ViewCart)
		r.Post("/cart/items", cartHandler.AddToCart)
		r.Patch("/cart/items/{ticketID}", cartHandler.UpdateCartItem)
		r.Delete("/cart/items/{ticketID}", cartHandler.RemoveCartItem)
		r.Delete("/cart", cartHandler.ClearCart)

		r.With(middleware.RateLimitLogin(loginLimiter)).Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/auth/me", authHandler.Me)

		r.Get("/artikel", articleHandler.List)
		r.Get("/artikel/{articleID}", articleHandler.GetByID)

		r.Get("/weather", widgetHandler.Weather)
		r.Post("/assistant", widgetHandler.AskAssistant)

		r.Get("/checkout/new-card", checkoutHandler.NewCardForm)
		r.Post("/checkout/validate-field", checkoutHandler.ValidateCardField)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Post("/checkout", checkoutHandler.ProcessCheckout)
			r.Get("/checkout/prefill/{methodID}", checkoutHandler.PrefillFromSaved)

			r.Get("/orders/me", orderHandler.ListMyOrders)

			r.Get("/payment-methods", paymentMethodHandler.List)
			r.Post("/payment-methods", paymentMethodHandler.Create)
			r.Put("/payment-methods/{methodID}", paymentMethodHandler.Update)
			r.Delete("/payment-methods/{methodID}", paymentMethodHandler.Delete)

			r.Post("/artikel", articleHandler.Create)
			r.Put("/artikel/{articleID}", articleHandler.Update)
			r.Delete("/artikel/{articleID}", articleHandler.Delete)
		})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on http://%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
