package handlers

import (
	"net/http"

	"cryptowallet/internal/config"
	"cryptowallet/internal/middleware"
	"cryptowallet/internal/sched"
	"cryptowallet/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	cfg       config.Config
	sessions  SessionManager
	hub       *websocket.Hub
	scheduler sched.Scheduler
}

func New(cfg config.Config, sessions SessionManager, hub *websocket.Hub, scheduler sched.Scheduler) *Handler {
	return &Handler{
		cfg:       cfg,
		sessions:  sessions,
		hub:       hub,
		scheduler: scheduler,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authed := middleware.Auth(h.cfg.JWTSecret, h.sessions)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(authed).Get("/me", h.Me)
		r.With(authed).Post("/logout", h.Logout)
	})

	router.Group(func(r chi.Router) {
		r.Use(authed)
		r.Get("/wallet", h.GetWallet)
		r.Get("/wallet/address", h.DepositAddress)
		r.Post("/wallet/deposit", h.Deposit)
		r.Post("/wallet/withdraw", h.Withdraw)
		r.Get("/wallet/workflow", h.WorkflowState)
		r.Post("/wallet/workflow/close", h.CloseWorkflow)
		r.Get("/assets", h.ListAssets)
		r.Get("/plans", h.ListPlans)
		r.Post("/plans/{id}/toggle", h.TogglePlan)
		r.Get("/transactions", h.ListTransactions)
		r.Put("/profile", h.UpdateProfile)
		r.Put("/profile/password", h.ChangePassword)
		r.Get("/notifications/current", h.CurrentNotification)
		r.Delete("/notifications/current", h.DismissNotification)
		r.Get("/view", h.GetView)
		r.Put("/view", h.SetView)
		r.Post("/view/back", h.ViewBack)
	})

	router.Get("/ws/stream", h.WSStream)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return router
}
