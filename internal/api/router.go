package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/microservices/checkout/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/checkout/{merchant}", func(r chi.Router) {
			r.Use(mw.Merchant)
			r.Get("/", h.CheckoutPage)
			r.Post("/selection", h.Select)
			r.Post("/quote", h.Quote)
			r.With(mw.RateLimit).Post("/payments", h.CreatePayment)
			r.Get("/status", h.Status)
			r.Get("/status/stream", h.StatusStream)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Post("/login", h.Login)

			r.Group(func(r chi.Router) {
				r.Use(mw.BearerAuth)
				r.Post("/password", h.ChangePassword)
				r.Get("/overview", h.Overview)
				r.Get("/transactions", h.Transactions)
				r.Get("/withdrawals/accounts", h.DepositoryAccounts)
				r.Post("/withdrawals/quote", h.WithdrawalQuote)
				r.Post("/withdrawals", h.Withdraw)
				r.Get("/downloads", h.Downloads)
				r.Post("/downloads", h.EnqueueDownload)
				r.Delete("/downloads", h.ClearDownloads)
				r.Delete("/downloads/completed", h.ClearCompletedDownloads)
				r.Delete("/downloads/{id}", h.RemoveDownload)
				r.Get("/downloads/{id}/file", h.DownloadFile)
			})
		})
	})

	return mux
}
