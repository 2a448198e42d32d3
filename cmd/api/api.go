package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"mintospay/internal/marzpay"
	"mintospay/internal/ratelimiter"
)

type application struct {
	config      config
	logger      *zap.SugaredLogger
	marz        *marzpay.Client
	rateLimiter *ratelimiter.FixedWindowRateLimiter
}

type config struct {
	addr        string
	env         string
	marz        marzConfig
	rateLimiter ratelimiter.Config
}

type marzConfig struct {
	baseURL string
	// base64-encoded api key, required at startup, never defaulted
	credential string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(app.RecovererMiddleware)
	r.Use(app.RateLimiterMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Inbound requests should never outlive the outbound 30s budget by much.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", app.rootHandler)
	r.Get("/health", app.healthCheckHandler)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Route("/pay", func(r chi.Router) {
			r.Post("/initialize", app.createCollectionHandler)
			r.Get("/verify/{collectionUUID}", app.getCollectionHandler)
		})
	})

	r.Route("/collect-money", func(r chi.Router) {
		r.Post("/", app.createCollectionHandler)
		// static route first so "services" is never read as a uuid
		r.Get("/services", app.collectionServicesHandler)
		r.Get("/{collectionUUID}", app.getCollectionHandler)
	})

	r.Route("/send-money", func(r chi.Router) {
		r.Post("/", app.sendMoneyHandler)
		r.Get("/services", app.sendMoneyServicesHandler)
		r.Get("/{transactionUUID}", app.getSendMoneyHandler)
	})

	r.Route("/webhook", func(r chi.Router) {
		r.Post("/callback", app.webhookHandler)
		r.Post("/marz-callback", app.webhookHandler)
	})

	return r
}

// serverWriteTimeout must exceed marzpay.RequestTimeout: a response for a
// timed-out outbound call is written after the full 30s budget has elapsed,
// and a tighter write deadline would drop it.
const serverWriteTimeout = 40 * time.Second

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: serverWriteTimeout,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
