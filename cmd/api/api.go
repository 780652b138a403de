package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusevents/docs" //this is required to generate swagger docs
	"campusevents/internal/auth"
	"campusevents/internal/codes"
	"campusevents/internal/mailer"
	"campusevents/internal/ratelimiter"
	"campusevents/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         store.Storage
	logger        *zap.SugaredLogger
	mailer        mailer.Client
	authenticator auth.Authenticator
	eventCodes    *codes.Generator
	rateLimiter   ratelimiter.Limiter
}

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	frontendURL string
	mail        mailConfig
	auth        authConfig
	rateLimiter ratelimiter.Config
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	secret          string
	refreshSecret   string
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
	iss             string
}

type basicConfig struct {
	user string
	pass string
}

type mailConfig struct {
	exp       time.Duration
	fromEmail string
	smtp      smtpConfig
}

type smtpConfig struct {
	host     string
	port     int
	username string
	password string
}

type dbConfig struct {
	addr        string
	maxConns    int32
	maxIdleTime string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Signals through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		// Public routes
		r.Route("/authentication", func(r chi.Router) {
			r.Post("/user", app.registerUserHandler)
			r.Post("/token", app.createTokenHandler)
			r.Post("/refresh", app.refreshTokenHandler)
		})

		// Route that does NOT require authentication
		r.Put("/users/activate/{token}", app.activateUserHandler)

		r.Route("/users", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Get("/profile", app.getProfileHandler)
			r.Post("/profile", app.updateProfileHandler)
			r.Post("/logout", app.logoutHandler)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", app.listEventsHandler)
			r.With(app.AuthTokenMiddleware).Post("/", app.createEventHandler)
			r.Get("/code/{code}", app.getEventByCodeHandler)

			r.Route("/{eventID}", func(r chi.Router) {
				r.Get("/", app.getEventHandler)
				r.With(app.AuthTokenMiddleware).Patch("/", app.updateEventHandler)
				r.With(app.AuthTokenMiddleware).Delete("/", app.deleteEventHandler)

				r.With(app.AuthTokenMiddleware).Post("/approve", app.approveEventHandler)
				r.With(app.AuthTokenMiddleware).Post("/reject", app.rejectEventHandler)

				r.With(app.AuthTokenMiddleware).Post("/register", app.registerForEventHandler)
				r.With(app.AuthTokenMiddleware).Delete("/register", app.unregisterFromEventHandler)

				r.With(app.OptionalAuthTokenMiddleware).Get("/reviews", app.getEventReviewsHandler)
				r.With(app.AuthTokenMiddleware).Post("/reviews", app.createReviewHandler)
			})
		})

		r.Route("/reviews/{reviewID}", func(r chi.Router) {
			r.With(app.OptionalAuthTokenMiddleware).Get("/", app.getReviewHandler)
			r.With(app.AuthTokenMiddleware).Patch("/", app.updateReviewHandler)
			r.With(app.AuthTokenMiddleware).Delete("/", app.deleteReviewHandler)

			r.With(app.AuthTokenMiddleware).Post("/like", app.toggleReviewLikeHandler)

			r.With(app.OptionalAuthTokenMiddleware).Get("/comments", app.getReviewCommentsHandler)
			r.With(app.AuthTokenMiddleware).Post("/comments", app.createCommentHandler)
		})

		r.Route("/comments/{commentID}", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Patch("/", app.updateCommentHandler)
			r.Delete("/", app.deleteCommentHandler)
		})

		r.Route("/admin/users", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Get("/", app.listUsersHandler)
			r.Patch("/{userID}", app.updateUserRoleHandler)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
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
