package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// Handlers - все обработчики, которые монтирует сервер.
type Handlers struct {
	Listings     *ListingsHandler
	Users        *UsersHandler
	Companies    *CompaniesHandler
	Addresses    *AddressesHandler
	Features     *FeaturesHandler
	Dictionaries *DictionariesHandler
	Images       *ImagesHandler
	Favorites    *FavoritesHandler
	Messages     *MessagesHandler
}

// Server - наш REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewServer создает новый экземпляр сервера.
func NewServer(cfg ServerConfig, h Handlers, health port.HealthCheckerPort, baseLogger port.LoggerPort) *Server {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, h, health, baseLogger),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger.WithFields(port.Fields{"component": "rest_server"}),
	}
}

// NewRouter собирает маршруты и middleware.
func NewRouter(cfg ServerConfig, h Handlers, health port.HealthCheckerPort, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{TraceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.Get("/healthz", healthHandler(health))
	r.Post("/login", h.Users.Login)

	r.Route("/listings", func(r chi.Router) {
		r.Get("/", h.Listings.GetListings)
		r.Post("/", h.Listings.CreateListing)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Listings.GetListing)
			r.Put("/", h.Listings.UpdateListing)
			r.Delete("/", h.Listings.DeleteListing)
			r.Patch("/price", h.Listings.UpdateListingPrice)
			r.Patch("/status", h.Listings.UpdateListingStatus)

			r.Get("/features", h.Features.GetListingFeatures)
			r.Post("/features", h.Features.AddListingFeature)
			r.Delete("/features/{featureID}", h.Features.RemoveListingFeature)

			r.Get("/images", h.Images.GetImages(domain.ImageOwnerListing))
			r.Post("/images", h.Images.AddImage(domain.ImageOwnerListing))
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.Users.GetUsers)
		r.Post("/", h.Users.CreateUser)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Users.GetUser)
			r.Put("/", h.Users.UpdateUser)
			r.Delete("/", h.Users.DeleteUser)

			r.Get("/agent", h.Users.GetAgent)
			r.Put("/agent", h.Users.SaveAgent)

			r.Get("/images", h.Images.GetImages(domain.ImageOwnerUser))
			r.Post("/images", h.Images.AddImage(domain.ImageOwnerUser))

			r.Get("/favorites", h.Favorites.GetUserFavorites)
			r.Post("/favorites", h.Favorites.AddToFavorites)
			r.Delete("/favorites/{listingID}", h.Favorites.RemoveFromFavorites)
		})
	})

	r.Route("/companies", func(r chi.Router) {
		r.Get("/", h.Companies.GetCompanies)
		r.Post("/", h.Companies.CreateCompany)
		r.Get("/{id}", h.Companies.GetCompany)
		r.Put("/{id}", h.Companies.UpdateCompany)
		r.Delete("/{id}", h.Companies.DeleteCompany)
	})

	r.Route("/addresses", func(r chi.Router) {
		r.Get("/", h.Addresses.GetAddresses)
		r.Post("/", h.Addresses.CreateAddress)
		r.Get("/{id}", h.Addresses.GetAddress)
		r.Put("/{id}", h.Addresses.UpdateAddress)
		r.Delete("/{id}", h.Addresses.DeleteAddress)
	})

	r.Route("/features", func(r chi.Router) {
		r.Get("/", h.Features.GetFeatures)
		r.Post("/", h.Features.CreateFeature)
		r.Get("/{id}", h.Features.GetFeature)
		r.Put("/{id}", h.Features.UpdateFeature)
		r.Delete("/{id}", h.Features.DeleteFeature)
	})

	r.Get("/roles", h.Dictionaries.GetRoles)
	r.Get("/statuses", h.Dictionaries.GetStatuses)
	r.Post("/statuses", h.Dictionaries.CreateStatus)
	r.Get("/property_types", h.Dictionaries.GetPropertyTypes)
	r.Post("/property_types", h.Dictionaries.CreatePropertyType)

	r.Delete("/images/listing/{id}", h.Images.DeleteImage(domain.ImageOwnerListing))
	r.Delete("/images/user/{id}", h.Images.DeleteImage(domain.ImageOwnerUser))

	r.Route("/messages", func(r chi.Router) {
		r.Post("/", h.Messages.SendMessage)
		r.Get("/listing/{id}", h.Messages.GetListingMessages)
		r.Get("/user/{id}", h.Messages.GetUserMessages)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

// healthHandler обрабатывает GET /healthz
func healthHandler(health port.HealthCheckerPort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context())
		if err := health.Ping(r.Context()); err != nil {
			logger.Error("Health check failed", err, nil)
			RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
