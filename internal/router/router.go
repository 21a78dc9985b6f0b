package router

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-adoption-api/docs"
	"pet-adoption-api/internal/adapters/auth/session"
	mem "pet-adoption-api/internal/adapters/storage/memory"
	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/donations"
	"pet-adoption-api/internal/domain/images"
	"pet-adoption-api/internal/domain/payments"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/sessions"
	"pet-adoption-api/internal/domain/users"
	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/ports/events"
)

// Repos elige el storage. Los repos nil caen a memoria.
type Repos struct {
	Pets      pets.Repository
	Users     users.Repository
	Donations donations.Repository
	Adoptions adoptions.Repository
}

type Options struct {
	Repos Repos

	// Sessions emite y verifica tokens de sesión. Obligatorio.
	Sessions *session.Service
	Cookie   sessions.CookieConfig

	// Payments e Images pueden ser nil; sus rutas responden 500.
	Payments         payments.Provider
	Currency         string
	Images           images.Uploader
	MaxUploadBytes   int64
	Events           events.Publisher
	AllowedOrigins   []string
	ProtectAllWrites bool

	Logger *slog.Logger
}

func NewRouter(opts Options) (http.Handler, error) {
	if opts.Sessions == nil {
		return nil, errors.New("router: session service is required")
	}

	repos := opts.Repos
	if repos.Pets == nil {
		repos.Pets = mem.NewPetRepo()
	}
	if repos.Users == nil {
		repos.Users = mem.NewUserRepo()
	}
	if repos.Donations == nil {
		repos.Donations = mem.NewDonationRepo()
	}
	if repos.Adoptions == nil {
		repos.Adoptions = mem.NewAdoptionRepo()
	}
	pub := opts.Events
	if pub == nil {
		pub = events.Nop{}
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cookieName := opts.Cookie.Name
	if cookieName == "" {
		cookieName = middleware.DefaultCookieName
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Running Successfully"))
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	guard := Policy{ProtectAllWrites: opts.ProtectAllWrites}.
		Guard(middleware.RequireSession(opts.Sessions, cookieName))

	petsSvc := pets.NewService(repos.Pets, pub)
	usersSvc := users.NewService(repos.Users)
	donationsSvc := donations.NewService(repos.Donations, pub)
	adoptionsSvc := adoptions.NewService(repos.Adoptions, petsSvc, pub)
	paymentsSvc := payments.NewService(opts.Payments, opts.Currency)
	imagesSvc := images.NewService(opts.Images, opts.MaxUploadBytes)

	sessions.RegisterRoutes(r, opts.Sessions, opts.Sessions, opts.Cookie)
	pets.RegisterRoutes(r, petsSvc, guard)
	users.RegisterRoutes(r, usersSvc, guard)
	donations.RegisterRoutes(r, donationsSvc, guard)
	adoptions.RegisterRoutes(r, adoptionsSvc, guard)
	payments.RegisterRoutes(r, paymentsSvc, guard)
	images.RegisterRoutes(r, imagesSvc, guard)

	return r, nil
}
