package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"pet-adoption-api/internal/adapters/auth/revocation"
	"pet-adoption-api/internal/adapters/auth/session"
	amqppub "pet-adoption-api/internal/adapters/events/amqp"
	"pet-adoption-api/internal/adapters/images/cloudinary"
	minioimg "pet-adoption-api/internal/adapters/images/minio"
	omisepay "pet-adoption-api/internal/adapters/payments/omise"
	mongostore "pet-adoption-api/internal/adapters/storage/mongo"
	pg "pet-adoption-api/internal/adapters/storage/postgres"
	"pet-adoption-api/internal/config"
	"pet-adoption-api/internal/domain/images"
	"pet-adoption-api/internal/domain/payments"
	"pet-adoption-api/internal/domain/sessions"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/platform/mongodb"
	"pet-adoption-api/internal/ports/auth"
	"pet-adoption-api/internal/ports/events"
	"pet-adoption-api/internal/router"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.Options{ConfigFile: os.Getenv("PETADOPT_CONFIG_FILE")})
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Server.LogLevel),
		Format: logger.ParseFormat(cfg.Server.LogFormat),
		App:    "pet-adoption-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var closers []func() error
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Warn("close failed", "error", err)
			}
		}
	}()

	repos, closeStore, err := openStore(ctx, cfg.Store, log)
	if err != nil {
		return err
	}
	closers = append(closers, closeStore)

	var revoker auth.Revoker
	switch cfg.Auth.Revocation {
	case "memory":
		revoker = revocation.NewMemory()
	case "redis":
		rr, err := revocation.NewRedis(cfg.Auth.RedisAddr, cfg.Auth.RedisPassword)
		if err != nil {
			return err
		}
		closers = append(closers, rr.Close)
		revoker = rr
	}
	sessOpts := []session.Option{}
	if revoker != nil {
		sessOpts = append(sessOpts, session.WithRevoker(revoker))
	}
	sess, err := session.New(session.Config{Secret: cfg.Auth.TokenSecret, TTL: cfg.Auth.TokenTTL}, sessOpts...)
	if err != nil {
		return err
	}

	var provider payments.Provider
	if cfg.Payments.Enabled() {
		p, err := omisepay.New(omisepay.Config{
			PublicKey:  cfg.Payments.OmisePublicKey,
			SecretKey:  cfg.Payments.OmiseSecretKey,
			SourceType: cfg.Payments.SourceType,
			ReturnURI:  cfg.Payments.ReturnURI,
		})
		if err != nil {
			return err
		}
		provider = p
	} else {
		log.Warn("payments disabled: omise keys not set")
	}

	uploader, err := openUploader(ctx, cfg.Images)
	if err != nil {
		return err
	}
	if uploader == nil {
		log.Warn("image uploads disabled", "provider", cfg.Images.Provider)
	}

	var pub events.Publisher = events.Nop{}
	if cfg.Events.AMQPURL != "" {
		p, err := amqppub.NewPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange)
		if err != nil {
			return err
		}
		closers = append(closers, p.Close)
		pub = p
	}

	handler, err := router.NewRouter(router.Options{
		Repos:    repos,
		Sessions: sess,
		Cookie: sessions.CookieConfig{
			Name:     cfg.Auth.CookieName,
			Secure:   cfg.Auth.CookieSecure,
			SameSite: sessions.ParseSameSite(cfg.Auth.CookieSameSite),
		},
		Payments:         provider,
		Currency:         cfg.Payments.Currency,
		Images:           uploader,
		MaxUploadBytes:   cfg.Images.MaxUploadBytes,
		Events:           pub,
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		ProtectAllWrites: cfg.Auth.ProtectAllWrites,
		Logger:           log,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", srv.Addr, "store", cfg.Store.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg config.StoreConfig, log *slog.Logger) (router.Repos, func() error, error) {
	switch cfg.Driver {
	case "mongo":
		client, err := mongodb.Open(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			User:     cfg.Mongo.User,
			Password: cfg.Mongo.Password,
			Host:     cfg.Mongo.Host,
			SRV:      cfg.Mongo.SRV,
			Database: cfg.Mongo.Database,
			Timeout:  cfg.Mongo.Timeout,
		})
		if err != nil {
			return router.Repos{}, nil, err
		}
		db := client.Database(cfg.Mongo.Database)
		log.Info("connected to mongodb", "database", cfg.Mongo.Database)
		repos := router.Repos{
			Pets:      mongostore.NewPetsRepo(db),
			Users:     mongostore.NewUsersRepo(db),
			Donations: mongostore.NewDonationsRepo(db),
			Adoptions: mongostore.NewAdoptionsRepo(db),
		}
		return repos, func() error { return client.Disconnect(context.Background()) }, nil

	case "postgres":
		db, err := pg.Open(ctx, cfg.Postgres.DSN)
		if err != nil {
			return router.Repos{}, nil, err
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return router.Repos{}, nil, err
		}
		log.Info("connected to postgres")
		return router.Repos{
			Pets:      pg.NewPetsRepo(db),
			Users:     pg.NewUsersRepo(db),
			Donations: pg.NewDonationsRepo(db),
			Adoptions: pg.NewAdoptionsRepo(db),
		}, db.Close, nil

	default:
		log.Warn("using in-memory store; data is lost on restart")
		return router.Repos{}, func() error { return nil }, nil
	}
}

// openUploader devuelve nil si el proveedor elegido no está configurado.
func openUploader(ctx context.Context, cfg config.ImagesConfig) (images.Uploader, error) {
	switch cfg.Provider {
	case "cloudinary":
		if !cfg.CloudinaryEnabled() {
			return nil, nil
		}
		return cloudinary.New(cloudinary.Config{
			CloudName: cfg.CloudinaryCloudName,
			APIKey:    cfg.CloudinaryAPIKey,
			APISecret: cfg.CloudinaryAPISecret,
			Folder:    cfg.CloudinaryFolder,
		})
	case "minio":
		return minioimg.New(ctx, minioimg.Config{
			Endpoint:      cfg.MinioEndpoint,
			AccessKey:     cfg.MinioAccessKey,
			SecretKey:     cfg.MinioSecretKey,
			Bucket:        cfg.MinioBucket,
			UseSSL:        cfg.MinioUseSSL,
			PublicBaseURL: cfg.MinioPublicBaseURL,
		})
	default:
		return nil, nil
	}
}
