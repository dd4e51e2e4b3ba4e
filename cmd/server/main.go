package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"quickclaim/internal/admin"
	"quickclaim/internal/benefit"
	"quickclaim/internal/blob"
	"quickclaim/internal/claim"
	"quickclaim/internal/document"
	"quickclaim/internal/notification"
	"quickclaim/internal/notification/mailer"
	"quickclaim/internal/platform/config"
	"quickclaim/internal/platform/httpserver"
	"quickclaim/internal/platform/logger"
	"quickclaim/internal/platform/metrics"
	"quickclaim/internal/platform/postgres"
	"quickclaim/internal/platform/redis"
	"quickclaim/internal/platform/token"
	"quickclaim/internal/sources"
	httptransport "quickclaim/internal/transport/http"
	"quickclaim/internal/user"
)

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal service packages.
func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// Stores: Postgres when configured, in-memory twins otherwise.
	var (
		userStore     user.Store
		benefitStore  benefit.Store
		claimStore    claim.Store
		documentStore document.Store
		deliveryStore notification.Store
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			log.Error("failed to ensure schema", "error", err)
			os.Exit(1)
		}
		userStore = user.NewPostgres(db)
		benefitStore = benefit.NewPostgres(db)
		claimStore = claim.NewPostgres(db)
		documentStore = document.NewPostgres(db)
		deliveryStore = notification.NewPostgres(db)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		userStore = user.NewInMemoryStore()
		benefitStore = benefit.NewInMemoryStore()
		claimStore = claim.NewInMemoryStore()
		documentStore = document.NewInMemoryStore()
		deliveryStore = notification.NewInMemoryStore()
	}

	if seeded, err := benefit.Seed(ctx, benefitStore, time.Now()); err != nil {
		log.Error("failed to seed benefit catalog", "error", err)
		os.Exit(1)
	} else if seeded {
		log.Info("benefit catalog seeded")
	}

	var catalog benefit.Catalog = benefitStore
	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		catalog = benefit.NewCachedCatalog(benefitStore, redisClient, cfg.CatalogCacheTTL, log)
	}

	var blobStore blob.Store = blob.Unconfigured{}
	if cfg.BlobEndpoint != "" {
		blobStore, err = blob.NewMinIO(blob.Config{
			Endpoint:  cfg.BlobEndpoint,
			AccessKey: cfg.BlobAccessKey,
			SecretKey: cfg.BlobSecretKey,
			Bucket:    cfg.BlobBucket,
			UseSSL:    cfg.BlobUseSSL,
		})
		if err != nil {
			log.Error("failed to connect to object storage", "error", err)
			os.Exit(1)
		}
	} else {
		log.Warn("BLOB_ENDPOINT not set, uploads disabled")
	}

	var transport notification.Transport
	if cfg.ResendAPIKey != "" {
		transport = mailer.NewResend(cfg.ResendAPIKey, cfg.EmailFrom)
	} else {
		log.Warn("RESEND_API_KEY not set, logging emails instead of sending")
		transport = mailer.NewLog(log)
	}

	publisher := notification.NewPublisher(cfg.EventBuffer,
		notification.WithPublisherLogger(log),
		notification.WithDroppedCounter(m.NotificationsDropped),
	)
	dispatcher := notification.NewDispatcher(
		sources.NewClaimReader(claimStore, userStore),
		sources.NewUserReader(userStore),
		transport,
		deliveryStore,
		notification.WithDispatcherLogger(log),
		notification.WithDispatcherMetrics(m),
	)
	worker := notification.NewWorker(dispatcher, publisher.Inbox())

	userService := user.NewService(userStore,
		user.WithLogger(log),
		user.WithPublisher(publisher),
	)
	benefitService := benefit.NewService(catalog, userService, benefit.WithLogger(log))
	claimService := claim.NewService(claimStore,
		claim.WithLogger(log),
		claim.WithPublisher(publisher),
		claim.WithMetrics(m),
	)
	documentService := document.NewService(documentStore, claimStore, blobStore,
		document.WithLogger(log),
		document.WithDownloadURLTTL(cfg.DownloadURLTTL),
	)
	notificationService := notification.NewService(deliveryStore)

	tokens := token.NewService(cfg.JWTSigningKey, "quickclaim")

	if cfg.SeedDemo {
		seedDemoUser(ctx, log, userService, tokens)
	}

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:     log,
		Validator:  tokens,
		AdminToken: cfg.AdminToken,
		User: []httptransport.Registrable{
			user.NewHandler(userService, log),
			benefit.NewHandler(benefitService, log),
			claim.NewHandler(claimService, log),
			document.NewHandler(documentService, log),
		},
		Admin: []httptransport.Registrable{
			admin.NewHandler(claimService, notificationService, log),
		},
	})
	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		log.Info("starting quickclaim", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
