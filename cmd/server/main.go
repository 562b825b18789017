// Command server runs the registration desk backend. main wires stores,
// services, and handlers; business logic lives in the internal packages.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	bankhandler "regdesk/internal/bank/handler"
	bankservice "regdesk/internal/bank/service"
	bankstore "regdesk/internal/bank/store"
	cataloghandler "regdesk/internal/catalog/handler"
	catalogservice "regdesk/internal/catalog/service"
	catalogstore "regdesk/internal/catalog/store"
	"regdesk/internal/department"
	identityhandler "regdesk/internal/identity/handler"
	identitymodels "regdesk/internal/identity/models"
	identityservice "regdesk/internal/identity/service"
	identitystore "regdesk/internal/identity/store"
	"regdesk/internal/platform/config"
	"regdesk/internal/platform/httpserver"
	"regdesk/internal/platform/logger"
	"regdesk/internal/platform/metrics"
	"regdesk/internal/platform/middleware"
	"regdesk/internal/platform/postgres"
	"regdesk/internal/platform/redis"
	prospectushandler "regdesk/internal/prospectus/handler"
	prospectusservice "regdesk/internal/prospectus/service"
	prospectusstore "regdesk/internal/prospectus/store"
	reghandler "regdesk/internal/registration/handler"
	regmetrics "regdesk/internal/registration/metrics"
	regservice "regdesk/internal/registration/service"
	regstore "regdesk/internal/registration/store"
	"regdesk/pkg/platform/audit"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// stores groups every persistence dependency so run can swap the whole set
// between Postgres and the in-memory twins.
type stores struct {
	registrations regstore.RegistrationStore
	transactions  regstore.TransactionStore
	prospects     prospectusstore.Store
	banks         bankstore.Store
	catalog       catalogstore.Store
	departments   department.Store
	identities    identitystore.Store
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var st stores
	if cfg.PostgresDSN != "" {
		db, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		st = stores{
			registrations: regstore.NewPostgresRegistrations(db),
			transactions:  regstore.NewPostgresTransactions(db),
			prospects:     prospectusstore.NewPostgres(db),
			banks:         bankstore.NewPostgres(db),
			catalog:       catalogstore.NewPostgres(db),
			departments:   department.NewPostgres(db),
			identities:    identitystore.NewPostgres(db),
		}
		log.Info("using postgres stores")
	} else {
		adminRole := &identitymodels.Role{ID: 1, Name: "Admin"}
		identities := identitystore.NewInMemory(adminRole)
		st = stores{
			registrations: regstore.NewInMemoryRegistrations(),
			transactions:  regstore.NewInMemoryTransactions(),
			prospects:     prospectusstore.NewInMemory(),
			banks:         bankstore.NewInMemory(),
			catalog:       catalogstore.NewInMemory(),
			departments:   department.NewInMemory(),
			identities:    identities,
		}
		log.Warn("no postgres DSN configured, using in-memory stores")

		if cfg.Admin.Username != "" && cfg.Admin.Password != "" {
			if err := seedAdmin(ctx, identities, cfg.Admin, adminRole.ID); err != nil {
				return err
			}
			log.Info("seeded bootstrap executive", "username", cfg.Admin.Username)
		}
	}

	cache, err := redis.New(cfg.Redis)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()
		log.Info("catalog cache enabled", "ttl", cfg.Redis.CacheTTL)
	}

	var publisher audit.Publisher = audit.Noop{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafka, err := audit.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = kafka.Close(shutdownCtx)
		}()
		publisher = kafka
		log.Info("audit events publishing to kafka", "topic", cfg.Kafka.Topic)
	}

	m := metrics.New()

	registrationService := regservice.New(
		st.registrations, st.transactions, st.prospects, log,
		regservice.WithAudit(publisher),
		regservice.WithObserver(regmetrics.New()),
		regservice.WithReaders(st.prospects, st.banks),
	)
	prospectusService := prospectusservice.New(st.prospects, log)
	bankService := bankservice.New(st.banks, st.registrations, log)
	catalogService := catalogservice.New(st.catalog, cache, cfg.Redis.CacheTTL, log)
	departmentService := department.NewService(st.departments, log)
	identityService := identityservice.New(
		st.identities, cfg.JWT.SigningKey, cfg.JWT.TTL, log,
		identityservice.WithAudit(publisher),
		identityservice.WithMetrics(m),
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Timeout(30 * time.Second))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	identityhandler.New(identityService, log).Register(router)

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.Latency(m, "api"))
		r.Use(middleware.RequireAuth(identityService, log))
		reghandler.New(registrationService, log).Register(r)
		prospectushandler.New(prospectusService, log).Register(r)
		bankhandler.New(bankService, log).Register(r)
		cataloghandler.New(catalogService, log).Register(r)
		department.NewHandler(departmentService, log).Register(r)
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// seedAdmin inserts the bootstrap executive into a fresh in-memory store so
// a development instance is usable without Postgres.
func seedAdmin(ctx context.Context, identities identitystore.Store, admin config.AdminConfig, roleID int64) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = identities.InsertExecutive(ctx, &identitymodels.Executive{
		Username:     admin.Username,
		PasswordHash: string(hash),
		EntityType:   "admin",
		RoleID:       &roleID,
	})
	return err
}
