package main

import (
	"context"
	"log"
	"time"

	httpadapter "healthquest/internal/adapter/http"
	metricsinmem "healthquest/internal/adapter/metrics/inmemory"
	"healthquest/internal/adapter/repo/gormrepo"
	"healthquest/internal/adapter/repo/memory"
	"healthquest/internal/adapter/repo/redisrepo"
	"healthquest/internal/app/directory"
	"healthquest/internal/app/dispatch"
	"healthquest/internal/app/ports"
	"healthquest/internal/app/session"
	apptriage "healthquest/internal/app/triage"
	"healthquest/internal/config"
	"healthquest/internal/domain/catalog"
	"healthquest/internal/domain/game"
	"healthquest/internal/engine"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	cat := catalog.Default()
	sessionRepo, eventRepo, txManager := buildRepos(cfg)
	kpiRecorder := metricsinmem.NewRecorder()
	rules := game.Rules{Catalog: cat}

	// The supervisor drives tick dispatches through the same serialized
	// path as user actions; the closure breaks the construction cycle
	// between the two.
	var dispatchUC dispatch.UseCase
	supervisor := engine.NewSupervisor(func(ctx context.Context, sessionID string) error {
		_, err := dispatchUC.ExecuteTick(ctx, sessionID)
		return err
	}, cfg.TickInterval)
	defer supervisor.Close()

	dispatchUC = dispatch.UseCase{
		TxManager:   txManager,
		SessionRepo: sessionRepo,
		EventRepo:   eventRepo,
		Metrics:     kpiRecorder,
		Ticker:      supervisor,
		Rules:       rules,
		Now:         time.Now,
	}

	h := httpadapter.Handler{
		SessionUC: session.UseCase{
			SessionRepo: sessionRepo,
			Catalog:     cat,
			Now:         time.Now,
		},
		DispatchUC: dispatchUC,
		TriageUC: apptriage.UseCase{
			SessionRepo: sessionRepo,
			Dispatch:    dispatchUC,
		},
		DirectoryUC: directory.UseCase{
			Catalog:  cat,
			Dispatch: dispatchUC,
		},
		Events:     eventRepo,
		Catalog:    cat,
		EventLimit: cfg.EventLimit,
		KPI:        kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	h.RegisterRoutes(s)

	log.Printf("healthquest server listening on %s", cfg.HTTPAddr)
	s.Spin()
}

// buildRepos picks the storage backend: postgres when a DSN is set,
// redis when an address is set, otherwise the in-memory store that
// resets on restart.
func buildRepos(cfg config.Config) (ports.SessionRepository, ports.EventRepository, ports.TxManager) {
	if cfg.DBDSN != "" {
		db, err := gormrepo.OpenPostgres(cfg.DBDSN)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		if err := gormrepo.Migrate(db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		return gormrepo.NewSessionRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db)
	}

	if cfg.RedisAddr != "" {
		client := redisrepo.NewClient(cfg.RedisAddr)
		repo := redisrepo.NewSessionRepo(client, cfg.SessionTTL)
		if err := repo.Ping(context.Background()); err != nil {
			log.Fatalf("connect redis: %v", err)
		}
		return repo, redisrepo.NewEventRepo(client, cfg.SessionTTL), redisrepo.NewTxManager()
	}

	store := memory.NewStore()
	return memory.NewSessionRepo(store), memory.NewEventRepo(store), memory.NewTxManager(store)
}
