package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/bet-tracker-platform/internal/shared/cache"
	"github.com/radieske/bet-tracker-platform/internal/shared/config"
	"github.com/radieske/bet-tracker-platform/internal/shared/db"
	skafka "github.com/radieske/bet-tracker-platform/internal/shared/kafka"
	"github.com/radieske/bet-tracker-platform/internal/shared/logger"
	"github.com/radieske/bet-tracker-platform/internal/shared/metrics"
	tcache "github.com/radieske/bet-tracker-platform/internal/tracker/cache"
	thttp "github.com/radieske/bet-tracker-platform/internal/tracker/http"
	"github.com/radieske/bet-tracker-platform/internal/tracker/producer"
	"github.com/radieske/bet-tracker-platform/internal/tracker/repo"
	"github.com/radieske/bet-tracker-platform/internal/tracker/ws"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Postgres
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg connect", zap.Error(err))
	}
	defer pg.Close()

	// Redis (cache de resumos + Pub/Sub do stream WebSocket)
	rdb, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer rdb.Close()

	// Kafka writers (tópicos bet_recorded e bet_settled)
	recordedWriter := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetRecorded)
	defer recordedWriter.Close()
	settledWriter := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetSettled)
	defer settledWriter.Close()

	// deps
	repository := repo.NewPostgres(pg)
	publ := producer.NewKafkaPublisher(recordedWriter, settledWriter)
	summaryCache := tcache.New(rdb, 5*time.Minute)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Hub WebSocket alimentado pelo Pub/Sub do Redis
	hub := ws.NewHub(func(r *http.Request) bool { return true })
	ws.StartRedisSubscriber(ctx, rdb, hub)

	// HTTP público
	api := thttp.NewServer(log, repository, publ, summaryCache, hub)
	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	// metrics/health
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return fmt.Errorf("pg: %w", err)
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		return nil
	})
	log.Info("metrics/health", zap.String("addr", ":"+cfg.MetricsPort))

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = apiSrv.Shutdown(shutdownCtx)
	}()

	log.Info("tracker-service listening", zap.String("addr", apiSrv.Addr))
	if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("api", zap.Error(err))
	}
	log.Info("tracker-service stopped")
}
