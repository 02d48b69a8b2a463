package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/bet-tracker-platform/internal/shared/cache"
	"github.com/radieske/bet-tracker-platform/internal/shared/config"
	"github.com/radieske/bet-tracker-platform/internal/shared/db"
	skafka "github.com/radieske/bet-tracker-platform/internal/shared/kafka"
	"github.com/radieske/bet-tracker-platform/internal/shared/logger"
	"github.com/radieske/bet-tracker-platform/internal/shared/metrics"
	"github.com/radieske/bet-tracker-platform/internal/summary/consumer"
	"github.com/radieske/bet-tracker-platform/internal/summary/pubsub"
	"github.com/radieske/bet-tracker-platform/internal/tracker/analytics"
	tcache "github.com/radieske/bet-tracker-platform/internal/tracker/cache"
	"github.com/radieske/bet-tracker-platform/internal/tracker/repo"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Inicializa dependências: Postgres e Redis
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	rdb, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer rdb.Close()

	repository := repo.NewPostgres(pg)
	summaryCache := tcache.New(rdb, 5*time.Minute)

	// Métricas Prometheus para monitoramento do recálculo
	consumed := prometheus.NewCounter(prometheus.CounterOpts{Name: "summary_worker_messages_consumed_total", Help: "mensagens consumidas"})
	refreshed := prometheus.NewCounter(prometheus.CounterOpts{Name: "summary_worker_refreshes_total", Help: "resumos recalculados"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "summary_worker_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(consumed, refreshed, errorsBy)

	// Broadcaster para publicar resumos no Redis Pub/Sub (usado pelo tracker-service/ws)
	broadcaster := pubsub.NewRedisBroadcaster(rdb)

	onAfterRefresh := func(userID string, s analytics.Summary) {
		msg := pubsub.WSUpdate{UserID: userID, Payload: s}
		b, _ := json.Marshal(msg)

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := broadcaster.Publish(ctx, pubsub.ChannelSummaryBroadcast, b); err != nil {
			log.Warn("ws broadcast publish failed", zap.Error(err))
		}
	}

	// Um reader por tópico: registro e liquidação de apostas disparam o
	// mesmo recálculo de resumo.
	newWorker := func(topic string) *consumer.Worker {
		return &consumer.Worker{
			Log:            log,
			Reader:         skafka.NewReader(cfg.KafkaBrokers, topic, "summary-worker"),
			Repo:           repository,
			Cache:          summaryCache,
			OnConsumed:     func() { consumed.Inc() },
			OnRefreshed:    func() { refreshed.Inc() },
			OnError:        func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
			OnAfterRefresh: onAfterRefresh,
		}
	}
	workers := []*consumer.Worker{
		newWorker(cfg.TopicBetRecorded),
		newWorker(cfg.TopicBetSettled),
	}

	// Servidor HTTP para métricas e health check
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

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("summary-worker started",
		zap.String("consume", cfg.TopicBetRecorded+","+cfg.TopicBetSettled),
	)

	var wg sync.WaitGroup
	for _, w := range workers {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer w.Reader.Close()
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error("worker stopped with error", zap.Error(err))
				cancel()
			}
		}()
	}
	wg.Wait()
	log.Info("summary-worker stopped")
}
