package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/bet-tracker-platform/internal/tracker/analytics"
	"github.com/radieske/bet-tracker-platform/internal/tracker/cache"
	"github.com/radieske/bet-tracker-platform/internal/tracker/model"
)

// BetSource define a leitura de apostas usada no recálculo de resumos.
type BetSource interface {
	ListActiveBets(ctx context.Context, userID string) ([]model.Bet, error)
}

// betEvent é o envelope mínimo comum aos eventos de aposta: basta o usuário
// para saber qual resumo recalcular.
type betEvent struct {
	UserID string `json:"user_id"`
}

// Worker consome eventos de apostas do Kafka e, para cada um, recarrega as
// apostas do usuário, recalcula o resumo, atualiza o cache Redis e publica
// o resultado no Pub/Sub para o stream WebSocket.
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa.
type Worker struct {
	Log    *zap.Logger
	Reader *kafka.Reader
	Repo   BetSource
	Cache  *cache.SummaryCache

	OnConsumed  func()       // métricas (counter++)
	OnRefreshed func()       // métricas
	OnError     func(string) // métricas por fase

	// Após recalcular com sucesso, envia o resumo para o WebSocket
	OnAfterRefresh func(userID string, s analytics.Summary)
}

// Run inicia o loop principal de consumo e recálculo.
func (w *Worker) Run(ctx context.Context) error {
	for {
		m, err := w.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // encerra se o contexto for cancelado
			}
			w.Log.Warn("kafka read failed", zap.Error(err))
			if w.OnError != nil {
				w.OnError("read")
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if w.OnConsumed != nil {
			w.OnConsumed() // callback de métrica: mensagem consumida
		}

		var ev betEvent
		if err := json.Unmarshal(m.Value, &ev); err != nil || ev.UserID == "" {
			w.Log.Warn("invalid message", zap.Error(err))
			if w.OnError != nil {
				w.OnError("decode")
			}
			continue
		}

		if err := w.Refresh(ctx, ev.UserID); err != nil {
			w.Log.Warn("summary refresh failed", zap.String("userId", ev.UserID), zap.Error(err))
			if w.OnError != nil {
				w.OnError("refresh")
			}
			continue
		}
		if w.OnRefreshed != nil {
			w.OnRefreshed() // callback de métrica: resumo recalculado
		}
	}
}

// Refresh recalcula e publica o resumo de um usuário.
func (w *Worker) Refresh(ctx context.Context, userID string) error {
	bets, err := w.Repo.ListActiveBets(ctx, userID)
	if err != nil {
		return err
	}

	summary := analytics.Summarize(bets)
	if err := w.Cache.Set(ctx, userID, summary); err != nil {
		return err
	}

	if w.OnAfterRefresh != nil {
		w.OnAfterRefresh(userID, summary)
	}
	return nil
}
