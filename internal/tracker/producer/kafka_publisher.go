package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/radieske/bet-tracker-platform/pkg/contracts/events"
)

// KafkaPublisher publica os eventos de ciclo de vida das apostas.
type KafkaPublisher struct {
	Recorded *kafka.Writer // tópico bet_recorded
	Settled  *kafka.Writer // tópico bet_settled
}

func NewKafkaPublisher(recorded, settled *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Recorded: recorded, Settled: settled}
}

func (p *KafkaPublisher) PublishBetRecorded(ctx context.Context, e events.BetRecorded) error {
	e.TsUnixMs = time.Now().UnixMilli()
	b, _ := json.Marshal(e)
	return p.Recorded.WriteMessages(ctx, kafka.Message{Key: []byte(e.UserID), Value: b})
}

func (p *KafkaPublisher) PublishBetSettled(ctx context.Context, e events.BetSettled) error {
	e.TsUnixMs = time.Now().UnixMilli()
	b, _ := json.Marshal(e)
	return p.Settled.WriteMessages(ctx, kafka.Message{Key: []byte(e.UserID), Value: b})
}
