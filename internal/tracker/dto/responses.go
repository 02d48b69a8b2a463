package dto

import (
	"time"

	"github.com/radieske/bet-tracker-platform/internal/tracker/analytics"
	"github.com/radieske/bet-tracker-platform/internal/tracker/model"
)

// UserResponse é o usuário retornado por get-or-create.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecordBetResponse confirma o registro de uma aposta.
type RecordBetResponse struct {
	BetID  string `json:"betId"`
	Status string `json:"status"` // "Pending"
}

// BetResponse serializa uma aposta, com o nome da money roll resolvido
// quando houver.
type BetResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Sport         string    `json:"sport"`
	Market        string    `json:"market"`
	BettingHouse  string    `json:"bettingHouse"`
	Type          string    `json:"type"`
	Odds          float64   `json:"odds"`
	Stake         float64   `json:"stake"`
	StatusResult  string    `json:"statusResult"`
	MoneyRollID   string    `json:"moneyRollId,omitempty"`
	MoneyRollName string    `json:"moneyRollName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewBetResponse monta o BetResponse a partir do modelo, resolvendo o nome
// da money roll via rollNames (id -> nome).
func NewBetResponse(b model.Bet, rollNames map[string]string) BetResponse {
	return BetResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		Sport:         b.Sport,
		Market:        b.Market,
		BettingHouse:  b.BettingHouse,
		Type:          b.Type,
		Odds:          b.Odds,
		Stake:         b.Stake,
		StatusResult:  b.StatusResult,
		MoneyRollID:   b.MoneyRollID,
		MoneyRollName: rollNames[b.MoneyRollID],
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// MoneyRollResponse serializa uma money roll.
type MoneyRollResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// AnalyticsResponse agrega tudo que o dashboard consome: as apostas
// filtradas, o resumo e as sete séries derivadas.
type AnalyticsResponse struct {
	Bets           []BetResponse                `json:"bets"`
	Summary        analytics.Summary            `json:"summary"`
	AverageOdds    float64                      `json:"averageOdds"`
	ProfitOverTime []analytics.DailyProfit      `json:"profitOverTime"`
	Distribution   []analytics.SportCount       `json:"betDistribution"`
	WinRateBySport []analytics.SportWinRate     `json:"winRateBySport"`
	MarketStats    []analytics.MarketOdds       `json:"marketStats"`
	MoneyRolls     []analytics.MoneyRollSummary `json:"moneyRolls"`
}
