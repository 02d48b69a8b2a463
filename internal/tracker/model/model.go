package model

import "time"

// Status de liquidação de uma aposta.
const (
	StatusPending = "Pending"
	StatusWin     = "Win"
	StatusLose    = "Lose"
)

// Tipo de aposta. Uma Combined tem odds iguais ao produto das odds das
// seleções; as seleções são gravadas como linhas Simple com stake zero.
const (
	TypeSimple   = "Simple"
	TypeCombined = "Combined"
)

// Limites de criação de apostas.
const (
	MinOdds = 1.01
)

// Bet é o registro persistido de uma aposta.
type Bet struct {
	ID           string
	UserID       string
	Sport        string
	Market       string
	BettingHouse string
	Type         string // "Simple" | "Combined"
	Odds         float64
	Stake        float64
	StatusResult string // "Pending" | "Win" | "Lose"
	MoneyRollID  string // vazio = sem money roll
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MoneyRoll é um rótulo de banca do usuário usado para agrupar apostas.
// Não modela saldo nem ledger.
type MoneyRoll struct {
	ID        string
	Name      string
	UserID    string
	Active    bool
	CreatedAt time.Time
}

// User identifica o dono das apostas e money rolls.
type User struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// IsCompleted informa se a aposta já saiu do estado Pending.
func IsCompleted(status string) bool { return status != StatusPending }

// CanSettle valida a transição de status. A liquidação é monotônica:
// apenas Pending -> {Win, Lose}.
func CanSettle(from, to string) bool {
	return from == StatusPending && (to == StatusWin || to == StatusLose)
}
