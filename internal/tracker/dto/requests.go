package dto

// GetOrCreateUserRequest identifica o usuário pelo e-mail.
type GetOrCreateUserRequest struct {
	Email string `json:"email"`
}

// SelectionRequest é uma seleção de uma aposta Combined.
type SelectionRequest struct {
	Sport  string  `json:"sport"`
	Market string  `json:"market"`
	Odds   float64 `json:"odds"`
}

// RecordBetRequest registra uma aposta Simple ou Combined.
// Para Combined, odds é ignorada e recalculada como o produto das seleções.
type RecordBetRequest struct {
	UserID       string             `json:"userId"`
	Sport        string             `json:"sport"`
	Market       string             `json:"market"`
	BettingHouse string             `json:"bettingHouse"`
	Type         string             `json:"type"` // "Simple" | "Combined"
	Odds         float64            `json:"odds"`
	Stake        float64            `json:"stake"`
	MoneyRollID  string             `json:"moneyRollId,omitempty"`
	Selections   []SelectionRequest `json:"selections,omitempty"`
}

// SettleBetRequest define o resultado de uma aposta pendente.
type SettleBetRequest struct {
	Status string `json:"status"` // "Win" | "Lose"
}

// CreateMoneyRollRequest cria uma money roll para o usuário.
type CreateMoneyRollRequest struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}
