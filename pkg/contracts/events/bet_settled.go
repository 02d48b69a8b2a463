package events

// Evento publicado no tópico "bet_settled" quando o resultado de uma aposta é definido.
type BetSettled struct {
	BetID    string `json:"bet_id"`
	UserID   string `json:"user_id"`
	Status   string `json:"status"` // "Win" | "Lose"
	TsUnixMs int64  `json:"ts_unix_ms"`
}
