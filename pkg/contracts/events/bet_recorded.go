package events

// Evento publicado no tópico "bet_recorded" quando uma nova aposta é registrada.
type BetRecorded struct {
	BetID    string  `json:"bet_id"`
	UserID   string  `json:"user_id"`
	Sport    string  `json:"sport"`
	Market   string  `json:"market"`
	Type     string  `json:"type"` // "Simple" | "Combined"
	Stake    float64 `json:"stake"`
	Odds     float64 `json:"odds"`
	TsUnixMs int64   `json:"ts_unix_ms"`
}
