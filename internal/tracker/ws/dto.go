package ws

// ClientMsg representa uma mensagem recebida do cliente WebSocket
// Type: subscribe | unsubscribe | ping
// UserID: obrigatório para subscribe/unsubscribe
type ClientMsg struct {
	Type   string `json:"type"`   // subscribe | unsubscribe | ping
	UserID string `json:"userId"` // requerido em subscribe/unsubscribe
}

// SummaryUpdate representa um resumo recalculado enviado aos clientes
// WebSocket inscritos no usuário.
type SummaryUpdate struct {
	UserID  string      `json:"userId"`
	Payload interface{} `json:"payload"`
}
