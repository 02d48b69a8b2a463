package topics

const (
	// Bets
	BetRecorded = "bet_recorded"
	BetSettled  = "bet_settled"
)
