package analytics

import "github.com/radieske/bet-tracker-platform/internal/tracker/model"

// Summary reúne os números de cabeçalho do dashboard, junto com os valores
// distintos de esporte/mercado usados para montar os filtros.
type Summary struct {
	TotalBets   int      `json:"totalBets"`
	WinRate     float64  `json:"winRate"`
	TotalStake  float64  `json:"totalStake"`
	TotalProfit float64  `json:"totalProfit"`
	Sports      []string `json:"sports"`
	Markets     []string `json:"markets"`
}

// TotalProfit soma o lucro realizado de todas as apostas.
func TotalProfit(bets []model.Bet) float64 {
	var total float64
	for _, b := range bets {
		total += Profit(b)
	}
	return total
}

// Summarize calcula o resumo de uma coleção de apostas. Entrada vazia
// produz o resumo zero.
func Summarize(bets []model.Bet) Summary {
	return Summary{
		TotalBets:   TotalBets(bets),
		WinRate:     WinRate(bets),
		TotalStake:  TotalStake(bets),
		TotalProfit: TotalProfit(bets),
		Sports:      distinct(bets, func(b model.Bet) string { return b.Sport }),
		Markets:     distinct(bets, func(b model.Bet) string { return b.Market }),
	}
}

// distinct devolve os valores distintos na ordem da primeira ocorrência.
func distinct(bets []model.Bet, key func(model.Bet) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, b := range bets {
		k := key(b)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// MoneyRollSummary é o desempenho agregado de uma money roll.
type MoneyRollSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	TotalBets   int     `json:"totalBets"`
	WinRate     float64 `json:"winRate"`
	TotalStake  float64 `json:"totalStake"`
	TotalProfit float64 `json:"totalProfit"`
}

// MoneyRollStats calcula o resumo por money roll, na ordem dos rolls
// recebidos. Apostas sem money roll não entram em nenhum grupo.
func MoneyRollStats(bets []model.Bet, rolls []model.MoneyRoll) []MoneyRollSummary {
	out := make([]MoneyRollSummary, 0, len(rolls))
	for _, roll := range rolls {
		var rollBets []model.Bet
		for _, b := range bets {
			if b.MoneyRollID == roll.ID {
				rollBets = append(rollBets, b)
			}
		}
		out = append(out, MoneyRollSummary{
			ID:          roll.ID,
			Name:        roll.Name,
			TotalBets:   TotalBets(rollBets),
			WinRate:     WinRate(rollBets),
			TotalStake:  TotalStake(rollBets),
			TotalProfit: TotalProfit(rollBets),
		})
	}
	return out
}
