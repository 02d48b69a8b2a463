package analytics

import (
	"sort"

	"github.com/radieske/bet-tracker-platform/internal/tracker/model"
)

// Profit calcula o lucro/prejuízo realizado de uma aposta com odds decimais:
// vitória rende stake*(odds-1), derrota perde o stake inteiro e uma aposta
// pendente (ou com status desconhecido) contribui com zero.
func Profit(b model.Bet) float64 {
	switch b.StatusResult {
	case model.StatusWin:
		return b.Stake * (b.Odds - 1)
	case model.StatusLose:
		return -b.Stake
	default:
		return 0
	}
}

// TotalBets conta as apostas da coleção.
func TotalBets(bets []model.Bet) int { return len(bets) }

// WinRate calcula o percentual de vitórias (0..100) entre as apostas já
// liquidadas. Sem apostas liquidadas, retorna 0.
func WinRate(bets []model.Bet) float64 {
	var completed, wins int
	for _, b := range bets {
		if !model.IsCompleted(b.StatusResult) {
			continue
		}
		completed++
		if b.StatusResult == model.StatusWin {
			wins++
		}
	}
	if completed == 0 {
		return 0
	}
	return float64(wins) / float64(completed) * 100
}

// TotalStake soma o valor arriscado em todas as apostas, pendentes incluídas.
func TotalStake(bets []model.Bet) float64 {
	var total float64
	for _, b := range bets {
		total += b.Stake
	}
	return total
}

// AverageOdds calcula a média aritmética das odds. Entrada vazia retorna 0.
func AverageOdds(bets []model.Bet) float64 {
	if len(bets) == 0 {
		return 0
	}
	var sum float64
	for _, b := range bets {
		sum += b.Odds
	}
	return sum / float64(len(bets))
}

// DailyProfit é o lucro agregado de um dia de calendário.
type DailyProfit struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Profit float64 `json:"profit"`
}

// ProfitOverTime agrupa o lucro realizado por dia de calendário (UTC) do
// createdAt e devolve a série ordenada por data crescente.
func ProfitOverTime(bets []model.Bet) []DailyProfit {
	byDate := make(map[string]float64)
	for _, b := range bets {
		date := b.CreatedAt.UTC().Format("2006-01-02")
		byDate[date] += Profit(b)
	}

	out := make([]DailyProfit, 0, len(byDate))
	for date, profit := range byDate {
		out = append(out, DailyProfit{Date: date, Profit: profit})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// SportCount é a quantidade de apostas de um esporte.
type SportCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// BetDistribution conta as apostas por esporte, na ordem em que cada esporte
// aparece na entrada.
func BetDistribution(bets []model.Bet) []SportCount {
	counts := make(map[string]int)
	var order []string
	for _, b := range bets {
		if _, seen := counts[b.Sport]; !seen {
			order = append(order, b.Sport)
		}
		counts[b.Sport]++
	}

	out := make([]SportCount, 0, len(order))
	for _, sport := range order {
		out = append(out, SportCount{Name: sport, Value: counts[sport]})
	}
	return out
}

// SportWinRate é o percentual de vitórias de um esporte.
type SportWinRate struct {
	Name    string  `json:"name"`
	WinRate float64 `json:"winRate"`
}

// WinRateBySport calcula, por esporte, o mesmo win rate da função global,
// na ordem em que cada esporte aparece na entrada.
func WinRateBySport(bets []model.Bet) []SportWinRate {
	type tally struct{ completed, wins int }
	bySport := make(map[string]*tally)
	var order []string
	for _, b := range bets {
		t, seen := bySport[b.Sport]
		if !seen {
			t = &tally{}
			bySport[b.Sport] = t
			order = append(order, b.Sport)
		}
		if !model.IsCompleted(b.StatusResult) {
			continue
		}
		t.completed++
		if b.StatusResult == model.StatusWin {
			t.wins++
		}
	}

	out := make([]SportWinRate, 0, len(order))
	for _, sport := range order {
		t := bySport[sport]
		rate := 0.0
		if t.completed > 0 {
			rate = float64(t.wins) / float64(t.completed) * 100
		}
		out = append(out, SportWinRate{Name: sport, WinRate: rate})
	}
	return out
}

// MarketOdds é a média de odds de um mercado.
type MarketOdds struct {
	Market  string  `json:"market"`
	AvgOdds float64 `json:"avgOdds"`
}

// MarketStats calcula a média aritmética das odds por mercado, na ordem em
// que cada mercado aparece na entrada.
func MarketStats(bets []model.Bet) []MarketOdds {
	type tally struct {
		count   int
		oddsSum float64
	}
	byMarket := make(map[string]*tally)
	var order []string
	for _, b := range bets {
		t, seen := byMarket[b.Market]
		if !seen {
			t = &tally{}
			byMarket[b.Market] = t
			order = append(order, b.Market)
		}
		t.count++
		t.oddsSum += b.Odds
	}

	out := make([]MarketOdds, 0, len(order))
	for _, market := range order {
		t := byMarket[market]
		out = append(out, MarketOdds{Market: market, AvgOdds: t.oddsSum / float64(t.count)})
	}
	return out
}
