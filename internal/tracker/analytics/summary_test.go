package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/bet-tracker-platform/internal/tracker/model"
)

func TestSummarize(t *testing.T) {
	t.Run("aggregates headline numbers", func(t *testing.T) {
		bets := []model.Bet{
			{Sport: "Football", Market: "1x2", Stake: 10, Odds: 2, StatusResult: model.StatusWin},
			{Sport: "Tennis", Market: "Winner", Stake: 20, Odds: 3, StatusResult: model.StatusLose},
			{Sport: "Football", Market: "1x2", Stake: 5, Odds: 1.5, StatusResult: model.StatusPending},
		}
		s := Summarize(bets)

		assert.Equal(t, 3, s.TotalBets)
		assert.InDelta(t, 50, s.WinRate, 1e-9)
		assert.InDelta(t, 35, s.TotalStake, 1e-9)
		assert.InDelta(t, -10, s.TotalProfit, 1e-9) // +10 -20 +0
		assert.Equal(t, []string{"Football", "Tennis"}, s.Sports)
		assert.Equal(t, []string{"1x2", "Winner"}, s.Markets)
	})

	t.Run("empty collection yields zero summary", func(t *testing.T) {
		s := Summarize(nil)
		assert.Zero(t, s.TotalBets)
		assert.Zero(t, s.WinRate)
		assert.Zero(t, s.TotalStake)
		assert.Zero(t, s.TotalProfit)
		assert.Empty(t, s.Sports)
		assert.Empty(t, s.Markets)
	})
}

func TestMoneyRollStats(t *testing.T) {
	rolls := []model.MoneyRoll{
		{ID: "roll-1", Name: "Main"},
		{ID: "roll-2", Name: "Side"},
	}
	bets := []model.Bet{
		{MoneyRollID: "roll-1", Stake: 10, Odds: 2, StatusResult: model.StatusWin},
		{MoneyRollID: "roll-1", Stake: 10, Odds: 2, StatusResult: model.StatusLose},
		{MoneyRollID: "", Stake: 99, Odds: 5, StatusResult: model.StatusWin}, // sem roll, fica de fora
	}

	got := MoneyRollStats(bets, rolls)
	require.Len(t, got, 2)

	main := got[0]
	assert.Equal(t, "roll-1", main.ID)
	assert.Equal(t, "Main", main.Name)
	assert.Equal(t, 2, main.TotalBets)
	assert.InDelta(t, 50, main.WinRate, 1e-9)
	assert.InDelta(t, 20, main.TotalStake, 1e-9)
	assert.InDelta(t, 0, main.TotalProfit, 1e-9) // +10 -10

	// roll sem apostas zera tudo
	side := got[1]
	assert.Equal(t, "roll-2", side.ID)
	assert.Zero(t, side.TotalBets)
	assert.Zero(t, side.WinRate)
	assert.Zero(t, side.TotalStake)
	assert.Zero(t, side.TotalProfit)
}
