package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/radieske/bet-tracker-platform/internal/tracker/analytics"
	"github.com/radieske/bet-tracker-platform/internal/tracker/model"
)

func sampleBets() []model.Bet {
	created := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)
	return []model.Bet{
		{ID: "b1", Sport: "Football", Market: "1x2", StatusResult: model.StatusWin, MoneyRollID: "roll-1", CreatedAt: created},
		{ID: "b2", Sport: "Tennis", Market: "Winner", StatusResult: model.StatusPending, CreatedAt: created.AddDate(0, 0, 5)},
	}
}

func TestFilterQueryToSpec(t *testing.T) {
	bets := sampleBets()

	t.Run("empty query is permissive", func(t *testing.T) {
		q := FilterQuery{}
		assert.True(t, q.IsZero())
		assert.Len(t, analytics.FilterBets(bets, q.ToSpec()), 2)
	})

	t.Run("all sentinels are permissive", func(t *testing.T) {
		q := FilterQuery{Sport: AllSports, Market: AllMarkets, Status: AllResults, MoneyRoll: AllMoneyRolls}
		assert.False(t, q.IsZero())
		assert.Len(t, analytics.FilterBets(bets, q.ToSpec()), 2)
	})

	t.Run("literal values restrict", func(t *testing.T) {
		q := FilterQuery{Sport: "Football", MoneyRoll: "roll-1"}
		got := analytics.FilterBets(bets, q.ToSpec())
		assert.Len(t, got, 1)
		assert.Equal(t, "b1", got[0].ID)
	})

	t.Run("status comparison ignores case", func(t *testing.T) {
		q := FilterQuery{Status: "WIN"}
		got := analytics.FilterBets(bets, q.ToSpec())
		assert.Len(t, got, 1)
		assert.Equal(t, "b1", got[0].ID)
	})

	t.Run("date range needs both bounds", func(t *testing.T) {
		q := FilterQuery{From: "2025-03-01"}
		assert.Len(t, analytics.FilterBets(bets, q.ToSpec()), 2)

		q = FilterQuery{From: "2025-03-01", To: "2025-03-12"}
		got := analytics.FilterBets(bets, q.ToSpec())
		assert.Len(t, got, 1)
		assert.Equal(t, "b1", got[0].ID)
	})

	t.Run("accepts RFC3339 timestamps", func(t *testing.T) {
		q := FilterQuery{From: "2025-03-10T00:00:00Z", To: "2025-03-10T23:59:59Z"}
		got := analytics.FilterBets(bets, q.ToSpec())
		assert.Len(t, got, 1)
		assert.Equal(t, "b1", got[0].ID)
	})

	t.Run("invalid dates do not restrict", func(t *testing.T) {
		q := FilterQuery{From: "not-a-date", To: "2025-03-12"}
		assert.Len(t, analytics.FilterBets(bets, q.ToSpec()), 2)
	})
}
