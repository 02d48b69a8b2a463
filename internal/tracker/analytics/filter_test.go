package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/bet-tracker-platform/internal/tracker/model"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 12, 0, 0, 0, time.UTC)
}

func fixtureBets() []model.Bet {
	return []model.Bet{
		{ID: "b1", Sport: "Football", Market: "1x2", StatusResult: model.StatusWin, MoneyRollID: "roll-1", CreatedAt: day(1)},
		{ID: "b2", Sport: "Tennis", Market: "Winner", StatusResult: model.StatusLose, MoneyRollID: "roll-2", CreatedAt: day(2)},
		{ID: "b3", Sport: "Football", Market: "Over/Under", StatusResult: model.StatusPending, CreatedAt: day(3)},
		{ID: "b4", Sport: "Basketball", Market: "1x2", StatusResult: model.StatusWin, MoneyRollID: "roll-1", CreatedAt: day(4)},
	}
}

func ids(bets []model.Bet) []string {
	out := make([]string, 0, len(bets))
	for _, b := range bets {
		out = append(out, b.ID)
	}
	return out
}

func TestFilterBets(t *testing.T) {
	bets := fixtureBets()

	t.Run("zero spec keeps everything in order", func(t *testing.T) {
		got := FilterBets(bets, FilterSpec{})
		assert.Equal(t, ids(bets), ids(got))
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		spec := FilterSpec{Sport: Exact("Football")}
		once := FilterBets(bets, spec)
		twice := FilterBets(once, spec)
		assert.Equal(t, once, twice)
	})

	t.Run("sport match is case-sensitive", func(t *testing.T) {
		got := FilterBets(bets, FilterSpec{Sport: Exact("Football")})
		assert.Equal(t, []string{"b1", "b3"}, ids(got))

		got = FilterBets(bets, FilterSpec{Sport: Exact("football")})
		assert.Empty(t, got)
	})

	t.Run("market match", func(t *testing.T) {
		got := FilterBets(bets, FilterSpec{Market: Exact("1x2")})
		assert.Equal(t, []string{"b1", "b4"}, ids(got))
	})

	t.Run("status match is case-insensitive", func(t *testing.T) {
		got := FilterBets(bets, FilterSpec{Status: ExactFold("win")})
		assert.Equal(t, []string{"b1", "b4"}, ids(got))

		got = FilterBets(bets, FilterSpec{Status: ExactFold("PENDING")})
		assert.Equal(t, []string{"b3"}, ids(got))
	})

	t.Run("bet without money roll only matches unrestricted filter", func(t *testing.T) {
		got := FilterBets(bets, FilterSpec{MoneyRoll: Exact("roll-1")})
		assert.Equal(t, []string{"b1", "b4"}, ids(got))

		got = FilterBets(bets, FilterSpec{MoneyRoll: Any()})
		assert.Len(t, got, 4)
	})

	t.Run("date bounds are inclusive", func(t *testing.T) {
		spec := FilterSpec{Dates: DateRange{From: day(2), To: day(3)}}
		got := FilterBets(bets, spec)
		assert.Equal(t, []string{"b2", "b3"}, ids(got))

		// exatamente nas pontas
		spec = FilterSpec{Dates: DateRange{From: day(1), To: day(1)}}
		got = FilterBets(bets, spec)
		assert.Equal(t, []string{"b1"}, ids(got))
	})

	t.Run("half-open range does not restrict", func(t *testing.T) {
		got := FilterBets(bets, FilterSpec{Dates: DateRange{From: day(2)}})
		assert.Len(t, got, 4)

		got = FilterBets(bets, FilterSpec{Dates: DateRange{To: day(2)}})
		assert.Len(t, got, 4)
	})

	t.Run("inverted range matches nothing", func(t *testing.T) {
		got := FilterBets(bets, FilterSpec{Dates: DateRange{From: day(4), To: day(1)}})
		assert.Empty(t, got)
	})

	t.Run("criteria combine with AND", func(t *testing.T) {
		spec := FilterSpec{
			Sport:     Exact("Football"),
			Status:    ExactFold("Win"),
			MoneyRoll: Exact("roll-1"),
		}
		got := FilterBets(bets, spec)
		assert.Equal(t, []string{"b1"}, ids(got))
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		got := FilterBets(nil, FilterSpec{Sport: Exact("Football")})
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}
