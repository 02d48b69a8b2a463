package analytics

import (
	"strings"
	"time"

	"github.com/radieske/bet-tracker-platform/internal/tracker/model"
)

// Field restringe um campo do filtro: ou aceita qualquer valor (Any),
// ou exige igualdade com um valor exato (Exact / ExactFold).
type Field struct {
	value string
	exact bool
	fold  bool
}

// Any aceita qualquer valor do campo.
func Any() Field { return Field{} }

// Exact exige igualdade exata (case-sensitive) com v.
func Exact(v string) Field { return Field{value: v, exact: true} }

// ExactFold exige igualdade case-insensitive com v. Usado no status.
func ExactFold(v string) Field { return Field{value: v, exact: true, fold: true} }

// Matches informa se o valor v satisfaz a restrição do campo.
func (f Field) Matches(v string) bool {
	if !f.exact {
		return true
	}
	if f.fold {
		return strings.EqualFold(f.value, v)
	}
	return f.value == v
}

// DateRange limita createdAt ao intervalo [From, To], inclusivo nas duas
// pontas. Se qualquer extremo for zero o intervalo não restringe nada.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) contains(t time.Time) bool {
	if r.From.IsZero() || r.To.IsZero() {
		return true
	}
	return !t.Before(r.From) && !t.After(r.To)
}

// FilterSpec é o conjunto de critérios de seleção de apostas. O valor zero
// (todos os campos Any, Dates vazio) aceita qualquer aposta.
type FilterSpec struct {
	Dates     DateRange
	Sport     Field
	Market    Field
	Status    Field // construir com ExactFold
	MoneyRoll Field // aposta sem money roll só casa com Any
}

func (s FilterSpec) matches(b model.Bet) bool {
	return s.Dates.contains(b.CreatedAt) &&
		s.Sport.Matches(b.Sport) &&
		s.Market.Matches(b.Market) &&
		s.Status.Matches(b.StatusResult) &&
		s.MoneyRoll.Matches(b.MoneyRollID)
}

// FilterBets devolve as apostas que satisfazem todos os critérios do spec,
// preservando a ordem relativa da entrada. Função pura, nunca falha.
func FilterBets(bets []model.Bet, spec FilterSpec) []model.Bet {
	out := make([]model.Bet, 0, len(bets))
	for _, b := range bets {
		if spec.matches(b) {
			out = append(out, b)
		}
	}
	return out
}
