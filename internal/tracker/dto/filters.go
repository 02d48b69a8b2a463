package dto

import (
	"time"

	"github.com/radieske/bet-tracker-platform/internal/tracker/analytics"
)

// Sentinelas "todos" aceitas na query string. Existem só na borda HTTP;
// o motor de analytics trabalha com filtros tipados.
const (
	AllSports     = "All Sports"
	AllMarkets    = "All Markets"
	AllResults    = "All Results"
	AllMoneyRolls = "All Money Rolls"
)

// Formatos de data aceitos em from/to.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// FilterQuery carrega os parâmetros crus de filtro da query string.
// Campos vazios equivalem à sentinela "todos".
type FilterQuery struct {
	From      string
	To        string
	Sport     string
	Market    string
	Status    string
	MoneyRoll string
}

// IsZero informa se nenhum filtro foi aplicado.
func (q FilterQuery) IsZero() bool { return q == FilterQuery{} }

// ToSpec converte os parâmetros crus no FilterSpec tipado do motor.
// Intervalo de datas só restringe quando as duas pontas são datas válidas.
func (q FilterQuery) ToSpec() analytics.FilterSpec {
	spec := analytics.FilterSpec{
		Sport:     fieldOf(q.Sport, AllSports),
		Market:    fieldOf(q.Market, AllMarkets),
		MoneyRoll: fieldOf(q.MoneyRoll, AllMoneyRolls),
		Status:    analytics.Any(),
	}
	if q.Status != "" && q.Status != AllResults {
		spec.Status = analytics.ExactFold(q.Status)
	}

	from, okFrom := parseDate(q.From)
	to, okTo := parseDate(q.To)
	if okFrom && okTo {
		spec.Dates = analytics.DateRange{From: from, To: to}
	}
	return spec
}

func fieldOf(v, sentinel string) analytics.Field {
	if v == "" || v == sentinel {
		return analytics.Any()
	}
	return analytics.Exact(v)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
