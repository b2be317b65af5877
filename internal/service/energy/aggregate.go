// Package energy computes the monthly output series and derived snapshots
// the dashboard renders and the analysis pipeline consumes.
package energy

import (
	"github.com/pradiptars/energimap/internal/domain"
	"github.com/shopspring/decimal"
)

// Scope is the geographic unit aggregation runs over: a single province or
// an island's province set.
type Scope struct {
	Name      string
	Provinces []string // set for island scopes; empty means single province
}

func ProvinceScope(name string) Scope {
	return Scope{Name: name}
}

func IslandScope(name string, provinces []string) Scope {
	return Scope{Name: name, Provinces: provinces}
}

func (s Scope) matches(provinceName string) bool {
	if len(s.Provinces) == 0 {
		return provinceName == s.Name
	}
	for _, p := range s.Provinces {
		if p == provinceName {
			return true
		}
	}
	return false
}

// MonthlySeries aggregates a flat record set into exactly twelve
// month-ordered entries. Each cell is the rounded mean of the matching
// records, so duplicate (province, energy, month) readings average rather
// than sum. Empty cells degrade to zero: a province with no wind records
// still renders a complete series.
func MonthlySeries(records []*domain.OutputRecord, scope Scope) []domain.MonthlyOutput {
	type cell struct {
		sum   decimal.Decimal
		count int64
	}

	var cells [12]map[domain.EnergyKind]*cell
	for i := range cells {
		cells[i] = map[domain.EnergyKind]*cell{}
	}

	for _, r := range records {
		if r.Month < 1 || r.Month > 12 || !scope.matches(r.ProvinceName) {
			continue
		}
		c, ok := cells[r.Month-1][r.EnergyID]
		if !ok {
			c = &cell{}
			cells[r.Month-1][r.EnergyID] = c
		}
		c.sum = c.sum.Add(decimal.NewFromFloat(r.Output))
		c.count++
	}

	mean := func(m int, k domain.EnergyKind) int {
		c, ok := cells[m][k]
		if !ok || c.count == 0 {
			return 0
		}
		return int(c.sum.Div(decimal.NewFromInt(c.count)).Round(0).IntPart())
	}

	series := make([]domain.MonthlyOutput, 0, 12)
	for m := 0; m < 12; m++ {
		entry := domain.MonthlyOutput{
			Month:       m + 1,
			SolarOutput: mean(m, domain.EnergySolar),
			WindOutput:  mean(m, domain.EnergyWind),
			HydroOutput: mean(m, domain.EnergyHydro),
		}
		entry.TotalOutput = entry.SolarOutput + entry.WindOutput + entry.HydroOutput
		series = append(series, entry)
	}

	return series
}
