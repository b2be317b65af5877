package energy

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pradiptars/energimap/internal/domain"
)

// Multipliers tunes the derived "today" figures and the efficiency shown on
// the dashboard. These are presentation knobs loaded from config, not
// measured values.
type Multipliers struct {
	Solar          float64
	Wind           float64
	Hydro          float64
	BaseEfficiency int
}

// DefaultMultipliers matches the dashboard's historical display behavior.
func DefaultMultipliers() Multipliers {
	return Multipliers{Solar: 1.05, Wind: 0.95, Hydro: 1.10, BaseEfficiency: 85}
}

// BuildSnapshot reduces a twelve-month series into the per-scope snapshot:
// average-of-12 per kind, a capacity label, and the adjusted current
// outputs. A series with no data at all yields a snapshot whose Empty()
// reports true and whose efficiency is zero.
func BuildSnapshot(scopeName string, series []domain.MonthlyOutput, m Multipliers) domain.EnergyDataSnapshot {
	var solarSum, windSum, hydroSum int
	for _, e := range series {
		solarSum += e.SolarOutput
		windSum += e.WindOutput
		hydroSum += e.HydroOutput
	}

	n := len(series)
	avg := func(sum int) int {
		if n == 0 {
			return 0
		}
		return int(math.Round(float64(sum) / float64(n)))
	}

	snap := domain.EnergyDataSnapshot{
		ScopeName:      scopeName,
		AvgSolarOutput: avg(solarSum),
		AvgWindOutput:  avg(windSum),
		AvgHydroOutput: avg(hydroSum),
	}

	snap.CurrentSolarOutput = adjust(snap.AvgSolarOutput, m.Solar)
	snap.CurrentWindOutput = adjust(snap.AvgWindOutput, m.Wind)
	snap.CurrentHydroOutput = adjust(snap.AvgHydroOutput, m.Hydro)

	snap.SolarCapacity = capacityLabel(snap.AvgSolarOutput)
	snap.WindCapacity = capacityLabel(snap.AvgWindOutput)
	snap.HydroCapacity = capacityLabel(snap.AvgHydroOutput)

	if !snap.Empty() {
		snap.Efficiency = m.BaseEfficiency
	}

	return snap
}

func adjust(avg int, multiplier float64) int {
	return int(math.Round(float64(avg) * multiplier))
}

// capacityLabel renders installed capacity as the dashboard shows it,
// an order of magnitude above average output: "1,150 MW".
func capacityLabel(avg int) string {
	return fmt.Sprintf("%s MW", groupThousands(avg*10))
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
