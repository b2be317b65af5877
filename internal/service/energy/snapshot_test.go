package energy

import (
	"testing"

	"github.com/pradiptars/energimap/internal/domain"
	"github.com/stretchr/testify/assert"
)

func flatSeries(solar, wind, hydro int) []domain.MonthlyOutput {
	series := make([]domain.MonthlyOutput, 12)
	for i := range series {
		series[i] = domain.MonthlyOutput{
			Month:       i + 1,
			SolarOutput: solar,
			WindOutput:  wind,
			HydroOutput: hydro,
			TotalOutput: solar + wind + hydro,
		}
	}
	return series
}

func TestBuildSnapshot_AveragesAndAdjusts(t *testing.T) {
	snap := BuildSnapshot("DKI JAKARTA", flatSeries(100, 40, 200), DefaultMultipliers())

	assert.Equal(t, "DKI JAKARTA", snap.ScopeName)
	assert.Equal(t, 100, snap.AvgSolarOutput)
	assert.Equal(t, 40, snap.AvgWindOutput)
	assert.Equal(t, 200, snap.AvgHydroOutput)

	assert.Equal(t, 105, snap.CurrentSolarOutput)
	assert.Equal(t, 38, snap.CurrentWindOutput)
	assert.Equal(t, 220, snap.CurrentHydroOutput)

	assert.Equal(t, 85, snap.Efficiency)
	assert.False(t, snap.Empty())
}

func TestBuildSnapshot_CapacityLabels(t *testing.T) {
	snap := BuildSnapshot("JAWA BARAT", flatSeries(115, 5, 0), DefaultMultipliers())

	assert.Equal(t, "1,150 MW", snap.SolarCapacity)
	assert.Equal(t, "50 MW", snap.WindCapacity)
	assert.Equal(t, "0 MW", snap.HydroCapacity)
}

func TestBuildSnapshot_EmptySeries(t *testing.T) {
	snap := BuildSnapshot("MALUKU", flatSeries(0, 0, 0), DefaultMultipliers())

	assert.True(t, snap.Empty())
	assert.Zero(t, snap.Efficiency)
	assert.Zero(t, snap.CurrentSolarOutput)
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands(0))
	assert.Equal(t, "950", groupThousands(950))
	assert.Equal(t, "1,150", groupThousands(1150))
	assert.Equal(t, "12,345,678", groupThousands(12345678))
}
