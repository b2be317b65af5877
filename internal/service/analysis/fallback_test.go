package analysis

import (
	"fmt"
	"testing"

	"github.com/pradiptars/energimap/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFallbackAnalysis_ByteIdenticalForSameSnapshot(t *testing.T) {
	snap := testSnapshot()

	for _, kind := range domain.EnergyKinds {
		first := FallbackAnalysis(kind, snap)
		second := FallbackAnalysis(kind, snap)
		assert.Equal(t, first, second, "fallback must be deterministic for %s", kind)
		assert.NotEmpty(t, first)
	}
}

func TestFallbackAnalysis_SolarEmbedsStatusAndWasteEstimate(t *testing.T) {
	snap := testSnapshot()
	text := FallbackAnalysis(domain.EnergySolar, snap)

	assert.Contains(t, text, "850 MW")
	assert.Contains(t, text, "89 MW")
	assert.Contains(t, text, "94 MW")
	assert.Contains(t, text, "77%")
	// round(94 * 0.1) = 9 tons of panel waste per year
	assert.Contains(t, text, fmt.Sprintf("Diperkirakan %d ton", 9))
	assert.Contains(t, text, "REKOMENDASI ACTIONABLE")
}

func TestFallbackAnalysis_WindWasteFormulas(t *testing.T) {
	text := FallbackAnalysis(domain.EnergyWind, testSnapshot())

	// round(46 * 0.15) = 7 ton/tahun blade waste, round(46*12) = 552 ton/decade
	assert.Contains(t, text, "7 ton/tahun")
	assert.Contains(t, text, "552 ton/decade")
}

func TestFallbackAnalysis_HydroSedimentFormula(t *testing.T) {
	text := FallbackAnalysis(domain.EnergyHydro, testSnapshot())

	// round(108 * 100) = 10800 m3 of sediment per year
	assert.Contains(t, text, "10800 m3")
	assert.Contains(t, text, "Infrastructure Longevity")
}

func TestFallbackAnalysis_UnknownKindNeverFails(t *testing.T) {
	text := FallbackAnalysis(domain.EnergyKind("GEOTHERMAL"), testSnapshot())

	assert.Contains(t, text, "Analisis Energi Terbarukan")
	assert.Contains(t, text, "DKI JAKARTA")
}
