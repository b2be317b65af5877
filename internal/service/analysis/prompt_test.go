package analysis

import (
	"testing"

	"github.com/pradiptars/energimap/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testSnapshot() domain.EnergyDataSnapshot {
	return domain.EnergyDataSnapshot{
		ScopeName:          "DKI JAKARTA",
		SolarCapacity:      "850 MW",
		WindCapacity:       "450 MW",
		HydroCapacity:      "1,150 MW",
		AvgSolarOutput:     94,
		AvgWindOutput:      46,
		AvgHydroOutput:     108,
		CurrentSolarOutput: 89,
		CurrentWindOutput:  42,
		CurrentHydroOutput: 115,
		Efficiency:         77,
	}
}

func TestComposePrompt_SolarEmbedsSnapshotFigures(t *testing.T) {
	prompt := ComposePrompt(domain.AnalysisRequest{
		EnergyType: domain.EnergySolar,
		Snapshot:   testSnapshot(),
		UseContext: true,
	})

	assert.Contains(t, prompt, "850 MW")
	assert.Contains(t, prompt, "89 MW")
	assert.Contains(t, prompt, "94 MW")
	assert.Contains(t, prompt, "77%")
	assert.Contains(t, prompt, "Durability & Lifespan")
	assert.NotContains(t, prompt, "PERTANYAAN SPESIFIK USER")
}

func TestComposePrompt_WindAndHydroChecklists(t *testing.T) {
	wind := ComposePrompt(domain.AnalysisRequest{
		EnergyType: domain.EnergyWind,
		Snapshot:   testSnapshot(),
		UseContext: true,
	})
	assert.Contains(t, wind, "Blade Degradation")
	assert.Contains(t, wind, "450 MW")

	hydro := ComposePrompt(domain.AnalysisRequest{
		EnergyType: domain.EnergyHydro,
		Snapshot:   testSnapshot(),
		UseContext: true,
	})
	assert.Contains(t, hydro, "Sediment Management")
	assert.Contains(t, hydro, "1,150 MW")
}

func TestComposePrompt_AppendsUserQuestionVerbatim(t *testing.T) {
	prompt := ComposePrompt(domain.AnalysisRequest{
		EnergyType:   domain.EnergySolar,
		UserQuestion: "Berapa lama umur panel di iklim tropis?",
		Snapshot:     testSnapshot(),
		UseContext:   true,
	})

	assert.Contains(t, prompt, "PERTANYAAN SPESIFIK USER: Berapa lama umur panel di iklim tropis?")
	// Question or not, the template still requests the full analysis.
	assert.Contains(t, prompt, "FOKUS ANALISIS")
}

func TestComposePrompt_NoContextRelaysQuestion(t *testing.T) {
	prompt := ComposePrompt(domain.AnalysisRequest{
		UserQuestion: "Apa itu energi terbarukan?",
		UseContext:   false,
	})

	assert.Contains(t, prompt, "Apa itu energi terbarukan?")
	assert.NotContains(t, prompt, "FOKUS ANALISIS")
}

func TestComposePrompt_UnknownKindFallsBackToGeneric(t *testing.T) {
	prompt := ComposePrompt(domain.AnalysisRequest{
		EnergyType:   domain.EnergyKind("GEOTHERMAL"),
		UserQuestion: "bagaimana prospeknya?",
		Snapshot:     testSnapshot(),
		UseContext:   true,
	})

	assert.Contains(t, prompt, "bagaimana prospeknya?")
	assert.NotContains(t, prompt, "FOKUS ANALISIS")
}

func TestComposePrompt_Deterministic(t *testing.T) {
	req := domain.AnalysisRequest{
		EnergyType: domain.EnergyWind,
		Snapshot:   testSnapshot(),
		UseContext: true,
	}

	assert.Equal(t, ComposePrompt(req), ComposePrompt(req))
}
