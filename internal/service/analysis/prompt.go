package analysis

import (
	"fmt"
	"strings"

	"github.com/pradiptars/energimap/internal/domain"
)

// ComposePrompt deterministically builds the generation prompt from a
// request. Contextual requests get the full per-kind analysis template; a
// user question is appended as its own section but the template still asks
// for the complete structured analysis so the response shape stays stable
// whether or not a question was asked.
func ComposePrompt(req domain.AnalysisRequest) string {
	if !req.UseContext {
		return fmt.Sprintf(
			"Sebagai ahli energi terbarukan, tolong jawab pertanyaan berikut dengan informatif dan praktis: %s",
			req.UserQuestion)
	}

	questionSection := ""
	if strings.TrimSpace(req.UserQuestion) != "" {
		questionSection = fmt.Sprintf("PERTANYAAN SPESIFIK USER: %s\n\n", req.UserQuestion)
	}

	snap := req.Snapshot
	switch req.EnergyType {
	case domain.EnergySolar:
		return fmt.Sprintf(`Anda adalah ahli teknologi panel surya dan sustainability. Berdasarkan data berikut:

DATA PANEL SURYA:
- Kapasitas Total: %s
- Output Saat Ini: %d MW
- Rata-rata Output: %d MW
- Efisiensi Sistem: %d%%

FOKUS ANALISIS:
1. **Durability & Lifespan**: Estimasi umur panel dengan output %d MW
2. **Degradasi Performance**: Tingkat penurunan efisiensi per tahun
3. **Waste Management**: Penanganan limbah panel surya (silicon, aluminum, heavy metals)
4. **Maintenance Schedule**: Jadwal perawatan optimal
5. **Sustainability Impact**: Dampak lingkungan dan solusi berkelanjutan
6. **Economic Analysis**: Analisis biaya operasional dan ROI

%sBerikan analisis mendalam, praktis, dan actionable dengan data konkret. Gunakan format yang mudah dipahami dengan bullet points dan rekomendasi spesifik.`,
			snap.SolarCapacity, snap.CurrentSolarOutput, snap.AvgSolarOutput, snap.Efficiency,
			snap.CurrentSolarOutput, questionSection)

	case domain.EnergyWind:
		return fmt.Sprintf(`Anda adalah ahli teknologi turbin angin dan sustainability. Berdasarkan data berikut:

DATA TURBIN ANGIN:
- Kapasitas Total: %s
- Output Saat Ini: %d MW
- Rata-rata Output: %d MW
- Efisiensi Sistem: %d%%

FOKUS ANALISIS:
1. **Turbine Lifespan**: Estimasi umur turbin dengan output %d MW
2. **Blade Degradation**: Analisis keausan blade dan performance
3. **Composite Waste**: Penanganan limbah blade fiberglass/carbon fiber
4. **Maintenance Cycles**: Jadwal maintenance predictive dan preventive
5. **Environmental Impact**: Dampak pada ekosistem dan mitigasi
6. **Recycling Innovation**: Teknologi daur ulang blade dan komponen

%sBerikan insight teknis mendalam dengan fokus pada sustainability dan inovasi penanganan limbah turbin angin.`,
			snap.WindCapacity, snap.CurrentWindOutput, snap.AvgWindOutput, snap.Efficiency,
			snap.CurrentWindOutput, questionSection)

	case domain.EnergyHydro:
		return fmt.Sprintf(`Anda adalah ahli hidroelektrik dan pengelolaan sumber daya air. Berdasarkan data berikut:

DATA HIDROELEKTRIK:
- Kapasitas Total: %s
- Output Saat Ini: %d MW
- Rata-rata Output: %d MW
- Efisiensi Sistem: %d%%

FOKUS ANALISIS:
1. **Infrastructure Longevity**: Estimasi umur infrastruktur dengan output %d MW
2. **Sediment Management**: Strategi pengelolaan sedimentasi reservoir
3. **Ecosystem Impact**: Dampak pada ekosistem sungai dan mitigasi
4. **Water Quality**: Monitoring kualitas air dan dampak downstream
5. **Seasonal Variations**: Adaptasi terhadap variasi musiman
6. **Environmental Sustainability**: Program konservasi watershed

%sBerikan analisis komprehensif dengan fokus pada sustainability jangka panjang dan pengelolaan ekosistem air.`,
			snap.HydroCapacity, snap.CurrentHydroOutput, snap.AvgHydroOutput, snap.Efficiency,
			snap.CurrentHydroOutput, questionSection)
	}

	return fmt.Sprintf(
		"Sebagai ahli energi terbarukan, analisis data energi yang diberikan dan berikan insight tentang sustainability dan pengelolaan limbah. %s",
		req.UserQuestion)
}
