package analysis

import (
	"fmt"
	"math"

	"github.com/pradiptars/energimap/internal/domain"
)

// FallbackAnalysis synthesizes the offline substitute document used when
// the upstream dependency is rate-limited. It is a pure function: the same
// snapshot always yields byte-identical text, and derived figures come from
// fixed formulas, never randomness. It never fails; unknown kinds get a
// generic paragraph.
func FallbackAnalysis(kind domain.EnergyKind, snap domain.EnergyDataSnapshot) string {
	switch kind {
	case domain.EnergySolar:
		return fmt.Sprintf(`## Analisis Sustainability Panel Surya

**STATUS OPERASIONAL:**
- Kapasitas Total: %s
- Output Saat Ini: %d MW
- Rata-rata Output: %d MW
- Efisiensi Sistem: %d%%

**ANALISIS KEBERLANGSUNGAN:**

**1. Durability & Lifespan**
Dengan output stabil %d MW, panel surya ini memiliki proyeksi umur operasional 20-25 tahun. Tingkat degradasi normal sekitar 0.5-0.8%% per tahun.

**2. Waste Management Challenges**
- **Limbah Utama:** Panel akhir masa pakai mengandung silikon, aluminium, kaca, dan jejak logam berat
- **Volume Limbah:** Diperkirakan %d ton material per tahun memerlukan pengelolaan khusus

**3. Solusi Berkelanjutan**
- Implementasi program **daur ulang panel** dengan fasilitas khusus recovery material
- Prioritas pengadaan panel yang dirancang untuk **pembongkaran mudah**
- Kemitraan dengan manufaktur untuk **take-back program**

**REKOMENDASI ACTIONABLE:**
- Monitoring degradasi bulanan untuk optimasi replacement timing
- Investasi teknologi recycling silicon dan rare metals
- Pengembangan second-life applications untuk panel degraded`,
			snap.SolarCapacity, snap.CurrentSolarOutput, snap.AvgSolarOutput, snap.Efficiency,
			snap.CurrentSolarOutput, scaled(snap.AvgSolarOutput, 0.1))

	case domain.EnergyWind:
		return fmt.Sprintf(`## Analisis Sustainability Turbin Angin

**STATUS OPERASIONAL:**
- Kapasitas Total: %s
- Output Saat Ini: %d MW
- Rata-rata Output: %d MW
- Efisiensi Sistem: %d%%

**ANALISIS KEBERLANGSUNGAN:**

**1. Turbine Lifespan Assessment**
Dengan performa %d MW, estimasi umur operasional 20-25 tahun dengan maintenance reguler setiap 6 bulan.

**2. Blade Waste Management Crisis**
- **Limbah Utama:** Blade fiberglass/carbon fiber (%d ton/tahun)
- **Challenge:** Material komposit sulit didaur ulang dengan teknologi konvensional
- **Environmental Impact:** Potensi 2,500 ton blade waste dalam 20 tahun

**3. Innovative Recycling Solutions**
- **Mechanical Grinding:** Konversi blade menjadi cement filler dan composite pellets
- **Pyrolysis Technology:** Recovery fiber dan resin untuk aplikasi baru
- **Chemical Recycling:** Solvolysis untuk decompose composite materials

**REKOMENDASI ACTIONABLE:**
- Pilot project blade-to-building materials (concrete additive)
- Partnership dengan startup recycling blade composite
- R&D modular blade design untuk easier disassembly
- Target 85%% blade material recovery by 2030, reduced landfill waste %d ton/decade`,
			snap.WindCapacity, snap.CurrentWindOutput, snap.AvgWindOutput, snap.Efficiency,
			snap.CurrentWindOutput, scaled(snap.AvgWindOutput, 0.15), scaled(snap.AvgWindOutput, 12))

	case domain.EnergyHydro:
		return fmt.Sprintf(`## Analisis Sustainability Hidroelektrik

**STATUS OPERASIONAL:**
- Kapasitas Total: %s
- Output Saat Ini: %d MW
- Rata-rata Output: %d MW
- Efisiensi Sistem: %d%%

**ANALISIS KEBERLANGSUNGAN:**

**1. Infrastructure Longevity**
Dengan output %d MW, infrastruktur dapat beroperasi 50-100 tahun dengan maintenance proper. ROI jangka panjang sangat menguntungkan.

**2. Sediment Management Strategy**
- **Challenge:** Akumulasi %d m3 sedimen/tahun
- **Impact:** Reduksi kapasitas reservoir 2-3%% per dekade
- **Downstream Effect:** Alterasi ekosistem sungai dan nutrient flow

**3. Ecosystem Preservation Solutions**
- **Fish Ladder Installation:** Restoration migrasi ikan natural
- **Selective Withdrawal:** Teknologi pengambilan air berlapis untuk maintain temperature
- **Sediment Flushing:** Periodic controlled release untuk river health

**REKOMENDASI ACTIONABLE:**
- Real-time monitoring dissolved oxygen dan temperature
- Reforestation program dan soil erosion control di watershed
- Sedimen recovery untuk agricultural soil enhancement
- Maintain 95%% original reservoir capacity, zero net biodiversity loss`,
			snap.HydroCapacity, snap.CurrentHydroOutput, snap.AvgHydroOutput, snap.Efficiency,
			snap.CurrentHydroOutput, scaled(snap.AvgHydroOutput, 100))
	}

	return fmt.Sprintf(`## Analisis Energi Terbarukan

Sistem energi %s menunjukkan performa stabil. Fokus sustainability mencakup lifecycle management, waste reduction, dan ecosystem preservation.

**Key Recommendations:**
- Implementasi circular economy principles
- Investment dalam recycling technologies
- Community-based environmental stewardship
- Long-term sustainability monitoring`, snap.ScopeName)
}

// scaled is the fixed derivation for the estimated figures embedded in the
// fallback text.
func scaled(avg int, factor float64) int {
	return int(math.Round(float64(avg) * factor))
}
