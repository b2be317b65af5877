package domain

import "time"

// EnergyKind identifies one of the tracked renewable sources.
type EnergyKind string

const (
	EnergySolar EnergyKind = "SOLAR"
	EnergyWind  EnergyKind = "WIND"
	EnergyHydro EnergyKind = "HYDRO"
)

// Kinds in stable presentation order.
var EnergyKinds = []EnergyKind{EnergySolar, EnergyWind, EnergyHydro}

func (k EnergyKind) Valid() bool {
	switch k {
	case EnergySolar, EnergyWind, EnergyHydro:
		return true
	}
	return false
}

// DisplayName returns the dataset's human-readable energy name.
func (k EnergyKind) DisplayName() string {
	switch k {
	case EnergySolar:
		return "Solar Energy"
	case EnergyWind:
		return "Wind Energy"
	case EnergyHydro:
		return "Hydro Energy"
	}
	return string(k)
}

// ParseEnergyKind maps the lowercase API values ("solar", "wind", "hydro")
// onto the canonical dataset identifiers.
func ParseEnergyKind(s string) (EnergyKind, bool) {
	switch s {
	case "solar":
		return EnergySolar, true
	case "wind":
		return EnergyWind, true
	case "hydro":
		return EnergyHydro, true
	}
	return "", false
}

type Island struct {
	ID         int64     `db:"id"`
	IslandName string    `db:"island_name"`
	CreatedAt  time.Time `db:"created_at"`
}

type Province struct {
	ID            int64     `db:"id"`
	ProvinceName  string    `db:"province_name"`
	IslandName    string    `db:"island_name"`
	PrimarySource *string   `db:"primary_source"`
	CreatedAt     time.Time `db:"created_at"`
}

// OutputRecord is one monthly energy-production fact. Records are written
// once during seeding and never mutated; the dataset may contain more than
// one record per (province, energy, month) tuple and aggregation averages
// them rather than rejecting them.
type OutputRecord struct {
	ID           int64      `db:"id"`
	ProvinceName string     `db:"province_name"`
	EnergyID     EnergyKind `db:"energy_id"`
	Month        int        `db:"month"`
	Output       float64    `db:"output"`
}

// RegionalRecord is an OutputRecord enriched with display names, as served
// by the regional data endpoint.
type RegionalRecord struct {
	ProvinceName string     `db:"province_name" json:"provinceName"`
	IslandName   string     `db:"island_name" json:"islandName"`
	EnergyID     EnergyKind `db:"energy_id" json:"energyID"`
	EnergyName   string     `db:"energy_name" json:"energyName"`
	Month        int        `db:"month" json:"month"`
	Output       float64    `db:"output" json:"output"`
}

// MonthlyOutput is one entry of the twelve-month aggregated series.
type MonthlyOutput struct {
	Month       int `json:"month"`
	SolarOutput int `json:"solarOutput"`
	WindOutput  int `json:"windOutput"`
	HydroOutput int `json:"hydroOutput"`
	TotalOutput int `json:"totalOutput"`
}

// EnergyDataSnapshot is the per-request numeric summary for a scope. It is
// derived fresh from OutputRecords, never persisted, and doubles as the
// context block for AI analysis prompts.
type EnergyDataSnapshot struct {
	ScopeName          string `json:"name"`
	SolarCapacity      string `json:"solarCapacity"`
	WindCapacity       string `json:"windCapacity"`
	HydroCapacity      string `json:"hydroCapacity"`
	AvgSolarOutput     int    `json:"avgSolarOutput"`
	AvgWindOutput      int    `json:"avgWindOutput"`
	AvgHydroOutput     int    `json:"avgHydroOutput"`
	CurrentSolarOutput int    `json:"currentSolarOutput"`
	CurrentWindOutput  int    `json:"currentWindOutput"`
	CurrentHydroOutput int    `json:"currentHydroOutput"`
	Efficiency         int    `json:"efficiency"`
}

// Empty reports whether the snapshot carries no usable output data, i.e.
// every per-kind average is zero.
func (s EnergyDataSnapshot) Empty() bool {
	return s.AvgSolarOutput == 0 && s.AvgWindOutput == 0 && s.AvgHydroOutput == 0
}
