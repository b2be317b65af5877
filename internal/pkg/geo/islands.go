// Package geo holds the static island and province reference tables the
// dashboard navigates by. Lookups never fail loudly: unknown identifiers
// resolve to zero values so callers decide how strict to be.
package geo

import "strings"

// Area is one selectable map marker inside an island view.
type Area struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Coordinates   [2]float64 `json:"coordinates"`
	TotalOutput   string     `json:"totalOutput"`
	PrimarySource string     `json:"primarySource"`
	Efficiency    int        `json:"efficiency"`
	ProvinceName  string     `json:"provinceName"`
}

// IslandConfig is the per-island map view: display name, initial camera and
// the marker set.
type IslandConfig struct {
	Name   string     `json:"name"`
	Center [2]float64 `json:"center"`
	Zoom   int        `json:"zoom"`
	Areas  []Area     `json:"areas"`
}

// Canonical island names, matching the seed dataset.
var IslandNames = []string{
	"Jawa", "Sumatra", "Sulawesi", "Kalimantan", "Papua", "Maluku", "Nusa Tenggara",
}

// islandIDs maps lowercase route identifiers to canonical island names.
// "sumatera" is kept as an alias alongside "sumatra" because both spellings
// ship in the UI.
var islandIDs = map[string]string{
	"jawa":          "Jawa",
	"sumatra":       "Sumatra",
	"sumatera":      "Sumatra",
	"sulawesi":      "Sulawesi",
	"kalimantan":    "Kalimantan",
	"papua":         "Papua",
	"maluku":        "Maluku",
	"nusa-tenggara": "Nusa Tenggara",
}

var islandProvinces = map[string][]string{
	"Jawa": {
		"DKI JAKARTA", "JAWA BARAT", "JAWA TENGAH", "JAWA TIMUR",
		"DI YOGYAKARTA", "BANTEN",
	},
	"Sumatra": {
		"SUMATERA UTARA", "SUMATERA BARAT", "SUMATERA SELATAN", "RIAU",
		"ACEH", "JAMBI", "BENGKULU", "LAMPUNG", "KEPULAUAN RIAU",
		"KEPULAUAN BANGKA BELITUNG",
	},
	"Sulawesi": {
		"SULAWESI UTARA", "SULAWESI SELATAN", "SULAWESI TENGAH",
		"SULAWESI TENGGARA", "SULAWESI BARAT", "GORONTALO",
	},
	"Kalimantan": {
		"KALIMANTAN BARAT", "KALIMANTAN SELATAN", "KALIMANTAN TENGAH",
		"KALIMANTAN TIMUR", "KALIMANTAN UTARA",
	},
	"Papua": {
		"PAPUA", "PAPUA BARAT", "PAPUA BARAT DAYA", "PAPUA PEGUNUNGAN",
		"PAPUA SELATAN", "PAPUA TENGAH",
	},
	"Maluku": {
		"MALUKU", "MALUKU UTARA",
	},
	"Nusa Tenggara": {
		"NUSA TENGGARA BARAT", "NUSA TENGGARA TIMUR", "BALI",
	},
}

// CanonicalIslandName resolves a route identifier ("jawa", "nusa-tenggara")
// to the canonical island name.
func CanonicalIslandName(id string) (string, bool) {
	name, ok := islandIDs[lower(id)]
	return name, ok
}

// ResolveIslandProvinces returns the province names of an island identified
// by route id. Unknown ids return an empty list.
func ResolveIslandProvinces(id string) []string {
	name, ok := CanonicalIslandName(id)
	if !ok {
		return nil
	}
	return islandProvinces[name]
}

// ProvincesOf returns the province list for a canonical island name.
func ProvincesOf(islandName string) []string {
	return islandProvinces[islandName]
}

// ResolveAreaProvince maps an area marker id ("jakarta", "medan") to its
// province name. Unknown ids return ("", false).
func ResolveAreaProvince(areaID string) (string, bool) {
	for _, cfg := range islandConfigs {
		for _, a := range cfg.Areas {
			if a.ID == lower(areaID) {
				return a.ProvinceName, true
			}
		}
	}
	return "", false
}

// IslandConfigFor returns the map view config for a route id. Spelling
// aliases resolve to the same config.
func IslandConfigFor(id string) (IslandConfig, bool) {
	if cfg, ok := islandConfigs[lower(id)]; ok {
		return cfg, true
	}
	name, ok := islandIDs[lower(id)]
	if !ok {
		return IslandConfig{}, false
	}
	for key, cfg := range islandConfigs {
		if islandIDs[key] == name {
			return cfg, true
		}
	}
	return IslandConfig{}, false
}

func lower(s string) string { return strings.ToLower(s) }
