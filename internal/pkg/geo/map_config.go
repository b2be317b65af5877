package geo

// Map view configs keyed by route id. Marker output figures and
// efficiencies are display data from the product team, not measurements.
var islandConfigs = map[string]IslandConfig{
	"jawa": {
		Name:   "Java",
		Center: [2]float64{-7.5, 110.0},
		Zoom:   8,
		Areas: []Area{
			{ID: "jakarta", Name: "Jakarta", Coordinates: [2]float64{-6.2, 106.816},
				TotalOutput: "1,250 MW", PrimarySource: "Solar", Efficiency: 87, ProvinceName: "DKI JAKARTA"},
			{ID: "surabaya", Name: "Surabaya", Coordinates: [2]float64{-7.25, 112.75},
				TotalOutput: "980 MW", PrimarySource: "Wind", Efficiency: 92, ProvinceName: "JAWA TIMUR"},
			{ID: "bandung", Name: "Bandung", Coordinates: [2]float64{-6.9, 107.6},
				TotalOutput: "750 MW", PrimarySource: "Hydro", Efficiency: 89, ProvinceName: "JAWA BARAT"},
			{ID: "semarang", Name: "Semarang", Coordinates: [2]float64{-6.97, 110.42},
				TotalOutput: "560 MW", PrimarySource: "Solar", Efficiency: 84, ProvinceName: "JAWA TENGAH"},
		},
	},
	"sumatera": {
		Name:   "Sumatera",
		Center: [2]float64{-0.5, 101.5},
		Zoom:   7,
		Areas: []Area{
			{ID: "medan", Name: "Medan", Coordinates: [2]float64{3.58, 98.65},
				TotalOutput: "890 MW", PrimarySource: "Hydro", Efficiency: 91, ProvinceName: "SUMATERA UTARA"},
			{ID: "palembang", Name: "Palembang", Coordinates: [2]float64{-2.91, 104.7},
				TotalOutput: "670 MW", PrimarySource: "Solar", Efficiency: 85, ProvinceName: "SUMATERA SELATAN"},
			{ID: "pekanbaru", Name: "Pekanbaru", Coordinates: [2]float64{0.53, 101.45},
				TotalOutput: "520 MW", PrimarySource: "Wind", Efficiency: 88, ProvinceName: "RIAU"},
			{ID: "lampung", Name: "Bandar Lampung", Coordinates: [2]float64{-5.45, 105.27},
				TotalOutput: "430 MW", PrimarySource: "Geothermal", Efficiency: 93, ProvinceName: "LAMPUNG"},
		},
	},
	"sulawesi": {
		Name:   "Sulawesi",
		Center: [2]float64{-2.5, 120.0},
		Zoom:   7,
		Areas: []Area{
			{ID: "makassar", Name: "Makassar", Coordinates: [2]float64{-5.14, 119.43},
				TotalOutput: "720 MW", PrimarySource: "Wind", Efficiency: 86, ProvinceName: "SULAWESI SELATAN"},
			{ID: "manado", Name: "Manado", Coordinates: [2]float64{1.48, 124.85},
				TotalOutput: "450 MW", PrimarySource: "Geothermal", Efficiency: 93, ProvinceName: "SULAWESI UTARA"},
			{ID: "kendari", Name: "Kendari", Coordinates: [2]float64{-3.95, 122.5},
				TotalOutput: "380 MW", PrimarySource: "Hydro", Efficiency: 89, ProvinceName: "SULAWESI TENGGARA"},
			{ID: "palu", Name: "Palu", Coordinates: [2]float64{-0.9, 119.87},
				TotalOutput: "290 MW", PrimarySource: "Solar", Efficiency: 82, ProvinceName: "SULAWESI TENGAH"},
		},
	},
	"kalimantan": {
		Name:   "Kalimantan",
		Center: [2]float64{-1.0, 114.0},
		Zoom:   6,
		Areas: []Area{
			{ID: "banjarmasin", Name: "Banjarmasin", Coordinates: [2]float64{-3.32, 114.59},
				TotalOutput: "640 MW", PrimarySource: "Solar", Efficiency: 87, ProvinceName: "KALIMANTAN SELATAN"},
			{ID: "balikpapan", Name: "Balikpapan", Coordinates: [2]float64{-1.27, 116.83},
				TotalOutput: "580 MW", PrimarySource: "Wind", Efficiency: 90, ProvinceName: "KALIMANTAN TIMUR"},
			{ID: "pontianak", Name: "Pontianak", Coordinates: [2]float64{-0.03, 109.32},
				TotalOutput: "420 MW", PrimarySource: "Hydro", Efficiency: 84, ProvinceName: "KALIMANTAN BARAT"},
			{ID: "samarinda", Name: "Samarinda", Coordinates: [2]float64{-0.5, 117.15},
				TotalOutput: "350 MW", PrimarySource: "Solar", Efficiency: 85, ProvinceName: "KALIMANTAN TIMUR"},
		},
	},
	"papua": {
		Name:   "Papua",
		Center: [2]float64{-4.0, 138.0},
		Zoom:   6,
		Areas: []Area{
			{ID: "jayapura", Name: "Jayapura", Coordinates: [2]float64{-2.53, 140.7},
				TotalOutput: "320 MW", PrimarySource: "Hydro", Efficiency: 91, ProvinceName: "PAPUA"},
			{ID: "sorong", Name: "Sorong", Coordinates: [2]float64{-0.86, 131.25},
				TotalOutput: "280 MW", PrimarySource: "Solar", Efficiency: 87, ProvinceName: "PAPUA BARAT"},
			{ID: "merauke", Name: "Merauke", Coordinates: [2]float64{-8.5, 140.4},
				TotalOutput: "180 MW", PrimarySource: "Wind", Efficiency: 84, ProvinceName: "PAPUA SELATAN"},
		},
	},
}
