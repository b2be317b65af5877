package constants

// viper keys
const (
	ViperListenAddr  = "listen_addr"
	ViperDatabaseDSN = "database_dsn"
	ViperCORSOrigin  = "cors_origin"

	ViperGenAIAPIKey   = "genai.api_key"
	ViperGenAIEndpoint = "genai.endpoint"
	ViperGenAIModel    = "genai.model"

	ViperDatasetPath = "dataset_path"

	// Display tuning for the "current output" figures: the dashboard shows
	// today's output as a fixed adjustment of the monthly average. Product
	// choice, not physics.
	ViperSolarMultiplier = "display.solar_multiplier"
	ViperWindMultiplier  = "display.wind_multiplier"
	ViperHydroMultiplier = "display.hydro_multiplier"
	ViperBaseEfficiency  = "display.base_efficiency"
)
