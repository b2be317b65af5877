package domain

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ChatRequest mirrors the dashboard's analysis call.
type ChatRequest struct {
	Message    string             `json:"message"`
	EnergyType string             `json:"energyType" validate:"omitempty,oneof=solar wind hydro"`
	EnergyData EnergyDataSnapshot `json:"energyData"`
	UseContext bool               `json:"useContext"`
}

// ChatResponse is the wire form of AnalysisResult. Status codes carry the
// error taxonomy; the body keeps the flags the UI keys off.
type ChatResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	Timestamp       string `json:"timestamp,omitempty"`
	IsFallback      bool   `json:"isFallback,omitempty"`
	Error           string `json:"error,omitempty"`
	IsQuotaExceeded bool   `json:"isQuotaExceeded,omitempty"`
}

// ProvinceSummary is the dashboard's per-scope payload: the full monthly
// series plus the derived snapshot.
type ProvinceSummary struct {
	Scope    string             `json:"scope"`
	Monthly  []MonthlyOutput    `json:"monthly"`
	Snapshot EnergyDataSnapshot `json:"snapshot"`
}

// SeedReport summarizes one dataset load.
type SeedReport struct {
	Islands   int `json:"islands"`
	Provinces int `json:"provinces"`
	Inserted  int `json:"inserted"`
	Skipped   int `json:"skipped"`
}
