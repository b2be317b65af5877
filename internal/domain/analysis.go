package domain

import "time"

// AnalysisRequest is the transient input to the analysis pipeline.
type AnalysisRequest struct {
	EnergyType   EnergyKind
	UserQuestion string
	Snapshot     EnergyDataSnapshot
	UseContext   bool
}

// AnalysisResult is the uniform outcome of one analysis request.
// IsFallback is only ever true on the degraded-success path, never on a
// failure: a fallback is a success that happens to be generated offline.
type AnalysisResult struct {
	Success    bool
	Text       string
	IsFallback bool
	Timestamp  time.Time
	Kind       string // genai error kind on failure, empty on success
}
