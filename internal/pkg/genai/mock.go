package genai

import "context"

// MockGenerator is a configurable Generator test double. Set GenerateFunc
// to control behavior; GenerateCalls counts invocations so tests can assert
// the external dependency was (or wasn't) reached.
type MockGenerator struct {
	GenerateFunc  func(ctx context.Context, prompt string) (string, error)
	GenerateCalls int
	LastPrompt    string
}

var _ Generator = (*MockGenerator)(nil)

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.GenerateCalls++
	m.LastPrompt = prompt
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "", nil
}
