package seed

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pradiptars/energimap/internal/domain"
	"github.com/pradiptars/energimap/internal/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu        sync.Mutex
	replaced  bool
	islands   []string
	provinces []*domain.Province
	inserted  []*domain.OutputRecord
}

func (f *fakeStore) QueryOutputs(context.Context, store.OutputFilter) ([]*domain.OutputRecord, error) {
	return nil, nil
}

func (f *fakeStore) ListRegionalRecords(context.Context, []string) ([]*domain.RegionalRecord, error) {
	return nil, nil
}

func (f *fakeStore) GetProvinceByName(context.Context, string) (*domain.Province, error) {
	return nil, nil
}

func (f *fakeStore) ReplaceReferenceData(_ context.Context, islands []string, provinces []*domain.Province) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replaced = true
	f.islands = islands
	f.provinces = provinces
	return nil
}

func (f *fakeStore) InsertOutputs(_ context.Context, records []*domain.OutputRecord) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, records...)
	return len(records), nil
}

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "monthly_avg.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Run(t *testing.T) {
	dataset := `[
		{"Province": "JAWA BARAT", "Month": 1, "Energy Production (kWH)": 120.5},
		{"Province": "JAWA BARAT", "Month": 2, "Energy Production (kWH)": 98, "Energy Type": "SOLAR"},
		{"Province": "SUMATERA UTARA", "Month": 1, "Energy Production (kWH)": 44},
		{"Province": "NARNIA", "Month": 1, "Energy Production (kWH)": 10},
		{"Province": "JAWA BARAT", "Month": 0, "Energy Production (kWH)": 10}
	]`

	fake := &fakeStore{}
	report, err := NewLoader(fake).Run(context.Background(), writeDataset(t, dataset))
	require.NoError(t, err)

	assert.True(t, fake.replaced)
	assert.Equal(t, 7, report.Islands)
	assert.Equal(t, 2, report.Skipped, "unknown province and out-of-range month skip")
	assert.Equal(t, 3, report.Inserted)
	require.Len(t, fake.inserted, 3)

	kinds := map[domain.EnergyKind]int{}
	for _, r := range fake.inserted {
		kinds[r.EnergyID]++
	}
	assert.Equal(t, 2, kinds[domain.EnergyWind], "missing energy column defaults to wind")
	assert.Equal(t, 1, kinds[domain.EnergySolar])
}

func TestLoader_Run_MissingFile(t *testing.T) {
	_, err := NewLoader(&fakeStore{}).Run(context.Background(), "/nonexistent/data.json")
	assert.Error(t, err)
}

func TestLoader_Run_MalformedDataset(t *testing.T) {
	_, err := NewLoader(&fakeStore{}).Run(context.Background(), writeDataset(t, `{"not": "an array"}`))
	assert.Error(t, err)
}
