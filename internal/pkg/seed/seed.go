// Package seed loads the monthly-averages dataset into the store. Seeding
// is a maintenance phase: it wipes and reloads reference data, then bulk
// inserts records, and is never run concurrently with serving reads.
package seed

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/pradiptars/energimap/internal/domain"
	"github.com/pradiptars/energimap/internal/pkg/geo"
	"github.com/pradiptars/energimap/internal/pkg/logger"
	"github.com/pradiptars/energimap/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

// Record is one row of the dataset file, in the column naming the data
// team exports.
type Record struct {
	Province   string  `json:"Province"`
	Month      int     `json:"Month"`
	Output     float64 `json:"Energy Production (kWH)"`
	EnergyType string  `json:"Energy Type,omitempty"`
}

type Loader struct {
	store store.Store
}

func NewLoader(store store.Store) *Loader {
	return &Loader{store: store}
}

// Run wipes reference data, reloads it from the static geo tables, then
// inserts the dataset grouped per island concurrently. Records naming an
// unknown province are counted and skipped, not fatal.
func (l *Loader) Run(ctx context.Context, datasetPath string) (*domain.SeedReport, error) {
	raw, err := os.ReadFile(datasetPath)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var rows []Record
	if err := sonic.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	provinces := make([]*domain.Province, 0, 64)
	provinceIsland := make(map[string]string)
	for _, island := range geo.IslandNames {
		for _, p := range geo.ProvincesOf(island) {
			provinces = append(provinces, &domain.Province{ProvinceName: p, IslandName: island})
			provinceIsland[p] = island
		}
	}

	if err := l.store.ReplaceReferenceData(ctx, geo.IslandNames, provinces); err != nil {
		return nil, fmt.Errorf("store.ReplaceReferenceData: %w", err)
	}

	report := &domain.SeedReport{Islands: len(geo.IslandNames), Provinces: len(provinces)}

	byIsland := make(map[string][]*domain.OutputRecord)
	for _, row := range rows {
		island, ok := provinceIsland[row.Province]
		if !ok || row.Month < 1 || row.Month > 12 {
			report.Skipped++
			continue
		}

		kind := domain.EnergyKind(row.EnergyType)
		if !kind.Valid() {
			// Historical exports carry wind data only and omit the column.
			kind = domain.EnergyWind
		}

		byIsland[island] = append(byIsland[island], &domain.OutputRecord{
			ProvinceName: row.Province,
			EnergyID:     kind,
			Month:        row.Month,
			Output:       row.Output,
		})
	}

	var (
		insertedMx sync.Mutex
		eg, egCtx  = errgroup.WithContext(ctx)
	)
	for island, records := range byIsland {
		island, records := island, records
		eg.Go(func() error {
			n, err := l.store.InsertOutputs(egCtx, records)
			if err != nil {
				return fmt.Errorf("store.InsertOutputs, island-%s: %w", island, err)
			}

			logger.Infof(egCtx, "seeded %d records for %s", n, island)

			insertedMx.Lock()
			defer insertedMx.Unlock()
			report.Inserted += n
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	return report, nil
}
