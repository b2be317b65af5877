package energy

import (
	"context"
	"errors"
	"fmt"

	"github.com/pradiptars/energimap/internal/domain"
	"github.com/pradiptars/energimap/internal/pkg/constants"
	"github.com/pradiptars/energimap/internal/pkg/geo"
	"github.com/pradiptars/energimap/internal/pkg/store"
)

type Service struct {
	store       store.Store
	multipliers Multipliers
}

func NewService(store store.Store, multipliers Multipliers) *Service {
	return &Service{store: store, multipliers: multipliers}
}

// ProvinceSummary aggregates the full record set of one province into the
// monthly series plus snapshot the dashboard renders.
func (s *Service) ProvinceSummary(ctx context.Context, provinceName string) (*domain.ProvinceSummary, error) {
	if _, err := s.store.GetProvinceByName(ctx, provinceName); err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrProvinceNotFound
		}
		return nil, fmt.Errorf("store.GetProvinceByName: %w", err)
	}

	records, err := s.store.QueryOutputs(ctx, store.OutputFilter{ProvinceNames: []string{provinceName}})
	if err != nil {
		return nil, fmt.Errorf("store.QueryOutputs: %w", err)
	}

	series := MonthlySeries(records, ProvinceScope(provinceName))
	return &domain.ProvinceSummary{
		Scope:    provinceName,
		Monthly:  series,
		Snapshot: BuildSnapshot(provinceName, series, s.multipliers),
	}, nil
}

// IslandSummary is ProvinceSummary over an island's whole province set.
func (s *Service) IslandSummary(ctx context.Context, islandID string) (*domain.ProvinceSummary, error) {
	name, ok := geo.CanonicalIslandName(islandID)
	if !ok {
		return nil, constants.ErrUnknownIslandID
	}

	provinces := geo.ProvincesOf(name)
	records, err := s.store.QueryOutputs(ctx, store.OutputFilter{ProvinceNames: provinces})
	if err != nil {
		return nil, fmt.Errorf("store.QueryOutputs: %w", err)
	}

	series := MonthlySeries(records, IslandScope(name, provinces))
	return &domain.ProvinceSummary{
		Scope:    name,
		Monthly:  series,
		Snapshot: BuildSnapshot(name, series, s.multipliers),
	}, nil
}

// IslandRecords returns the display-enriched record set for an island,
// sorted by province, energy kind, then month.
func (s *Service) IslandRecords(ctx context.Context, islandID string) ([]*domain.RegionalRecord, error) {
	provinces := geo.ResolveIslandProvinces(islandID)
	if len(provinces) == 0 {
		return nil, constants.ErrUnknownIslandID
	}

	records, err := s.store.ListRegionalRecords(ctx, provinces)
	if err != nil {
		return nil, fmt.Errorf("store.ListRegionalRecords: %w", err)
	}

	return records, nil
}
