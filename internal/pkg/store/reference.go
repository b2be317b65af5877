package store

import (
	"context"
	"fmt"

	"github.com/pradiptars/energimap/internal/domain"
	"github.com/pradiptars/energimap/internal/pkg/logger"
	"github.com/pradiptars/energimap/internal/pkg/store/xpgx"
)

var provinceColumns = []string{"id", "province_name", "island_name", "primary_source", "created_at"}

// ReplaceReferenceData wipes and reloads islands, provinces and energy
// types. Runs only during the maintenance seed phase, never concurrently
// with aggregation reads.
func (s *store) ReplaceReferenceData(ctx context.Context, islands []string, provinces []*domain.Province) error {
	for _, table := range []string{tableProvinceData, tableProvinces, tableEnergyTypes, tableIslands} {
		if _, err := xpgx.Execx(ctx, s.pool, builder().Delete(table)); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	islandQuery := builder().Insert(tableIslands).Columns("island_name")
	for _, name := range islands {
		islandQuery = islandQuery.Values(name)
	}
	if _, err := xpgx.Execx(ctx, s.pool, islandQuery); err != nil {
		return fmt.Errorf("insert islands: %w", err)
	}

	provinceQuery := builder().Insert(tableProvinces).
		Columns("province_name", "island_name", "primary_source")
	for _, p := range provinces {
		provinceQuery = provinceQuery.Values(p.ProvinceName, p.IslandName, p.PrimarySource)
	}
	if _, err := xpgx.Execx(ctx, s.pool, provinceQuery); err != nil {
		return fmt.Errorf("insert provinces: %w", err)
	}

	energyQuery := builder().Insert(tableEnergyTypes).Columns("energy_id", "energy_name")
	for _, k := range domain.EnergyKinds {
		energyQuery = energyQuery.Values(k, k.DisplayName())
	}
	if _, err := xpgx.Execx(ctx, s.pool, energyQuery); err != nil {
		return fmt.Errorf("insert energy types: %w", err)
	}

	logger.Infof(ctx, "reference data replaced: %d islands, %d provinces", len(islands), len(provinces))
	return nil
}
