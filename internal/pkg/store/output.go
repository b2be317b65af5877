package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pradiptars/energimap/internal/domain"
	"github.com/pradiptars/energimap/internal/pkg/store/xpgx"
)

// OutputFilter narrows QueryOutputs. Nil/empty fields match everything.
type OutputFilter struct {
	ProvinceNames []string
	Month         *int
	EnergyID      *domain.EnergyKind
}

var outputColumns = []string{"id", "province_name", "energy_id", "month", "output"}

func (s *store) QueryOutputs(ctx context.Context, filter OutputFilter) ([]*domain.OutputRecord, error) {
	query := builder().Select(outputColumns...).
		From(tableProvinceData)

	if len(filter.ProvinceNames) > 0 {
		query = query.Where(sq.Eq{"province_name": filter.ProvinceNames})
	}
	if filter.Month != nil {
		query = query.Where(sq.Eq{"month": *filter.Month})
	}
	if filter.EnergyID != nil {
		query = query.Where(sq.Eq{"energy_id": *filter.EnergyID})
	}

	selected, err := xpgx.Selectx[domain.OutputRecord](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListRegionalRecords(ctx context.Context, provinceNames []string) ([]*domain.RegionalRecord, error) {
	query := builder().Select(
		"pd.province_name", "p.island_name", "pd.energy_id",
		"et.energy_name", "pd.month", "pd.output").
		From(tableProvinceData + " pd").
		Join(tableProvinces + " p on p.province_name=pd.province_name").
		Join(tableEnergyTypes + " et on et.energy_id=pd.energy_id").
		Where(sq.Eq{"pd.province_name": provinceNames}).
		OrderBy("pd.province_name, pd.energy_id, pd.month")

	selected, err := xpgx.Selectx[domain.RegionalRecord](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetProvinceByName(ctx context.Context, provinceName string) (*domain.Province, error) {
	query := builder().Select(provinceColumns...).
		From(tableProvinces).
		Where(sq.Eq{"province_name": provinceName})

	selected, err := xpgx.Getx[domain.Province](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) InsertOutputs(ctx context.Context, records []*domain.OutputRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	query := builder().Insert(tableProvinceData).
		Columns("province_name", "energy_id", "month", "output")

	for _, r := range records {
		query = query.Values(r.ProvinceName, r.EnergyID, r.Month, r.Output)
	}

	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return 0, fmt.Errorf("insert outputs: %w", wrapErr(err))
	}

	return int(tag.RowsAffected()), nil
}
