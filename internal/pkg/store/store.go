package store

import (
	"context"

	"github.com/pradiptars/energimap/internal/domain"
	"github.com/pradiptars/energimap/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the read side plus the maintenance write side of the output
// record set. The core only ever reads; writes happen during seeding.
type Store interface {
	QueryOutputs(ctx context.Context, filter OutputFilter) ([]*domain.OutputRecord, error)
	ListRegionalRecords(ctx context.Context, provinceNames []string) ([]*domain.RegionalRecord, error)
	GetProvinceByName(ctx context.Context, provinceName string) (*domain.Province, error)

	ReplaceReferenceData(ctx context.Context, islands []string, provinces []*domain.Province) error
	InsertOutputs(ctx context.Context, records []*domain.OutputRecord) (int, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
