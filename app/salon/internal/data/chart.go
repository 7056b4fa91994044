package data

import (
	"context"
	"errors"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"

	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/storage"
	"github.com/iWorld-y/fortune_salon/app/salon/internal/domain"
	"github.com/iWorld-y/fortune_salon/app/salon/internal/repo"
)

type chartRepo struct {
	store *storage.Storage
	log   *log.Helper
}

// NewChartRepo 有数据库时返回 PostgreSQL 仓库，否则返回内存仓库
func NewChartRepo(data *Data, logger log.Logger) repo.ChartRepo {
	if data.store == nil {
		return NewMemoryChartRepo()
	}
	return &chartRepo{
		store: data.store,
		log:   log.NewHelper(logger),
	}
}

func (r *chartRepo) SaveChart(ctx context.Context, rec *domain.ChartRecord) error {
	err := r.store.SaveChart(ctx, rec)
	if errors.Is(err, storage.ErrDuplicate) {
		return domain.ErrChartExists
	}
	return err
}

func (r *chartRepo) GetChart(ctx context.Context, id uuid.UUID) (*domain.ChartRecord, error) {
	rec, err := r.store.GetChart(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, domain.ErrChartNotFound
		}
		r.log.WithContext(ctx).Errorf("get chart %s: %v", id, err)
		return nil, err
	}
	return rec, nil
}

func (r *chartRepo) ListCharts(ctx context.Context, userID string, page, pageSize int) ([]*domain.ChartSummary, int, error) {
	return r.store.ListCharts(ctx, userID, page, pageSize)
}

func (r *chartRepo) DeleteChart(ctx context.Context, id uuid.UUID) error {
	err := r.store.DeleteChart(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.ErrChartNotFound
	}
	return err
}
