package data

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/iWorld-y/fortune_salon/app/salon/internal/domain"
	"github.com/iWorld-y/fortune_salon/app/salon/internal/repo"
)

// memoryChartRepo 未配置数据库时使用，进程退出即丢失
type memoryChartRepo struct {
	mu     sync.RWMutex
	charts map[uuid.UUID]*domain.ChartRecord
}

func NewMemoryChartRepo() repo.ChartRepo {
	return &memoryChartRepo{charts: make(map[uuid.UUID]*domain.ChartRecord)}
}

func (m *memoryChartRepo) SaveChart(_ context.Context, rec *domain.ChartRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.charts[rec.ID]; ok {
		return domain.ErrChartExists
	}
	m.charts[rec.ID] = rec
	return nil
}

func (m *memoryChartRepo) GetChart(_ context.Context, id uuid.UUID) (*domain.ChartRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.charts[id]
	if !ok {
		return nil, domain.ErrChartNotFound
	}
	return rec, nil
}

func (m *memoryChartRepo) ListCharts(_ context.Context, userID string, page, pageSize int) ([]*domain.ChartSummary, int, error) {
	m.mu.RLock()
	matched := make([]*domain.ChartRecord, 0, len(m.charts))
	for _, rec := range m.charts {
		if userID == "" || rec.UserID == userID {
			matched = append(matched, rec)
		}
	}
	m.mu.RUnlock()

	// newest first
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID.String() < matched[j].ID.String()
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := (page - 1) * pageSize
	if start < 0 || start >= total {
		return []*domain.ChartSummary{}, total, nil
	}
	end := min(start+pageSize, total)

	out := make([]*domain.ChartSummary, 0, end-start)
	for _, rec := range matched[start:end] {
		out = append(out, rec.Summary())
	}
	return out, total, nil
}

func (m *memoryChartRepo) DeleteChart(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.charts[id]; !ok {
		return domain.ErrChartNotFound
	}
	delete(m.charts, id)
	return nil
}
