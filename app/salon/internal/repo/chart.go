package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/iWorld-y/fortune_salon/app/salon/internal/domain"
)

// ChartRepo 星盘仓库接口
type ChartRepo interface {
	// SaveChart 保存星盘记录
	SaveChart(ctx context.Context, rec *domain.ChartRecord) error
	// GetChart 根据ID获取星盘，不存在时返回 domain.ErrChartNotFound
	GetChart(ctx context.Context, id uuid.UUID) (*domain.ChartRecord, error)
	// ListCharts 分页获取摘要，userID 为空时不过滤，按创建时间倒序
	ListCharts(ctx context.Context, userID string, page, pageSize int) ([]*domain.ChartSummary, int, error)
	// DeleteChart 删除星盘
	DeleteChart(ctx context.Context, id uuid.UUID) error
}
