package usecase

import (
	"context"

	"github.com/cloudwego/eino/schema"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"

	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/chart"
	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/model"
	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/prompt"
	"github.com/iWorld-y/fortune_salon/app/salon/internal/domain"
	"github.com/iWorld-y/fortune_salon/app/salon/internal/repo"
)

// ChartUseCase 星盘业务逻辑
type ChartUseCase struct {
	repo repo.ChartRepo
	calc *chart.Calculator
	log  *log.Helper
}

// NewChartUseCase 创建星盘业务逻辑实例
func NewChartUseCase(repo repo.ChartRepo, logger log.Logger) *ChartUseCase {
	return &ChartUseCase{
		repo: repo,
		calc: chart.NewCalculator(),
		log:  log.NewHelper(logger),
	}
}

// Compute 计算星盘，按需保存。未保存的记录同样带有 ID，但无法再次查询。
func (uc *ChartUseCase) Compute(ctx context.Context, req *domain.ComputeRequest) (*domain.ChartRecord, error) {
	c, err := uc.calc.Compute(req.Event)
	if err != nil {
		return nil, err
	}
	rec := model.NewChartRecord(req.UserID, req.Label, c)

	if !req.Save {
		return rec, nil
	}
	if err := uc.repo.SaveChart(ctx, rec); err != nil {
		uc.log.WithContext(ctx).Errorf("save chart: %v", err)
		return nil, err
	}
	uc.log.WithContext(ctx).Infof("chart saved: id=%s user=%q aspects=%d", rec.ID, rec.UserID, len(c.Aspects))
	return rec, nil
}

// Get 根据ID获取星盘
func (uc *ChartUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.ChartRecord, error) {
	return uc.repo.GetChart(ctx, id)
}

// List 分页列出星盘摘要
func (uc *ChartUseCase) List(ctx context.Context, userID string, page, pageSize int) ([]*domain.ChartSummary, int, error) {
	return uc.repo.ListCharts(ctx, userID, page, pageSize)
}

// Delete 删除星盘
func (uc *ChartUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.DeleteChart(ctx, id)
}

// Prompt 为已保存的星盘组装鉴定提示词
func (uc *ChartUseCase) Prompt(ctx context.Context, id uuid.UUID, question string) ([]*schema.Message, error) {
	rec, err := uc.repo.GetChart(ctx, id)
	if err != nil {
		return nil, err
	}
	return prompt.BuildMessages(rec.Chart, question), nil
}
