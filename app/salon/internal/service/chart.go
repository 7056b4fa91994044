package service

import (
	"context"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"

	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/chart"
	"github.com/iWorld-y/fortune_salon/app/salon/internal/conf"
	"github.com/iWorld-y/fortune_salon/app/salon/internal/domain"
	"github.com/iWorld-y/fortune_salon/app/salon/internal/usecase"
)

// DefaultTimezone 请求与配置都未给出时区时使用（日本标准时间）
const DefaultTimezone = 9.0

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type CreateChartRequest struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// nil 时使用默认时区
	Timezone *float64 `json:"timezone"`
	Label    string   `json:"label"`
	UserID   string   `json:"user_id"`
	Save     bool     `json:"save"`
}

type ChartReply struct {
	// 仅在已保存时返回
	ID        string       `json:"id,omitempty"`
	Saved     bool         `json:"saved"`
	UserID    string       `json:"user_id,omitempty"`
	Label     string       `json:"label,omitempty"`
	Chart     *chart.Chart `json:"chart"`
	CreatedAt time.Time    `json:"created_at"`
}

type ListChartsRequest struct {
	Page     int32  `json:"page"`
	PageSize int32  `json:"page_size"`
	UserID   string `json:"user_id"`
}

type ListChartsReply struct {
	Charts []*domain.ChartSummary `json:"charts"`
	Total  int32                  `json:"total"`
}

type GetChartRequest struct {
	Id string `json:"id"`
}

type GetChartPromptRequest struct {
	Id       string `json:"id"`
	Question string `json:"question"`
}

type ChartPromptReply struct {
	Messages []*schema.Message `json:"messages"`
}

type DeleteChartReply struct{}

type ChartService struct {
	uc       *usecase.ChartUseCase
	timezone float64
	log      *log.Helper
}

func NewChartService(uc *usecase.ChartUseCase, c *conf.Chart, logger log.Logger) *ChartService {
	tz := DefaultTimezone
	if c != nil && c.DefaultTimezone != nil {
		tz = *c.DefaultTimezone
	}
	return &ChartService{
		uc:       uc,
		timezone: tz,
		log:      log.NewHelper(logger),
	}
}

func (s *ChartService) CreateChart(ctx context.Context, req *CreateChartRequest) (*ChartReply, error) {
	tz := s.timezone
	if req.Timezone != nil {
		tz = *req.Timezone
	}
	rec, err := s.uc.Compute(ctx, &domain.ComputeRequest{
		Event: chart.BirthEvent{
			Year:           req.Year,
			Month:          req.Month,
			Day:            req.Day,
			Hour:           req.Hour,
			Minute:         req.Minute,
			Latitude:       req.Latitude,
			Longitude:      req.Longitude,
			TimezoneOffset: tz,
		},
		Label:  req.Label,
		UserID: req.UserID,
		Save:   req.Save,
	})
	if err != nil {
		return nil, toServiceError(err)
	}

	reply := recordReply(rec)
	if !req.Save {
		reply.ID = ""
		reply.Saved = false
	}
	return reply, nil
}

func (s *ChartService) ListCharts(ctx context.Context, req *ListChartsRequest) (*ListChartsReply, error) {
	page := int(req.Page)
	if page < 1 {
		page = 1
	}
	pageSize := int(req.PageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	list, total, err := s.uc.List(ctx, req.UserID, page, pageSize)
	if err != nil {
		return nil, toServiceError(err)
	}
	if list == nil {
		list = []*domain.ChartSummary{}
	}
	return &ListChartsReply{Charts: list, Total: int32(total)}, nil
}

func (s *ChartService) GetChart(ctx context.Context, req *GetChartRequest) (*ChartReply, error) {
	id, err := parseID(req.Id)
	if err != nil {
		return nil, err
	}
	rec, err := s.uc.Get(ctx, id)
	if err != nil {
		return nil, toServiceError(err)
	}
	return recordReply(rec), nil
}

// GetChartSVG 返回已保存星盘的 SVG 文本
func (s *ChartService) GetChartSVG(ctx context.Context, req *GetChartRequest) (string, error) {
	id, err := parseID(req.Id)
	if err != nil {
		return "", err
	}
	rec, err := s.uc.Get(ctx, id)
	if err != nil {
		return "", toServiceError(err)
	}
	return rec.Chart.SVG, nil
}

func (s *ChartService) GetChartPrompt(ctx context.Context, req *GetChartPromptRequest) (*ChartPromptReply, error) {
	id, err := parseID(req.Id)
	if err != nil {
		return nil, err
	}
	msgs, err := s.uc.Prompt(ctx, id, req.Question)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &ChartPromptReply{Messages: msgs}, nil
}

func (s *ChartService) DeleteChart(ctx context.Context, req *GetChartRequest) (*DeleteChartReply, error) {
	id, err := parseID(req.Id)
	if err != nil {
		return nil, err
	}
	if err := s.uc.Delete(ctx, id); err != nil {
		return nil, toServiceError(err)
	}
	s.log.WithContext(ctx).Infof("chart deleted: id=%s", id)
	return &DeleteChartReply{}, nil
}

func recordReply(rec *domain.ChartRecord) *ChartReply {
	return &ChartReply{
		ID:        rec.ID.String(),
		Saved:     true,
		UserID:    rec.UserID,
		Label:     rec.Label,
		Chart:     rec.Chart,
		CreatedAt: rec.CreatedAt,
	}
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.BadRequest("INVALID_CHART_ID", "chart id must be a uuid")
	}
	return id, nil
}

// toServiceError 将领域错误映射为 kratos 错误
func toServiceError(err error) error {
	switch {
	case errors.Is(err, chart.ErrInvalidBirthEvent):
		return errors.BadRequest("INVALID_BIRTH_EVENT", err.Error())
	case errors.Is(err, domain.ErrChartNotFound):
		return errors.NotFound("CHART_NOT_FOUND", "chart not found")
	case errors.Is(err, domain.ErrChartExists):
		return errors.Conflict("CHART_EXISTS", "chart already exists")
	default:
		return err
	}
}
