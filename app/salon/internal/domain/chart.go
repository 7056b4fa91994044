package domain

import (
	"errors"

	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/chart"
	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/model"
)

var (
	// ErrChartNotFound 星盘记录不存在
	ErrChartNotFound = errors.New("chart not found")
	// ErrChartExists 记录 ID 冲突
	ErrChartExists = errors.New("chart already exists")
)

// ChartRecord 已计算的星盘及其归属信息
type ChartRecord = model.ChartRecord

// ChartSummary 历史列表条目
type ChartSummary = model.ChartSummary

// ComputeRequest 一次星盘计算请求
type ComputeRequest struct {
	Event  chart.BirthEvent
	Label  string
	UserID string
	// Save 为 true 时写入仓库
	Save bool
}
