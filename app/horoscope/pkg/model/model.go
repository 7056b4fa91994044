package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/chart"
)

// ChartRecord 一条已保存的星盘
type ChartRecord struct {
	ID        uuid.UUID    `json:"id"`
	UserID    string       `json:"user_id"`
	Label     string       `json:"label"` // 展示用名称，例如 "山田太郎"
	Chart     *chart.Chart `json:"chart"`
	CreatedAt time.Time    `json:"created_at"`
}

// ChartSummary 历史列表中的摘要
type ChartSummary struct {
	ID            uuid.UUID        `json:"id"`
	UserID        string           `json:"user_id"`
	Label         string           `json:"label"`
	Event         chart.BirthEvent `json:"event"`
	SunSign       chart.Sign       `json:"sun_sign"`
	AscendantSign chart.Sign       `json:"ascendant_sign"`
	AspectCount   int              `json:"aspect_count"`
	CreatedAt     time.Time        `json:"created_at"`
}

// NewChartRecord 为新计算的星盘分配 ID
func NewChartRecord(userID, label string, c *chart.Chart) *ChartRecord {
	return &ChartRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Label:     label,
		Chart:     c,
		CreatedAt: c.ComputedAt,
	}
}

// Summary 从完整记录提取摘要
func (r *ChartRecord) Summary() *ChartSummary {
	s := &ChartSummary{
		ID:        r.ID,
		UserID:    r.UserID,
		Label:     r.Label,
		CreatedAt: r.CreatedAt,
	}
	if r.Chart != nil {
		s.Event = r.Chart.Event
		s.SunSign = r.Chart.Bodies[chart.Sun].Sign
		s.AscendantSign = r.Chart.Angles[chart.Ascendant].Sign
		s.AspectCount = len(r.Chart.Aspects)
	}
	return s
}
