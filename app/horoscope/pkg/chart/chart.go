// Package chart 计算简化星盘：天体黄经、上升/中天、整宫制宫位、相位，并绘制 SVG 星盘图。
//
// 整个计算是纯函数，不做 I/O，也不持有可变的全局状态，可被并发调用。
package chart

import (
	"fmt"
	"time"
)

// BodyPosition 天体位置
type BodyPosition struct {
	Body         Body    `json:"body"`
	Longitude    float64 `json:"longitude"`
	Sign         Sign    `json:"sign"`
	DegreeInSign float64 `json:"degree_in_sign"`
	House        int     `json:"house"`
	// 简化模型不计算逆行，恒为 false
	Retrograde bool `json:"retrograde"`
}

// ChartAngle 感受点位置
type ChartAngle struct {
	Kind         AngleKind `json:"kind"`
	Longitude    float64   `json:"longitude"`
	Sign         Sign      `json:"sign"`
	DegreeInSign float64   `json:"degree_in_sign"`
}

// HouseCusp 宫头
type HouseCusp struct {
	Number       int     `json:"number"`
	Longitude    float64 `json:"longitude"`
	Sign         Sign    `json:"sign"`
	DegreeInSign float64 `json:"degree_in_sign"`
}

// Aspect 两个天体之间的相位
type Aspect struct {
	Body1      Body       `json:"body1"`
	Body2      Body       `json:"body2"`
	Type       AspectType `json:"type"`
	Separation float64    `json:"separation"`
	Orb        float64    `json:"orb"`
}

// OrbString 容许度的展示格式
func (a Aspect) OrbString() string {
	return fmt.Sprintf("%.2f°", a.Orb)
}

// Chart 一次计算的完整结果
type Chart struct {
	Bodies     map[Body]BodyPosition    `json:"bodies"`
	Angles     map[AngleKind]ChartAngle `json:"angles"`
	Houses     []HouseCusp              `json:"houses"`
	Aspects    []Aspect                 `json:"aspects"`
	SVG        string                   `json:"svg"`
	Event      BirthEvent               `json:"event"`
	ComputedAt time.Time                `json:"computed_at"`
}

// Positions 按天体固定顺序返回位置列表
func (c *Chart) Positions() []BodyPosition {
	out := make([]BodyPosition, 0, len(c.Bodies))
	for _, b := range Bodies() {
		if p, ok := c.Bodies[b]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Calculator 注入规则表与时钟的星盘计算器，零值可用
type Calculator struct {
	Rules []AspectRule
	Now   func() time.Time
}

// NewCalculator 使用默认规则与系统时钟
func NewCalculator() *Calculator {
	return &Calculator{Rules: DefaultAspectRules(), Now: time.Now}
}

// Compute 使用默认计算器计算星盘
func Compute(e BirthEvent) (*Chart, error) {
	return NewCalculator().Compute(e)
}

// Compute 计算完整星盘。输入不合法时返回错误，不产出部分结果。
func (c *Calculator) Compute(e BirthEvent) (*Chart, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	rules := c.Rules
	if rules == nil {
		rules = DefaultAspectRules()
	}
	now := c.Now
	if now == nil {
		now = time.Now
	}

	asc := AscendantLongitude(e)
	mc := MidheavenLongitude(asc)
	days := DaysSinceEquinox(e.LocalTime())

	bodies := make(map[Body]BodyPosition, BodyCount)
	positions := make([]BodyPosition, 0, BodyCount)
	for _, b := range Bodies() {
		lon := BodyLongitude(b, days)
		sign, deg := SignOf(lon)
		p := BodyPosition{
			Body:         b,
			Longitude:    lon,
			Sign:         sign,
			DegreeInSign: deg,
			House:        HouseOf(lon, asc),
		}
		bodies[b] = p
		positions = append(positions, p)
	}

	angles := make(map[AngleKind]ChartAngle, AngleCount)
	for kind, lon := range map[AngleKind]float64{Ascendant: asc, Midheaven: mc} {
		sign, deg := SignOf(lon)
		angles[kind] = ChartAngle{Kind: kind, Longitude: lon, Sign: sign, DegreeInSign: deg}
	}

	chart := &Chart{
		Bodies:     bodies,
		Angles:     angles,
		Houses:     HouseCusps(asc),
		Aspects:    DetectAspects(positions, rules),
		Event:      e,
		ComputedAt: now(),
	}
	chart.SVG = Render(chart)
	return chart, nil
}
