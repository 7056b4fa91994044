package chart

import (
	"fmt"
	"math"
)

// AspectType 相位类型
type AspectType int

const (
	Conjunction AspectType = iota
	Opposition
	Trine
	Square
	Sextile
)

const aspectTypeCount = 5

var aspectTable = [aspectTypeCount]struct {
	key, name, jaName, nature, color string
}{
	{"conjunction", "Conjunction", "コンジャンクション", "融合・強化", "#6b7280"},
	{"opposition", "Opposition", "オポジション", "対立・緊張", "#ef4444"},
	{"trine", "Trine", "トライン", "調和・流れ", "#22c55e"},
	{"square", "Square", "スクエア", "困難・成長", "#3b82f6"},
	{"sextile", "Sextile", "セクスタイル", "機会・協力", "#f97316"},
}

func (t AspectType) Valid() bool { return t >= 0 && int(t) < aspectTypeCount }

func (t AspectType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("aspect(%d)", int(t))
	}
	return aspectTable[t].key
}

func (t AspectType) Name() string {
	if !t.Valid() {
		return ""
	}
	return aspectTable[t].name
}

func (t AspectType) JapaneseName() string {
	if !t.Valid() {
		return ""
	}
	return aspectTable[t].jaName
}

// Nature 相位性质
func (t AspectType) Nature() string {
	if !t.Valid() {
		return ""
	}
	return aspectTable[t].nature
}

// Color 星盘中相位线的颜色，未知类型返回空串
func (t AspectType) Color() string {
	if !t.Valid() {
		return ""
	}
	return aspectTable[t].color
}

func (t AspectType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown aspect type %d", int(t))
	}
	return []byte(aspectTable[t].key), nil
}

func (t *AspectType) UnmarshalText(text []byte) error {
	for i, info := range aspectTable {
		if info.key == string(text) {
			*t = AspectType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown aspect type %q", text)
}

// AspectRule 相位判定规则：精确角度与容许度
type AspectRule struct {
	Type  AspectType
	Angle float64
	Orb   float64
}

// DefaultAspectRules 默认规则表，顺序即匹配优先级。每次返回新切片。
func DefaultAspectRules() []AspectRule {
	return []AspectRule{
		{Type: Conjunction, Angle: 0, Orb: 10},
		{Type: Opposition, Angle: 180, Orb: 8},
		{Type: Trine, Angle: 120, Orb: 8},
		{Type: Square, Angle: 90, Orb: 8},
		{Type: Sextile, Angle: 60, Orb: 6},
	}
}

// Separation 两个黄经之间的较短弧，结果在 [0, 180]
func Separation(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Classify 按规则顺序匹配，第一条命中即返回
func Classify(a, b float64, rules []AspectRule) (AspectType, float64, bool) {
	d := Separation(a, b)
	for _, r := range rules {
		if orb := math.Abs(d - r.Angle); orb <= r.Orb {
			return r.Type, orb, true
		}
	}
	return 0, 0, false
}

// DetectAspects 遍历所有无序天体对，每对最多记录一个相位
func DetectAspects(positions []BodyPosition, rules []AspectRule) []Aspect {
	var aspects []Aspect
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			p1, p2 := positions[i], positions[j]
			typ, orb, ok := Classify(p1.Longitude, p2.Longitude, rules)
			if !ok {
				continue
			}
			aspects = append(aspects, Aspect{
				Body1:      p1.Body,
				Body2:      p2.Body,
				Type:       typ,
				Separation: Separation(p1.Longitude, p2.Longitude),
				Orb:        orb,
			})
		}
	}
	return aspects
}
