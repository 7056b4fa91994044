package chart

import "fmt"

// Body 天体标识，顺序即计算与绘制顺序
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// BodyCount 参与计算的天体数量
const BodyCount = 10

type bodyInfo struct {
	key    string
	name   string
	jaName string
	symbol string
	// 平均日运动（度/日）
	motion float64
}

var bodyTable = [BodyCount]bodyInfo{
	{"sun", "Sun", "太陽", "☉", 0.985556},
	{"moon", "Moon", "月", "☽", 13.176},
	{"mercury", "Mercury", "水星", "☿", 1.383},
	{"venus", "Venus", "金星", "♀", 1.2},
	{"mars", "Mars", "火星", "♂", 0.524},
	{"jupiter", "Jupiter", "木星", "♃", 0.083},
	{"saturn", "Saturn", "土星", "♄", 0.034},
	{"uranus", "Uranus", "天王星", "♅", 0.012},
	{"neptune", "Neptune", "海王星", "♆", 0.006},
	{"pluto", "Pluto", "冥王星", "♇", 0.004},
}

// Bodies 按固定顺序返回全部天体
func Bodies() []Body {
	out := make([]Body, BodyCount)
	for i := range out {
		out[i] = Body(i)
	}
	return out
}

func (b Body) Valid() bool { return b >= 0 && int(b) < BodyCount }

func (b Body) String() string {
	if !b.Valid() {
		return fmt.Sprintf("body(%d)", int(b))
	}
	return bodyTable[b].key
}

// Name 英文名
func (b Body) Name() string {
	if !b.Valid() {
		return ""
	}
	return bodyTable[b].name
}

// JapaneseName 日文名，用于面向用户的提示词
func (b Body) JapaneseName() string {
	if !b.Valid() {
		return ""
	}
	return bodyTable[b].jaName
}

// Symbol 天体符号
func (b Body) Symbol() string {
	if !b.Valid() {
		return ""
	}
	return bodyTable[b].symbol
}

// DailyMotion 平均日运动（度/日）
func (b Body) DailyMotion() float64 {
	if !b.Valid() {
		return 0
	}
	return bodyTable[b].motion
}

func (b Body) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("unknown body %d", int(b))
	}
	return []byte(bodyTable[b].key), nil
}

func (b *Body) UnmarshalText(text []byte) error {
	for i, info := range bodyTable {
		if info.key == string(text) {
			*b = Body(i)
			return nil
		}
	}
	return fmt.Errorf("unknown body %q", text)
}

// AngleKind 感受点标识
type AngleKind int

const (
	Ascendant AngleKind = iota
	Midheaven
)

// AngleCount 感受点数量
const AngleCount = 2

var angleTable = [AngleCount]struct {
	key, name, jaName, symbol string
}{
	{"ascendant", "Ascendant", "アセンダント", "AC"},
	{"midheaven", "Midheaven", "MC", "MC"},
}

// Angles 按固定顺序返回全部感受点
func Angles() []AngleKind {
	return []AngleKind{Ascendant, Midheaven}
}

func (a AngleKind) Valid() bool { return a >= 0 && int(a) < AngleCount }

func (a AngleKind) String() string {
	if !a.Valid() {
		return fmt.Sprintf("angle(%d)", int(a))
	}
	return angleTable[a].key
}

func (a AngleKind) Name() string {
	if !a.Valid() {
		return ""
	}
	return angleTable[a].name
}

func (a AngleKind) JapaneseName() string {
	if !a.Valid() {
		return ""
	}
	return angleTable[a].jaName
}

func (a AngleKind) Symbol() string {
	if !a.Valid() {
		return ""
	}
	return angleTable[a].symbol
}

func (a AngleKind) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("unknown angle %d", int(a))
	}
	return []byte(angleTable[a].key), nil
}

func (a *AngleKind) UnmarshalText(text []byte) error {
	for i, info := range angleTable {
		if info.key == string(text) {
			*a = AngleKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown angle %q", text)
}
