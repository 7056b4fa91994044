package chart

import (
	"fmt"
	"math"
)

// Sign 黄道十二宫，从白羊座开始
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignCount 星座数量
const SignCount = 12

// SignWidth 每个星座跨越的黄经度数
const SignWidth = 30.0

// Element 四元素
type Element string

const (
	Fire  Element = "fire"
	Earth Element = "earth"
	Air   Element = "air"
	Water Element = "water"
)

// Modality 三态
type Modality string

const (
	Cardinal Modality = "cardinal"
	Fixed    Modality = "fixed"
	Mutable  Modality = "mutable"
)

var signTable = [SignCount]struct {
	key, name, jaName, glyph string
	element                  Element
	modality                 Modality
}{
	{"aries", "Aries", "牡羊座", "♈", Fire, Cardinal},
	{"taurus", "Taurus", "牡牛座", "♉", Earth, Fixed},
	{"gemini", "Gemini", "双子座", "♊", Air, Mutable},
	{"cancer", "Cancer", "蟹座", "♋", Water, Cardinal},
	{"leo", "Leo", "獅子座", "♌", Fire, Fixed},
	{"virgo", "Virgo", "乙女座", "♍", Earth, Mutable},
	{"libra", "Libra", "天秤座", "♎", Air, Cardinal},
	{"scorpio", "Scorpio", "蠍座", "♏", Water, Fixed},
	{"sagittarius", "Sagittarius", "射手座", "♐", Fire, Mutable},
	{"capricorn", "Capricorn", "山羊座", "♑", Earth, Cardinal},
	{"aquarius", "Aquarius", "水瓶座", "♒", Air, Fixed},
	{"pisces", "Pisces", "魚座", "♓", Water, Mutable},
}

func (s Sign) Valid() bool { return s >= 0 && int(s) < SignCount }

func (s Sign) String() string {
	if !s.Valid() {
		return fmt.Sprintf("sign(%d)", int(s))
	}
	return signTable[s].key
}

func (s Sign) Name() string {
	if !s.Valid() {
		return ""
	}
	return signTable[s].name
}

func (s Sign) JapaneseName() string {
	if !s.Valid() {
		return ""
	}
	return signTable[s].jaName
}

// Glyph 星座符号
func (s Sign) Glyph() string {
	if !s.Valid() {
		return ""
	}
	return signTable[s].glyph
}

func (s Sign) Element() Element {
	if !s.Valid() {
		return ""
	}
	return signTable[s].element
}

func (s Sign) Modality() Modality {
	if !s.Valid() {
		return ""
	}
	return signTable[s].modality
}

// StartLongitude 星座起始黄经
func (s Sign) StartLongitude() float64 { return float64(s) * SignWidth }

func (s Sign) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown sign %d", int(s))
	}
	return []byte(signTable[s].key), nil
}

func (s *Sign) UnmarshalText(text []byte) error {
	for i, info := range signTable {
		if info.key == string(text) {
			*s = Sign(i)
			return nil
		}
	}
	return fmt.Errorf("unknown sign %q", text)
}

// Normalize 将任意角度归一化到 [0, 360)，等价于 ((x mod 360) + 360) mod 360。
// 对已在范围内的值保持不变。
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// -1e-15 + 360 会被舍入成 360
	if d >= 360 {
		d = 0
	}
	return d
}

// SignOf 黄经 -> (星座, 星座内度数)
func SignOf(longitude float64) (Sign, float64) {
	l := Normalize(longitude)
	return Sign(int(math.Floor(l / SignWidth))), math.Mod(l, SignWidth)
}
