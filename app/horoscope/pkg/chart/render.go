package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// 画布与圆环半径
const (
	CanvasSize       = 500
	center           = CanvasSize / 2.0
	zodiacRingRadius = center - 30
	houseRingRadius  = zodiacRingRadius - 40
	bodyRingRadius   = houseRingRadius - 25
	aspectRadius     = bodyRingRadius - 12
)

type point struct{ x, y float64 }

// polar 黄经 -> 画布坐标，0 度位于正上方
func polar(radius, deg float64) point {
	rad := (deg - 90) * math.Pi / 180
	return point{x: center + radius*math.Cos(rad), y: center + radius*math.Sin(rad)}
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Render 根据已计算好的星盘生成 SVG。纯函数，不会失败；未知的天体/感受点直接跳过。
func Render(c *Chart) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg" style="background-color: #faf5ff; border-radius: 50%%;">`,
		CanvasSize, CanvasSize, CanvasSize, CanvasSize)
	sb.WriteString("\n")

	// 1. 圆环
	writeCircle(&sb, zodiacRingRadius, `stroke="#e9d5ff" stroke-width="1"`)
	writeCircle(&sb, houseRingRadius, `stroke="#e9d5ff" stroke-width="1"`)
	writeCircle(&sb, bodyRingRadius, `stroke="#f3e8ff" stroke-width="0.5" stroke-dasharray="4 4"`)

	// 2. 星座分隔线与符号
	for i := 0; i < SignCount; i++ {
		deg := Sign(i).StartLongitude()
		writeLine(&sb, polar(houseRingRadius, deg), polar(zodiacRingRadius, deg), `stroke="#d8b4fe" stroke-width="1"`)
		writeText(&sb, polar(zodiacRingRadius+15, deg+SignWidth/2), `font-size="20" fill="#a855f7"`, Sign(i).Glyph())
	}

	// 3. 宫头与宫位编号
	for _, h := range c.Houses {
		writeLine(&sb, polar(0, h.Longitude), polar(houseRingRadius, h.Longitude), `stroke="#c084fc" stroke-width="0.7"`)
		writeText(&sb, polar(houseRingRadius-15, h.Longitude+SignWidth/2), `font-size="12" fill="#7e22ce"`, strconv.Itoa(h.Number))
	}

	// 4. 天体与感受点
	for _, b := range Bodies() {
		p, ok := c.Bodies[b]
		if !ok {
			continue
		}
		pos := polar(bodyRingRadius, p.Longitude)
		writeText(&sb, pos, `font-size="18" fill="#581c87"`, b.Symbol())
		if p.Retrograde {
			writeText(&sb, point{pos.x, pos.y + 12}, `font-size="10" fill="#c026d3"`, "R")
		}
	}
	for _, k := range Angles() {
		a, ok := c.Angles[k]
		if !ok {
			continue
		}
		writeText(&sb, polar(bodyRingRadius, a.Longitude), `font-size="18" fill="#581c87"`, k.Symbol())
	}

	// 5. 相位线
	for _, asp := range c.Aspects {
		color := asp.Type.Color()
		p1, ok1 := c.Bodies[asp.Body1]
		p2, ok2 := c.Bodies[asp.Body2]
		if color == "" || !ok1 || !ok2 {
			continue
		}
		writeLine(&sb, polar(aspectRadius, p1.Longitude), polar(aspectRadius, p2.Longitude),
			fmt.Sprintf(`stroke="%s" stroke-width="1" opacity="0.7"`, color))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writeCircle(sb *strings.Builder, r float64, style string) {
	fmt.Fprintf(sb, `  <circle cx="%s" cy="%s" r="%s" fill="none" %s/>`+"\n", num(center), num(center), num(r), style)
}

func writeLine(sb *strings.Builder, from, to point, style string) {
	fmt.Fprintf(sb, `  <line x1="%s" y1="%s" x2="%s" y2="%s" %s/>`+"\n", num(from.x), num(from.y), num(to.x), num(to.y), style)
}

func writeText(sb *strings.Builder, at point, style, text string) {
	fmt.Fprintf(sb, `  <text x="%s" y="%s" %s text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n", num(at.x), num(at.y), style, text)
}
