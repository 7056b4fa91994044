package chart

import (
	"math"
	"time"
)

// 简化星历模型：线性平均运动，水星、金星附加围绕太阳的正弦摆动。
// 常量须保持不变，历史数据依赖这些输出。
const (
	mercuryAmplitude = 30.0
	mercuryFrequency = 0.1
	venusAmplitude   = 45.0
	venusFrequency   = 0.08
)

// DaysSinceEquinox 目标时间距当年 3 月 20 日 00:00 的天数（向下取整，可为负）
func DaysSinceEquinox(t time.Time) int {
	ref := time.Date(t.Year(), time.March, 20, 0, 0, 0, 0, t.Location())
	return int(math.Floor(t.Sub(ref).Hours() / 24))
}

// BodyLongitude 根据春分后天数计算天体黄经，结果在 [0, 360)
func BodyLongitude(b Body, days int) float64 {
	d := float64(days)
	sun := d * Sun.DailyMotion()

	var lon float64
	switch b {
	case Mercury:
		lon = sun + math.Sin(d*mercuryFrequency)*mercuryAmplitude
	case Venus:
		lon = sun + math.Sin(d*venusFrequency)*venusAmplitude
	default:
		lon = d * b.DailyMotion()
	}
	return Normalize(lon)
}
