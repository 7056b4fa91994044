package chart

// AscendantLongitude 近似上升点：以 6 点为基准，每小时 15 度。
// 纬度与时区不参与计算，这是已知的简化。
func AscendantLongitude(e BirthEvent) float64 {
	hour := float64(e.Hour) + float64(e.Minute)/60
	return Normalize((hour - 6) * 15)
}

// MidheavenLongitude 近似中天：上升点 + 90 度
func MidheavenLongitude(ascendant float64) float64 {
	return Normalize(ascendant + 90)
}
