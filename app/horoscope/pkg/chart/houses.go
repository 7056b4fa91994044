package chart

import "math"

// HouseCount 宫位数量
const HouseCount = 12

// HouseCusps 整宫制：以上升点为第一宫起点，每宫 30 度
func HouseCusps(ascendant float64) []HouseCusp {
	cusps := make([]HouseCusp, 0, HouseCount)
	for n := 1; n <= HouseCount; n++ {
		lon := Normalize(ascendant + float64(n-1)*SignWidth)
		sign, deg := SignOf(lon)
		cusps = append(cusps, HouseCusp{
			Number:       n,
			Longitude:    lon,
			Sign:         sign,
			DegreeInSign: deg,
		})
	}
	return cusps
}

// HouseOf 返回黄经所在宫位 [1, 12]
func HouseOf(longitude, ascendant float64) int {
	return int(math.Floor(Normalize(longitude-ascendant)/SignWidth)) + 1
}
