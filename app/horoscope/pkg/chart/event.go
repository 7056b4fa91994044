package chart

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidBirthEvent 出生信息不合法
var ErrInvalidBirthEvent = errors.New("invalid birth event")

// BirthEvent 出生事件（输入）
type BirthEvent struct {
	Year   int `json:"year" yaml:"year"`
	Month  int `json:"month" yaml:"month"`
	Day    int `json:"day" yaml:"day"`
	Hour   int `json:"hour" yaml:"hour"`
	Minute int `json:"minute" yaml:"minute"`
	// 纬度，-90..90
	Latitude float64 `json:"latitude" yaml:"latitude"`
	// 经度，-180..180
	Longitude float64 `json:"longitude" yaml:"longitude"`
	// 相对 UTC 的小时偏移，可为小数。仅记录，不参与计算
	TimezoneOffset float64 `json:"timezone" yaml:"timezone"`
}

// Validate 检查结构性错误，返回的错误都包装了 ErrInvalidBirthEvent
func (e BirthEvent) Validate() error {
	if e.Month < 1 || e.Month > 12 {
		return fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidBirthEvent, e.Month)
	}
	if last := daysIn(e.Year, e.Month); e.Day < 1 || e.Day > last {
		return fmt.Errorf("%w: day %d out of range 1-%d for %04d-%02d", ErrInvalidBirthEvent, e.Day, last, e.Year, e.Month)
	}
	if e.Hour < 0 || e.Hour > 23 {
		return fmt.Errorf("%w: hour %d out of range 0-23", ErrInvalidBirthEvent, e.Hour)
	}
	if e.Minute < 0 || e.Minute > 59 {
		return fmt.Errorf("%w: minute %d out of range 0-59", ErrInvalidBirthEvent, e.Minute)
	}
	if !finite(e.Latitude) || e.Latitude < -90 || e.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range -90..90", ErrInvalidBirthEvent, e.Latitude)
	}
	if !finite(e.Longitude) || e.Longitude < -180 || e.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range -180..180", ErrInvalidBirthEvent, e.Longitude)
	}
	if !finite(e.TimezoneOffset) || e.TimezoneOffset < -12 || e.TimezoneOffset > 14 {
		return fmt.Errorf("%w: timezone offset %v out of range -12..14", ErrInvalidBirthEvent, e.TimezoneOffset)
	}
	return nil
}

// LocalTime 把年月日时分组合成一个本地钟面时间。
// UTC 只作为日历载体，时区偏移不参与换算。
func (e BirthEvent) LocalTime() time.Time {
	return time.Date(e.Year, time.Month(e.Month), e.Day, e.Hour, e.Minute, 0, 0, time.UTC)
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
