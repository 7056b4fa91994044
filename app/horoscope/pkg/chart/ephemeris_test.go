package chart

import (
	"math"
	"testing"
	"time"
)

func TestDaysSinceEquinox(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{"equinox", time.Date(2000, 3, 20, 0, 0, 0, 0, time.UTC), 0},
		{"equinox noon", time.Date(2000, 3, 20, 12, 0, 0, 0, time.UTC), 0},
		{"day before", time.Date(2000, 3, 19, 23, 59, 0, 0, time.UTC), -1},
		{"new year leap", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), -79},
		{"new year noon", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), -79},
		{"new year common", time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), -78},
		{"december", time.Date(2001, 12, 31, 0, 0, 0, 0, time.UTC), 286},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysSinceEquinox(tt.t); got != tt.want {
				t.Errorf("DaysSinceEquinox() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBodyLongitude(t *testing.T) {
	tests := []struct {
		name string
		body Body
		days int
		want float64
	}{
		{"sun at equinox", Sun, 0, 0},
		{"sun 10 days", Sun, 10, 9.85556},
		{"moon 30 days", Moon, 30, Normalize(30 * 13.176)},
		{"mars negative", Mars, -100, 360 - 52.4},
		{"pluto", Pluto, 1000, 4},
		{"mercury", Mercury, 10, 9.85556 + math.Sin(1)*30},
		{"venus", Venus, 10, 9.85556 + math.Sin(0.8)*45},
		{"mercury negative", Mercury, -79, Normalize(-79*0.985556 + math.Sin(-7.9)*30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BodyLongitude(tt.body, tt.days)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("BodyLongitude(%v, %d) = %v, want %v", tt.body, tt.days, got, tt.want)
			}
			if got < 0 || got >= 360 {
				t.Errorf("BodyLongitude(%v, %d) = %v out of range", tt.body, tt.days, got)
			}
		})
	}
}

func TestAngles(t *testing.T) {
	tests := []struct {
		hour, minute int
		wantAsc      float64
	}{
		{6, 0, 0},
		{0, 0, 270},
		{12, 0, 90},
		{8, 34, 38.5},
		{23, 59, Normalize((23 + 59.0/60 - 6) * 15)},
	}
	for _, tt := range tests {
		e := BirthEvent{Year: 2000, Month: 1, Day: 1, Hour: tt.hour, Minute: tt.minute}
		asc := AscendantLongitude(e)
		if math.Abs(asc-tt.wantAsc) > 1e-9 {
			t.Errorf("AscendantLongitude(%02d:%02d) = %v, want %v", tt.hour, tt.minute, asc, tt.wantAsc)
		}
		if mc := MidheavenLongitude(asc); math.Abs(mc-Normalize(tt.wantAsc+90)) > 1e-9 {
			t.Errorf("MidheavenLongitude(%v) = %v", asc, mc)
		}
	}

	// 纬度不影响近似上升点
	a := BirthEvent{Year: 2000, Month: 1, Day: 1, Hour: 9, Latitude: 10}
	b := a
	b.Latitude = -60
	if AscendantLongitude(a) != AscendantLongitude(b) {
		t.Error("latitude changed the ascendant")
	}
}
