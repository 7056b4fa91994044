package model

import (
	"testing"

	"github.com/google/uuid"

	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/chart"
)

func TestChartRecord_Summary(t *testing.T) {
	c, err := chart.Compute(chart.BirthEvent{Year: 2000, Month: 1, Day: 1, Latitude: 35, Longitude: 135, TimezoneOffset: 9})
	if err != nil {
		t.Fatal(err)
	}
	rec := NewChartRecord("u1", "hanako", c)
	if rec.ID == uuid.Nil {
		t.Error("ID not assigned")
	}
	if !rec.CreatedAt.Equal(c.ComputedAt) {
		t.Errorf("CreatedAt = %v, want %v", rec.CreatedAt, c.ComputedAt)
	}

	s := rec.Summary()
	if s.SunSign != chart.Capricorn || s.AscendantSign != chart.Capricorn {
		t.Errorf("signs = %v/%v", s.SunSign, s.AscendantSign)
	}
	if s.AspectCount != len(c.Aspects) || s.Event != c.Event || s.Label != "hanako" {
		t.Errorf("Summary() = %+v", s)
	}
}

func TestChartRecord_SummaryNilChart(t *testing.T) {
	s := (&ChartRecord{Label: "x"}).Summary()
	if s.Label != "x" || s.AspectCount != 0 {
		t.Errorf("Summary() = %+v", s)
	}
}
