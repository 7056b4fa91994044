package chart

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestBirthEvent_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *BirthEvent)
		wantErr bool
	}{
		{"valid", func(e *BirthEvent) {}, false},
		{"month zero", func(e *BirthEvent) { e.Month = 0 }, true},
		{"month 13", func(e *BirthEvent) { e.Month = 13 }, true},
		{"day zero", func(e *BirthEvent) { e.Day = 0 }, true},
		{"feb 30", func(e *BirthEvent) { e.Month, e.Day = 2, 30 }, true},
		{"leap day", func(e *BirthEvent) { e.Month, e.Day = 2, 29 }, false},
		{"hour 24", func(e *BirthEvent) { e.Hour = 24 }, true},
		{"minute 60", func(e *BirthEvent) { e.Minute = 60 }, true},
		{"latitude 91", func(e *BirthEvent) { e.Latitude = 91 }, true},
		{"latitude NaN", func(e *BirthEvent) { e.Latitude = math.NaN() }, true},
		{"longitude -181", func(e *BirthEvent) { e.Longitude = -181 }, true},
		{"timezone fractional", func(e *BirthEvent) { e.TimezoneOffset = 5.5 }, false},
		{"timezone 15", func(e *BirthEvent) { e.TimezoneOffset = 15 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tokyo2000
			tt.mutate(&e)
			err := e.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBirthEvent) {
				t.Errorf("Validate() error = %v, want wrapped ErrInvalidBirthEvent", err)
			}
		})
	}
}

func TestBirthEvent_LocalTime(t *testing.T) {
	e := BirthEvent{Year: 1999, Month: 4, Day: 2, Hour: 8, Minute: 34, TimezoneOffset: 9}
	want := time.Date(1999, time.April, 2, 8, 34, 0, 0, time.UTC)
	if got := e.LocalTime(); !got.Equal(want) {
		t.Errorf("LocalTime() = %v, want %v", got, want)
	}
}
