package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/chart"
	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/config"
	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/logger"
	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/model"
)

type mockStore struct {
	mu    sync.Mutex
	saved []*model.ChartRecord
	err   error
}

func (m *mockStore) SaveChart(ctx context.Context, rec *model.ChartRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, rec)
	return nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	if err := logger.InitLogger("error", ""); err != nil {
		t.Fatal(err)
	}
	return &config.Config{
		Profiles: []config.Profile{
			{Name: "taro", Label: "山田太郎", Birth: chart.BirthEvent{Year: 1999, Month: 4, Day: 2, Hour: 8, Minute: 34, Latitude: 36.24, Longitude: 139.19, TimezoneOffset: 9}},
			{Name: "broken", Birth: chart.BirthEvent{Year: 2000, Month: 13, Day: 1}},
			{Name: "hanako", Birth: chart.BirthEvent{Year: 2000, Month: 1, Day: 1, Latitude: 35, Longitude: 135, TimezoneOffset: 9}},
		},
		Output:      config.OutputConfig{Dir: t.TempDir(), Gallery: true},
		Concurrency: config.ConcurrencyConfig{Workers: 2},
	}
}

func TestGenerateAll(t *testing.T) {
	cfg := testConfig(t)
	store := &mockStore{}

	results := generateAll(context.Background(), cfg, chart.NewCalculator(), store)
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2 (broken profile skipped)", len(results))
	}
	if results[0].Profile.Name != "taro" || results[1].Profile.Name != "hanako" {
		t.Errorf("order = %s, %s", results[0].Profile.Name, results[1].Profile.Name)
	}
	if results[1].Record.Label != "hanako" {
		t.Errorf("label fallback = %q", results[1].Record.Label)
	}
	if len(store.saved) != 2 {
		t.Errorf("saved = %d, want 2", len(store.saved))
	}

	for _, r := range results {
		data, err := os.ReadFile(r.File)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(data), "<svg") {
			t.Errorf("%s is not svg", r.File)
		}
	}
	if _, err := os.Stat(filepath.Join(cfg.Output.Dir, "broken.svg")); !os.IsNotExist(err) {
		t.Error("svg written for invalid profile")
	}
}

func TestGenerateAll_StoreFailureKeepsResult(t *testing.T) {
	cfg := testConfig(t)
	results := generateAll(context.Background(), cfg, chart.NewCalculator(), &mockStore{err: errors.New("db down")})
	if len(results) != 2 {
		t.Errorf("len(results) = %d, want 2", len(results))
	}
}

func TestWriteGallery(t *testing.T) {
	cfg := testConfig(t)
	results := generateAll(context.Background(), cfg, chart.NewCalculator(), nil)

	path := filepath.Join(cfg.Output.Dir, "index.html")
	if err := writeGallery(path, results); err != nil {
		t.Fatalf("writeGallery() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	for _, want := range []string{"山田太郎", "2 件", "<svg", "☉ 太陽", "1999年4月2日 08:34"} {
		if !strings.Contains(html, want) {
			t.Errorf("gallery missing %q", want)
		}
	}
}
