package prompt

import (
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"

	"github.com/iWorld-y/fortune_salon/app/horoscope/pkg/chart"
)

func mustChart(t *testing.T) *chart.Chart {
	t.Helper()
	c, err := chart.Compute(chart.BirthEvent{Year: 2000, Month: 1, Day: 1, Latitude: 35, Longitude: 135, TimezoneOffset: 9})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestFormatChart(t *testing.T) {
	c := mustChart(t)
	out := FormatChart(c)

	for _, want := range []string{"**天体の配置:**", "**感受点:**", "**ハウス:**", "**アスペクト:**", "- 太陽: 山羊座 12.14度、1ハウス", "- アセンダント: 山羊座 0.00度", "- 1ハウス: 山羊座 0.00度", "- 12ハウス: 射手座 0.00度"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatChart() missing %q\n%s", want, out)
		}
	}
	if got := strings.Count(out, "ハウス（"); got != chart.BodyCount {
		t.Errorf("body lines = %d, want %d", got, chart.BodyCount)
	}
}

func TestFormatChart_Empty(t *testing.T) {
	out := FormatChart(&chart.Chart{})
	if !strings.Contains(out, "データが利用できません") || !strings.Contains(out, "なし") {
		t.Errorf("FormatChart(empty) = %q", out)
	}
}

func TestBuildMessages(t *testing.T) {
	c := mustChart(t)

	msgs := BuildMessages(c, "  恋愛運  ")
	if len(msgs) != 2 {
		t.Fatalf("len(msgs) = %d", len(msgs))
	}
	if msgs[0].Role != schema.System || msgs[1].Role != schema.User {
		t.Errorf("roles = %v, %v", msgs[0].Role, msgs[1].Role)
	}
	if !strings.Contains(msgs[1].Content, "相談内容）: 恋愛運\n") {
		t.Errorf("question not trimmed:\n%s", msgs[1].Content)
	}
	if !strings.Contains(msgs[1].Content, "2000年1月1日 00:00（UTC+9）") {
		t.Errorf("birth line missing:\n%s", msgs[1].Content)
	}

	msgs = BuildMessages(c, "")
	if !strings.Contains(msgs[1].Content, DefaultQuestion) {
		t.Errorf("default question missing:\n%s", msgs[1].Content)
	}
}
