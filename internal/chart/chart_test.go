package chart

import (
	"bytes"
	"strings"
	"testing"

	"infradash/internal/model"
)

type fakeSource struct {
	sectors []string
}

func (f fakeSource) TimeSeries(kind model.MetricKind, region, sector string) model.Series {
	base := 10.0
	if kind == model.MetricSpending {
		base = 1000
	}
	return model.Series{Sector: sector, Points: []model.Point{
		{Year: 2000, Value: base},
		{Year: 2001, Value: base + 5},
	}}
}

func (f fakeSource) AllSectorSeries(kind model.MetricKind, region string) []model.Series {
	out := make([]model.Series, 0, len(f.sectors))
	for _, s := range f.sectors {
		out = append(out, f.TimeSeries(kind, region, s))
	}
	return out
}

func TestBuild_SectorWear(t *testing.T) {
	t.Parallel()

	spec, err := Build(fakeSource{}, SectorWear, "Almaty", "Transport")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if spec.Metric != model.MetricWear {
		t.Fatalf("metric=%s", spec.Metric)
	}
	if spec.YRange == nil || spec.YRange[0] != 0 || spec.YRange[1] != 100 {
		t.Fatalf("wear chart should be clamped to [0,100], got %v", spec.YRange)
	}
	if !strings.Contains(spec.Title, "Transport") || !strings.Contains(spec.Title, "Almaty") || !strings.Contains(spec.Title, "(2000-2024)") {
		t.Fatalf("unexpected title: %s", spec.Title)
	}
	if len(spec.Series) != 1 || spec.Series[0].Sector != "Transport" {
		t.Fatalf("unexpected series: %+v", spec.Series)
	}

	// 修改返回值不影响后续图表
	spec.YRange[1] = 50
	again, _ := Build(fakeSource{}, SectorWear, "Almaty", "Transport")
	if again.YRange[1] != 100 {
		t.Fatalf("wear range leaked between specs: %v", again.YRange)
	}
}

func TestBuild_AllSectorSpendingHasNoRange(t *testing.T) {
	t.Parallel()

	spec, err := Build(fakeSource{sectors: []string{"Transport", "Energy", "Social"}}, AllSectorSpending, "Astana", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if spec.YRange != nil {
		t.Fatalf("spending chart should not clamp y axis")
	}
	if spec.LegendTitle != "Sectors" || len(spec.Series) != 3 {
		t.Fatalf("unexpected spec: %+v", spec)
	}
	if spec.Series[0].Points[0].Value != 1000 {
		t.Fatalf("spending chart should read spending table")
	}
}

func TestBuild_RequiresSector(t *testing.T) {
	t.Parallel()

	if _, err := Build(fakeSource{}, SectorSpending, "Astana", ""); err == nil {
		t.Fatalf("expected error without sector")
	}
	if _, err := Build(fakeSource{}, Kind("pie"), "Astana", "x"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestBuild_EmptySourceGivesEmptySeries(t *testing.T) {
	t.Parallel()

	spec, err := Build(fakeSource{}, AllSectorWear, "Nowhere", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if spec.Series == nil || len(spec.Series) != 0 {
		t.Fatalf("want empty non-nil series, got %#v", spec.Series)
	}
	if len(spec.Years()) != 0 {
		t.Fatalf("want no years")
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds {
		got, ok := ParseKind(string(k))
		if !ok || got != k {
			t.Fatalf("ParseKind(%s) = %s %v", k, got, ok)
		}
	}
	if _, ok := ParseKind("bar"); ok {
		t.Fatalf("bar should be rejected")
	}
	if !SectorWear.NeedsSector() || AllSectorWear.NeedsSector() {
		t.Fatalf("NeedsSector mismatch")
	}
}

func TestRender_PNGAndSVG(t *testing.T) {
	spec, err := Build(fakeSource{sectors: []string{"Transport", "Energy"}}, AllSectorWear, "Almaty", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var png bytes.Buffer
	if err := Render(&png, spec, PNG, DefaultWidth, DefaultHeight); err != nil {
		t.Fatalf("Render png: %v", err)
	}
	if !bytes.HasPrefix(png.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("output is not a png")
	}

	var svg bytes.Buffer
	if err := Render(&svg, spec, SVG, DefaultWidth, DefaultHeight); err != nil {
		t.Fatalf("Render svg: %v", err)
	}
	if !strings.Contains(svg.String(), "<svg") {
		t.Fatalf("output is not an svg")
	}
}

func TestRender_EmptyChart(t *testing.T) {
	spec, _ := Build(fakeSource{}, AllSectorWear, "Nowhere", "")
	var buf bytes.Buffer
	if err := Render(&buf, spec, PNG, DefaultWidth, DefaultHeight); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty output")
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	if f, ok := ParseFormat(""); !ok || f != PNG {
		t.Fatalf("default should be png")
	}
	if f, ok := ParseFormat("svg"); !ok || f.ContentType() != "image/svg+xml" {
		t.Fatalf("svg content type mismatch")
	}
	if _, ok := ParseFormat("gif"); ok {
		t.Fatalf("gif should be rejected")
	}
}
