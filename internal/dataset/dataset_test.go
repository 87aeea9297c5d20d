package dataset

import (
	"testing"

	"infradash/internal/model"
)

func wearTable() *model.Table {
	return &model.Table{
		Kind:    model.MetricWear,
		Sectors: []string{"Transport", "Energy"},
		Rows: []model.MetricRow{
			{Region: "Almaty", Year: 2002, Values: map[string]float64{"Transport": 44, "Energy": 31}},
			{Region: "Astana", Year: 2000, Values: map[string]float64{"Transport": 20, "Energy": 25}},
			{Region: "Almaty", Year: 2000, Values: map[string]float64{"Transport": 40, "Energy": 30}},
			{Region: "Almaty", Year: 2001, Values: map[string]float64{"Transport": 42}},
		},
	}
}

func spendingTable() *model.Table {
	return &model.Table{
		Kind:    model.MetricSpending,
		Sectors: []string{"Transport", "Energy"},
		Rows: []model.MetricRow{
			{Region: "Aktobe", Year: 2000, Values: map[string]float64{"Transport": 1000, "Energy": 500}},
		},
	}
}

func testDataset() *Dataset {
	rankings := map[model.Industry][]model.RankingRecord{
		"roads": {{Region: "Almaty", Priority: 1, Industry: "roads"}},
		"heat":  {{Region: "Astana", Priority: 2, Industry: "heat"}},
	}
	return New(wearTable(), spendingTable(), []model.RegionGeometry{{ShapeName: "Almaty"}}, rankings)
}

func TestTimeSeries_OnlySelectedRegionSortedByYear(t *testing.T) {
	t.Parallel()

	d := testDataset()
	s := d.TimeSeries(model.MetricWear, "Almaty", "Transport")
	if s.Sector != "Transport" {
		t.Fatalf("sector=%s", s.Sector)
	}
	if len(s.Points) != 3 {
		t.Fatalf("points want=3 got=%d", len(s.Points))
	}
	wantYears := []int{2000, 2001, 2002}
	wantValues := []float64{40, 42, 44}
	for i, p := range s.Points {
		if p.Year != wantYears[i] || p.Value != wantValues[i] {
			t.Fatalf("point %d want=(%d,%v) got=(%d,%v)", i, wantYears[i], wantValues[i], p.Year, p.Value)
		}
	}
}

func TestTimeSeries_LengthMatchesRegionRowCount(t *testing.T) {
	t.Parallel()

	table := wearTable()
	counts := map[string]int{}
	for _, r := range table.Rows {
		counts[r.Region]++
	}
	for region, n := range counts {
		if got := len(TimeSeries(table, region, "Transport").Points); got != n {
			t.Fatalf("%s want=%d got=%d", region, n, got)
		}
	}
}

func TestTimeSeries_SkipsMissingValues(t *testing.T) {
	t.Parallel()

	s := TimeSeries(wearTable(), "Almaty", "Energy")
	if len(s.Points) != 2 || s.Points[1].Year != 2002 {
		t.Fatalf("unexpected points: %+v", s.Points)
	}
}

func TestTimeSeries_UnknownRegionIsEmpty(t *testing.T) {
	t.Parallel()

	d := testDataset()
	s := d.TimeSeries(model.MetricWear, "Nowhere", "Transport")
	if s.Points == nil || len(s.Points) != 0 {
		t.Fatalf("want empty non-nil points, got %#v", s.Points)
	}
}

func TestAllSectorSeries_OnePerSector(t *testing.T) {
	t.Parallel()

	d := testDataset()
	all := d.AllSectorSeries(model.MetricWear, "Astana")
	if len(all) != len(d.Sectors(model.MetricWear)) {
		t.Fatalf("series want=%d got=%d", len(d.Sectors(model.MetricWear)), len(all))
	}
	for i, s := range all {
		if s.Sector != d.Sectors(model.MetricWear)[i] {
			t.Fatalf("series %d sector=%s", i, s.Sector)
		}
		single := d.TimeSeries(model.MetricWear, "Astana", s.Sector)
		if len(single.Points) != len(s.Points) {
			t.Fatalf("%s length mismatch: all=%d single=%d", s.Sector, len(s.Points), len(single.Points))
		}
	}
}

func TestDataset_SelectionSets(t *testing.T) {
	t.Parallel()

	d := testDataset()

	regions := d.Regions()
	want := []string{"Aktobe", "Almaty", "Astana"}
	if len(regions) != len(want) {
		t.Fatalf("regions=%v", regions)
	}
	for i := range want {
		if regions[i] != want[i] {
			t.Fatalf("regions=%v", regions)
		}
	}
	if !d.HasRegion("Aktobe") || d.HasRegion("Atyrau") {
		t.Fatalf("HasRegion mismatch")
	}
	if !d.HasSector(model.MetricSpending, "Energy") || d.HasSector(model.MetricSpending, "Water") {
		t.Fatalf("HasSector mismatch")
	}

	industries := d.Industries()
	if len(industries) != 2 || industries[0] != "heat" || industries[1] != "roads" {
		t.Fatalf("industries=%v", industries)
	}
	if !d.HasIndustry("roads") || d.HasIndustry("water") {
		t.Fatalf("HasIndustry mismatch")
	}
	if len(d.IndustryRankings("roads")) != 1 {
		t.Fatalf("roads rankings=%v", d.IndustryRankings("roads"))
	}

	stats := d.Stats()
	if stats.WearRows != 4 || stats.SpendingRows != 1 || stats.RankingRecords != 2 || stats.Geometries != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
