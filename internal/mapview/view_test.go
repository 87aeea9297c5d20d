package mapview

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infradash/internal/model"
)

func square(x, y float64) orb.Polygon {
	return orb.Polygon{orb.Ring{{x, y}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}, {x, y}}}
}

func geometries() []model.RegionGeometry {
	return []model.RegionGeometry{
		{ShapeName: "X", Geometry: square(0, 0)},
		{ShapeName: "Y", Geometry: square(1, 0)},
		{ShapeName: "Z", Geometry: square(2, 0)},
	}
}

func TestBuildView_InnerJoin(t *testing.T) {
	t.Parallel()

	rankings := []model.RankingRecord{
		{Region: "X", Priority: 5, Industry: "roads"},
		{Region: "Y", Priority: 9, Industry: "roads"},
		{Region: "W", Priority: 1, Industry: "roads"}, // 没有边界
		{Region: "Z", Priority: 3, Industry: "energy"},
	}

	v := BuildView("roads", rankings, geometries())
	require.Len(t, v.Regions, 2)
	assert.Equal(t, "X", v.Regions[0].ShapeName)
	assert.Equal(t, 5, v.Regions[0].Priority)
	assert.Equal(t, "Y", v.Regions[1].ShapeName)
	assert.Equal(t, 9, v.Regions[1].Priority)

	// 范围只取连接后的优先级，不包含 W 的 1
	assert.Equal(t, 5, v.Scale.Min)
	assert.Equal(t, 9, v.Scale.Max)
}

func TestBuildView_UnknownIndustryIsEmpty(t *testing.T) {
	t.Parallel()

	v := BuildView("water", []model.RankingRecord{{Region: "X", Priority: 1, Industry: "roads"}}, geometries())
	assert.True(t, v.Empty())
	assert.True(t, v.Scale.Degenerate())
	assert.NotEmpty(t, v.Scale.Color(1))
	assert.Empty(t, v.FeatureCollection().Features)
}

func TestBuildView_DuplicateRankingKeepsBoth(t *testing.T) {
	t.Parallel()

	rankings := []model.RankingRecord{
		{Region: "X", Priority: 1, Industry: "roads"},
		{Region: "X", Priority: 4, Industry: "roads"},
	}
	v := BuildView("roads", rankings, geometries())
	require.Len(t, v.Regions, 2)
	assert.Equal(t, 1, v.Scale.Min)
	assert.Equal(t, 4, v.Scale.Max)
}

func TestBuildView_SinglePriorityUsesConstantColor(t *testing.T) {
	t.Parallel()

	rankings := []model.RankingRecord{
		{Region: "X", Priority: 2, Industry: "roads"},
		{Region: "Z", Priority: 2, Industry: "roads"},
	}
	v := BuildView("roads", rankings, geometries())
	require.Len(t, v.Regions, 2)
	assert.True(t, v.Scale.Degenerate())
	assert.Equal(t, DefaultStyle(2, v.Scale).FillColor, v.Scale.Color(99))
}

func TestFeatureCollection_CarriesStyles(t *testing.T) {
	t.Parallel()

	rankings := []model.RankingRecord{
		{Region: "X", Priority: 1, Industry: "roads"},
		{Region: "Y", Priority: 10, Industry: "roads"},
	}
	v := BuildView("roads", rankings, geometries())
	fc := v.FeatureCollection()
	require.Len(t, fc.Features, 2)

	data, err := json.Marshal(fc)
	require.NoError(t, err)

	var decoded struct {
		Features []struct {
			Properties struct {
				ShapeName      string `json:"shapeName"`
				Priority       int    `json:"priority"`
				Style          Style  `json:"style"`
				HighlightStyle Style  `json:"highlightStyle"`
			} `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	first := decoded.Features[0].Properties
	assert.Equal(t, "X", first.ShapeName)
	assert.Equal(t, YlOrRd[0], first.Style.FillColor)
	assert.Equal(t, "black", first.Style.Color)
	assert.Equal(t, 0.5, first.Style.Weight)
	assert.Equal(t, 0.9, first.Style.FillOpacity)
	assert.Equal(t, HighlightFill, first.HighlightStyle.FillColor)

	assert.Equal(t, YlOrRd[len(YlOrRd)-1], decoded.Features[1].Properties.Style.FillColor)
}
