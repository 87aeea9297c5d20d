// Package chart 构建仪表盘的四类折线图，并可直接渲染为图片。
package chart

import (
	"fmt"
	"sort"

	"infradash/internal/model"
)

// Kind 图表类型
type Kind string

const (
	SectorWear        Kind = "sector-wear"         // 某地区某部门的磨损程度
	AllSectorWear     Kind = "all-sector-wear"     // 某地区所有部门的磨损程度
	SectorSpending    Kind = "sector-spending"     // 某地区某部门的支出
	AllSectorSpending Kind = "all-sector-spending" // 某地区所有部门的支出
)

// Kinds 全部图表类型
var Kinds = []Kind{SectorWear, AllSectorWear, SectorSpending, AllSectorSpending}

// ParseKind 解析图表类型
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Metric 图表对应的指标表
func (k Kind) Metric() model.MetricKind {
	switch k {
	case SectorSpending, AllSectorSpending:
		return model.MetricSpending
	default:
		return model.MetricWear
	}
}

// NeedsSector 是否需要选择部门
func (k Kind) NeedsSector() bool {
	return k == SectorWear || k == SectorSpending
}

// WearRange 磨损类图表的纵轴显示范围，仅用于显示，不校验数据
var WearRange = [2]float64{0, 100}

func wearRange() *[2]float64 {
	r := WearRange
	return &r
}

// Spec 可直接交给前端或渲染器的图表描述
type Spec struct {
	Kind        Kind             `json:"kind"`
	Metric      model.MetricKind `json:"metric"`
	Region      string           `json:"region"`
	Sector      string           `json:"sector,omitempty"`
	Title       string           `json:"title"`
	XLabel      string           `json:"xLabel"`
	YLabel      string           `json:"yLabel"`
	LegendTitle string           `json:"legendTitle,omitempty"`
	YRange      *[2]float64      `json:"yRange,omitempty"`
	XRange      [2]int           `json:"xRange"`
	Series      []model.Series   `json:"series"`
}

// SeriesSource 时间序列来源
type SeriesSource interface {
	TimeSeries(kind model.MetricKind, region, sector string) model.Series
	AllSectorSeries(kind model.MetricKind, region string) []model.Series
}

// Build 构建图表；单部门图表要求 sector 非空
func Build(src SeriesSource, kind Kind, region, sector string) (Spec, error) {
	if kind.NeedsSector() && sector == "" {
		return Spec{}, fmt.Errorf("chart %s requires a sector", kind)
	}

	spec := Spec{
		Kind:   kind,
		Metric: kind.Metric(),
		Region: region,
		XLabel: "Year",
		XRange: [2]int{model.FirstYear, model.LastYear},
	}
	window := fmt.Sprintf("(%d-%d)", model.FirstYear, model.LastYear)

	switch kind {
	case SectorWear:
		spec.Sector = sector
		spec.Title = fmt.Sprintf("Wear level of %s in %s %s", sector, region, window)
		spec.YLabel = "Wear level"
		spec.YRange = wearRange()
		spec.Series = []model.Series{src.TimeSeries(model.MetricWear, region, sector)}
	case AllSectorWear:
		spec.Title = fmt.Sprintf("Wear level by sector in %s %s", region, window)
		spec.YLabel = "Wear level"
		spec.YRange = wearRange()
		spec.LegendTitle = "Sectors"
		spec.Series = src.AllSectorSeries(model.MetricWear, region)
	case SectorSpending:
		spec.Sector = sector
		spec.Title = fmt.Sprintf("Spending in %s - %s", region, sector)
		spec.YLabel = "Spending"
		spec.Series = []model.Series{src.TimeSeries(model.MetricSpending, region, sector)}
	case AllSectorSpending:
		spec.Title = fmt.Sprintf("Spending by sector in %s", region)
		spec.YLabel = "Spending"
		spec.LegendTitle = "Sectors"
		spec.Series = src.AllSectorSeries(model.MetricSpending, region)
	default:
		return Spec{}, fmt.Errorf("unknown chart kind %q", kind)
	}

	if spec.Series == nil {
		spec.Series = []model.Series{}
	}
	return spec, nil
}

// Years 所有序列出现过的年份（升序去重）
func (s Spec) Years() []int {
	seen := make(map[int]struct{})
	var years []int
	for _, series := range s.Series {
		for _, p := range series.Points {
			if _, ok := seen[p.Year]; ok {
				continue
			}
			seen[p.Year] = struct{}{}
			years = append(years, p.Year)
		}
	}
	sort.Ints(years)
	return years
}
