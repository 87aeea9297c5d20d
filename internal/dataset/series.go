package dataset

import (
	"sort"

	"infradash/internal/model"
)

// TimeSeries 某地区某部门的时间序列，按年份升序
// 无匹配行时返回空序列
func (d *Dataset) TimeSeries(kind model.MetricKind, region, sector string) model.Series {
	t, ok := d.tables[kind]
	if !ok {
		return model.Series{Sector: sector, Points: []model.Point{}}
	}
	return TimeSeries(t, region, sector)
}

// AllSectorSeries 某地区所有部门的时间序列，按部门列顺序
func (d *Dataset) AllSectorSeries(kind model.MetricKind, region string) []model.Series {
	t, ok := d.tables[kind]
	if !ok {
		return []model.Series{}
	}
	return AllSectorSeries(t, region)
}

// TimeSeries 从表中筛选 region 的行并投影到 (year, value[sector])
// 缺失值的年份被跳过
func TimeSeries(t *model.Table, region, sector string) model.Series {
	return project(regionRows(t, region), sector)
}

// AllSectorSeries 对每个部门分别投影
func AllSectorSeries(t *model.Table, region string) []model.Series {
	rows := regionRows(t, region)
	out := make([]model.Series, 0, len(t.Sectors))
	for _, sector := range t.Sectors {
		out = append(out, project(rows, sector))
	}
	return out
}

func regionRows(t *model.Table, region string) []model.MetricRow {
	var rows []model.MetricRow
	for _, row := range t.Rows {
		if row.Region == region {
			rows = append(rows, row)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	return rows
}

func project(rows []model.MetricRow, sector string) model.Series {
	points := make([]model.Point, 0, len(rows))
	for _, row := range rows {
		v, ok := row.Value(sector)
		if !ok {
			continue
		}
		points = append(points, model.Point{Year: row.Year, Value: v})
	}
	return model.Series{Sector: sector, Points: points}
}
