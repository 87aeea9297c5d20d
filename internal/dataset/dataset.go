// Package dataset 持有启动时加载的全部只读数据，并提供按地区/部门的查询。
package dataset

import (
	"sort"

	"infradash/internal/model"
	"infradash/internal/ranking"
)

// Dataset 启动时构建一次，之后只读，可在多个请求间共享
type Dataset struct {
	tables     map[model.MetricKind]*model.Table
	rankings   map[model.Industry][]model.RankingRecord
	flat       []model.RankingRecord
	industries []model.Industry
	geometries []model.RegionGeometry
	regions    []string
}

// Sources 启动时加载的数据源
type Sources struct {
	MetricsFile   string
	WearSheet     string
	SpendingSheet string
	GeoJSONFile   string
	RankingsDir   string
	SkipInvalid   bool
}

// New 由已加载的数据构建 Dataset
func New(wear, spending *model.Table, geometries []model.RegionGeometry, rankings map[model.Industry][]model.RankingRecord) *Dataset {
	if rankings == nil {
		rankings = map[model.Industry][]model.RankingRecord{}
	}
	d := &Dataset{
		tables:     make(map[model.MetricKind]*model.Table, 2),
		rankings:   rankings,
		flat:       ranking.Flatten(rankings),
		industries: ranking.Industries(rankings),
		geometries: geometries,
	}
	if wear != nil {
		d.tables[model.MetricWear] = wear
	}
	if spending != nil {
		d.tables[model.MetricSpending] = spending
	}
	d.regions = d.collectRegions()
	return d
}

// collectRegions 两张表中出现过的地区，按名称排序
func (d *Dataset) collectRegions() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, kind := range []model.MetricKind{model.MetricWear, model.MetricSpending} {
		t, ok := d.tables[kind]
		if !ok {
			continue
		}
		for _, r := range t.Regions() {
			if _, dup := seen[r]; dup {
				continue
			}
			seen[r] = struct{}{}
			out = append(out, r)
		}
	}
	sort.Strings(out)
	return out
}

// Table 获取某类指标表
func (d *Dataset) Table(kind model.MetricKind) (*model.Table, bool) {
	t, ok := d.tables[kind]
	return t, ok
}

// Regions 可选地区
func (d *Dataset) Regions() []string {
	return d.regions
}

// Sectors 某类指标的部门列
func (d *Dataset) Sectors(kind model.MetricKind) []string {
	if t, ok := d.tables[kind]; ok {
		return t.Sectors
	}
	return nil
}

// Industries 可选行业
func (d *Dataset) Industries() []model.Industry {
	return d.industries
}

// Rankings 全部排名记录（按行业名顺序）
func (d *Dataset) Rankings() []model.RankingRecord {
	return d.flat
}

// IndustryRankings 某行业的排名记录
func (d *Dataset) IndustryRankings(industry model.Industry) []model.RankingRecord {
	return d.rankings[industry]
}

// Geometries 地区边界
func (d *Dataset) Geometries() []model.RegionGeometry {
	return d.geometries
}

// HasRegion 地区是否在可选集合内
func (d *Dataset) HasRegion(region string) bool {
	i := sort.SearchStrings(d.regions, region)
	return i < len(d.regions) && d.regions[i] == region
}

// HasSector 部门是否在可选集合内
func (d *Dataset) HasSector(kind model.MetricKind, sector string) bool {
	t, ok := d.tables[kind]
	return ok && t.HasSector(sector)
}

// HasIndustry 行业是否在可选集合内
func (d *Dataset) HasIndustry(industry model.Industry) bool {
	_, ok := d.rankings[industry]
	return ok
}

// Stats 加载统计
type Stats struct {
	WearRows       int `json:"wearRows"`
	SpendingRows   int `json:"spendingRows"`
	Regions        int `json:"regions"`
	Geometries     int `json:"geometries"`
	Industries     int `json:"industries"`
	RankingRecords int `json:"rankingRecords"`
}

// Stats 返回加载统计
func (d *Dataset) Stats() Stats {
	s := Stats{
		Regions:        len(d.regions),
		Geometries:     len(d.geometries),
		Industries:     len(d.industries),
		RankingRecords: len(d.flat),
	}
	if t, ok := d.tables[model.MetricWear]; ok {
		s.WearRows = len(t.Rows)
	}
	if t, ok := d.tables[model.MetricSpending]; ok {
		s.SpendingRows = len(t.Rows)
	}
	return s
}
