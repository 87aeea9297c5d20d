package model

// MetricKind 指标类型
type MetricKind string

const (
	MetricWear     MetricKind = "wear"     // 磨损程度 (0-100)
	MetricSpending MetricKind = "spending" // 支出
)

// ParseMetricKind 解析指标类型
func ParseMetricKind(s string) (MetricKind, bool) {
	switch MetricKind(s) {
	case MetricWear:
		return MetricWear, true
	case MetricSpending:
		return MetricSpending, true
	default:
		return "", false
	}
}

// 固定观测窗口
const (
	FirstYear = 2000
	LastYear  = 2024
)

// MetricRow 某地区某一年的观测值
type MetricRow struct {
	Region string             `json:"region"`
	Year   int                `json:"year"`
	Values map[string]float64 `json:"values"` // 空单元格不出现在 map 中
}

// Value 获取某部门的值
func (r MetricRow) Value(sector string) (float64, bool) {
	v, ok := r.Values[sector]
	return v, ok
}

// Table 加载后的指标表，只读
type Table struct {
	Kind    MetricKind  `json:"kind"`
	Source  string      `json:"source"`
	Sectors []string    `json:"sectors"` // 除 year/region 外的所有列，保持表头顺序
	Rows    []MetricRow `json:"-"`
}

// Regions 返回出现过的地区（按首次出现顺序去重）
func (t *Table) Regions() []string {
	seen := make(map[string]struct{}, len(t.Rows))
	out := make([]string, 0)
	for _, row := range t.Rows {
		if _, ok := seen[row.Region]; ok {
			continue
		}
		seen[row.Region] = struct{}{}
		out = append(out, row.Region)
	}
	return out
}

// HasSector 判断部门列是否存在
func (t *Table) HasSector(sector string) bool {
	for _, s := range t.Sectors {
		if s == sector {
			return true
		}
	}
	return false
}

// Point 时间序列上的一个点
type Point struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Series 单个部门的时间序列
type Series struct {
	Sector string  `json:"sector"`
	Points []Point `json:"points"`
}
