package parser

// 表头固定列
const (
	ColumnYear   = "year"
	ColumnRegion = "region"
)

// MetricsOptions 指标表加载选项
type MetricsOptions struct {
	Sheet string // xlsx 工作表名，为空时取第一个
}

// header 表头解析结果
type header struct {
	yearIdx   int
	regionIdx int
	sectors   []string
	sectorIdx []int
}
