package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	spaceRe     = regexp.MustCompile(`\s+`)
	thousandsRe = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`)
)

// NormalizeColumnName 规范化列名：去掉首尾空白和换行，压缩内部空白
func NormalizeColumnName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, "\r", "")
	name = strings.ReplaceAll(name, "\t", " ")
	return spaceRe.ReplaceAllString(name, " ")
}

// parseYear 解析年份；兼容 "2000" / "2000.0"
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return int(f), nil
}

// parseValue 解析数值单元格；空单元格及 NaN/Inf 返回 ok=false
// 逗号只作为千分位接受，"1,5" 之类的小数逗号视为非法
func parseValue(s string) (v float64, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	s = strings.ReplaceAll(s, "％", "%")
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if strings.Contains(s, ",") {
		if !thousandsRe.MatchString(s) {
			return 0, false, fmt.Errorf("invalid number %q", s)
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid number %q", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, nil
	}
	return f, true, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
