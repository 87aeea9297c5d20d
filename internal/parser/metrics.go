package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"infradash/internal/model"
)

// LoadMetrics 加载指标表，按扩展名选择 xlsx 或 csv
func LoadMetrics(path string, kind model.MetricKind, opts MetricsOptions) (*model.Table, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readWorkbookRows(path, opts.Sheet)
	case ".csv":
		rows, err = readCSVRows(path)
	default:
		return nil, fmt.Errorf("unsupported metrics file type: %s", path)
	}
	if err != nil {
		return nil, err
	}

	table, err := ParseRows(rows, kind)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	table.Source = path
	return table, nil
}

// LoadWorkbookTable 从已打开的工作簿中解析指标表
func LoadWorkbookTable(file *excelize.File, sheet string, kind model.MetricKind) (*model.Table, error) {
	rows, err := sheetRows(file, sheet)
	if err != nil {
		return nil, err
	}
	return ParseRows(rows, kind)
}

func readWorkbookRows(path, sheet string) ([][]string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer file.Close()
	return sheetRows(file, sheet)
}

func sheetRows(file *excelize.File, sheet string) ([][]string, error) {
	if sheet == "" {
		sheets := file.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}

// ParseRows 将二维单元格解析为指标表
// 第一行为表头，必须包含 year 和 region 列，其余列均视为部门列
func ParseRows(rows [][]string, kind model.MetricKind) (*model.Table, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty sheet")
	}

	h, err := parseHeader(rows[0])
	if err != nil {
		return nil, err
	}

	table := &model.Table{
		Kind:    kind,
		Sectors: h.sectors,
		Rows:    make([]model.MetricRow, 0, len(rows)-1),
	}

	for i, row := range rows[1:] {
		rowNo := i + 2
		if isBlankRow(row) {
			continue
		}

		year, err := parseYear(cell(row, h.yearIdx))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNo, err)
		}
		region := strings.TrimSpace(cell(row, h.regionIdx))
		if region == "" {
			return nil, fmt.Errorf("row %d: empty region", rowNo)
		}

		values := make(map[string]float64, len(h.sectors))
		for j, sector := range h.sectors {
			v, ok, err := parseValue(cell(row, h.sectorIdx[j]))
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", rowNo, sector, err)
			}
			if ok {
				values[sector] = v
			}
		}

		table.Rows = append(table.Rows, model.MetricRow{
			Region: region,
			Year:   year,
			Values: values,
		})
	}

	return table, nil
}

func parseHeader(row []string) (header, error) {
	h := header{yearIdx: -1, regionIdx: -1}
	seen := make(map[string]struct{}, len(row))

	for i, raw := range row {
		name := NormalizeColumnName(raw)
		switch strings.ToLower(name) {
		case ColumnYear:
			if h.yearIdx >= 0 {
				return h, fmt.Errorf("duplicate column %q", ColumnYear)
			}
			h.yearIdx = i
			continue
		case ColumnRegion:
			if h.regionIdx >= 0 {
				return h, fmt.Errorf("duplicate column %q", ColumnRegion)
			}
			h.regionIdx = i
			continue
		}
		// 无表头的列按位置命名，仍作为一个部门保留
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if _, dup := seen[name]; dup {
			return h, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = struct{}{}
		h.sectors = append(h.sectors, name)
		h.sectorIdx = append(h.sectorIdx, i)
	}

	if h.yearIdx < 0 {
		return h, fmt.Errorf("missing %q column", ColumnYear)
	}
	if h.regionIdx < 0 {
		return h, fmt.Errorf("missing %q column", ColumnRegion)
	}
	return h, nil
}
