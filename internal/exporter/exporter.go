package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"infradash/internal/chart"
)

// SheetName 导出工作表名
const SheetName = "data"

// Build 将图表数据写入新工作簿：第一列为年份，之后每个序列一列
// 某序列缺少某年份时单元格留空
func Build(spec chart.Spec) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := make([]interface{}, 0, len(spec.Series)+1)
	headers = append(headers, "year")
	for _, s := range spec.Series {
		headers = append(headers, s.Sector)
	}
	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	lookup := make([]map[int]float64, len(spec.Series))
	for i, s := range spec.Series {
		lookup[i] = make(map[int]float64, len(s.Points))
		for _, p := range s.Points {
			lookup[i][p.Year] = p.Value
		}
	}

	for r, year := range spec.Years() {
		row := r + 2
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(SheetName, cell, year); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}
		for i := range spec.Series {
			v, ok := lookup[i][year]
			if !ok {
				continue
			}
			cell, _ = excelize.CoordinatesToCellName(i+2, row)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	last, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetColWidth(SheetName, "A", last, 16); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("set column width: %w", err)
	}

	_ = f.SetDocProps(&excelize.DocProperties{Title: spec.Title})
	return f, nil
}

// WriteSeries 构建工作簿并写入 w
func WriteSeries(w io.Writer, spec chart.Spec) error {
	f, err := Build(spec)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Filename 下载文件名
func Filename(spec chart.Spec) string {
	parts := []string{string(spec.Kind), spec.Region}
	if spec.Sector != "" {
		parts = append(parts, spec.Sector)
	}
	name := strings.Join(parts, "_")
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
	return name + ".xlsx"
}
