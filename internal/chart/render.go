package chart

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Format 图片格式
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ContentType MIME 类型
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// ParseFormat 解析图片格式，默认 png
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "", "png":
		return PNG, true
	case "svg":
		return SVG, true
	default:
		return "", false
	}
}

// 默认尺寸
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

// Plot 将 Spec 转为 gonum/plot 图（折线 + 数据点）
func Plot(spec Spec) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = spec.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.Legend.Top = true

	p.Add(plotter.NewGrid())

	for i, series := range spec.Series {
		if len(series.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(series.Points))
		for j, pt := range series.Points {
			xys[j].X = float64(pt.Year)
			xys[j].Y = pt.Value
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", series.Sector, err)
		}
		c := plotutil.Color(i)
		line.Color = c
		line.Width = vg.Points(2)
		points.Color = c
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(3)

		p.Add(line, points)
		p.Legend.Add(series.Sector, line, points)
	}

	// 固定轴范围在 Add 之后设置，避免被数据范围覆盖
	if spec.YRange != nil {
		p.Y.Min = spec.YRange[0]
		p.Y.Max = spec.YRange[1]
	}
	p.X.Min = float64(spec.XRange[0])
	p.X.Max = float64(spec.XRange[1])

	return p, nil
}

// Render 渲染为图片并写入 w
func Render(w io.Writer, spec Spec, format Format, width, height vg.Length) error {
	p, err := Plot(spec)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, string(format))
	if err != nil {
		return fmt.Errorf("create %s writer: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}
