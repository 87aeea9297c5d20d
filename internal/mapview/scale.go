package mapview

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// YlOrRd 9 级黄-橙-红色带
var YlOrRd = []string{
	"#ffffcc", "#ffeda0", "#fed976", "#feb24c", "#fd8d3c",
	"#fc4e2a", "#e31a1c", "#bd0026", "#800026",
}

var ramp = mustParseRamp(YlOrRd)

func mustParseRamp(hexes []string) []color.RGBA {
	out := make([]color.RGBA, len(hexes))
	for i, hex := range hexes {
		c, err := ParseHex(hex)
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}

// ColorScale 优先级 -> 颜色的线性映射
// Min == Max 时对所有输入返回同一颜色（色带中点）
type ColorScale struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// LegendStop 图例刻度
type LegendStop struct {
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// NewColorScale 在 [min, max] 上构建色带；min > max 时交换
func NewColorScale(min, max int) ColorScale {
	if min > max {
		min, max = max, min
	}
	return ColorScale{Min: min, Max: max}
}

// ScaleFor 由一组优先级推导色带；空输入得到 [0, 0] 的退化色带
func ScaleFor(priorities []int) ColorScale {
	if len(priorities) == 0 {
		return NewColorScale(0, 0)
	}
	min, max := priorities[0], priorities[0]
	for _, p := range priorities[1:] {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return NewColorScale(min, max)
}

// Degenerate 是否只有一个取值
func (s ColorScale) Degenerate() bool {
	return s.Min == s.Max
}

// Color 返回优先级对应颜色（#rrggbb），超出范围的值被截断
func (s ColorScale) Color(priority int) string {
	return s.ColorAt(float64(priority))
}

// ColorAt 同 Color，接受浮点输入（用于图例）
func (s ColorScale) ColorAt(v float64) string {
	return Hex(s.RGBA(v))
}

// RGBA 返回插值后的颜色
func (s ColorScale) RGBA(v float64) color.RGBA {
	if s.Degenerate() {
		return sample(0.5)
	}
	t := (v - float64(s.Min)) / float64(s.Max-s.Min)
	return sample(t)
}

// sample t ∈ [0,1] 在色带上线性插值
func sample(t float64) color.RGBA {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	n := len(ramp) - 1
	pos := t * float64(n)
	i := int(math.Floor(pos))
	if i >= n {
		return ramp[n]
	}
	frac := pos - float64(i)
	a, b := ramp[i], ramp[i+1]
	return color.RGBA{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Legend 返回 n 个等距刻度（n < 2 时按 2 处理）
func (s ColorScale) Legend(n int) []LegendStop {
	if s.Degenerate() {
		return []LegendStop{{Value: float64(s.Min), Color: s.Color(s.Min)}}
	}
	if n < 2 {
		n = 2
	}
	stops := make([]LegendStop, n)
	step := float64(s.Max-s.Min) / float64(n-1)
	for i := range stops {
		v := float64(s.Min) + step*float64(i)
		stops[i] = LegendStop{Value: v, Color: s.ColorAt(v)}
	}
	return stops
}

// ParseHex 解析 #rrggbb
func ParseHex(hex string) (color.RGBA, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", hex)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Hex 格式化为 #rrggbb
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
