package mapview

// HighlightFill 鼠标悬停时的填充色
const HighlightFill = "#1f78b4"

// Style 地区要素的绘制样式
type Style struct {
	FillColor   string  `json:"fillColor"`
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	FillOpacity float64 `json:"fillOpacity"`
}

// DefaultStyle 按优先级着色
func DefaultStyle(priority int, scale ColorScale) Style {
	return Style{
		FillColor:   scale.Color(priority),
		Color:       "black",
		Weight:      0.5,
		FillOpacity: 0.9,
	}
}

// HighlightStyle 高亮样式，与优先级无关
func HighlightStyle() Style {
	return Style{
		FillColor:   HighlightFill,
		Color:       "black",
		Weight:      0.5,
		FillOpacity: 0.9,
	}
}
