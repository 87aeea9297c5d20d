// Package mapview 将行业排名与地区边界连接，生成地图所需的着色视图。
package mapview

import (
	"github.com/paulmach/orb/geojson"

	"infradash/internal/geo"
	"infradash/internal/model"
)

// View 某行业的地图视图
type View struct {
	Industry model.Industry       `json:"industry"`
	Regions  []model.JoinedRegion `json:"regions"`
	Scale    ColorScale           `json:"scale"`
}

// BuildView 过滤出该行业的排名，并与边界做内连接（shapeName == region）
// 没有排名的地区、没有边界的排名都不进入视图；结果按边界顺序排列
func BuildView(industry model.Industry, rankings []model.RankingRecord, geometries []model.RegionGeometry) View {
	byRegion := make(map[string][]int)
	for _, r := range rankings {
		if r.Industry != industry {
			continue
		}
		byRegion[r.Region] = append(byRegion[r.Region], r.Priority)
	}

	joined := make([]model.JoinedRegion, 0, len(byRegion))
	priorities := make([]int, 0, len(byRegion))
	for _, g := range geometries {
		for _, p := range byRegion[g.ShapeName] {
			joined = append(joined, model.JoinedRegion{RegionGeometry: g, Priority: p})
			priorities = append(priorities, p)
		}
	}

	return View{
		Industry: industry,
		Regions:  joined,
		Scale:    ScaleFor(priorities),
	}
}

// Empty 视图是否为空
func (v View) Empty() bool {
	return len(v.Regions) == 0
}

// FeatureCollection 输出带样式属性的 GeoJSON
func (v View) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	highlight := HighlightStyle()
	for _, r := range v.Regions {
		f := geojson.NewFeature(r.Geometry)
		for k, val := range r.Properties {
			f.Properties[k] = val
		}
		f.Properties[geo.ShapeNameProperty] = r.ShapeName
		f.Properties["priority"] = r.Priority
		f.Properties["industry"] = string(v.Industry)
		f.Properties["style"] = DefaultStyle(r.Priority, v.Scale)
		f.Properties["highlightStyle"] = highlight
		fc.Append(f)
	}
	return fc
}
