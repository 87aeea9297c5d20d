package geo

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"infradash/internal/model"
)

// ShapeNameProperty 地区名属性，与排名/指标表中的 region 对应
const ShapeNameProperty = "shapeName"

// LoadFile 读取 GeoJSON FeatureCollection
func LoadFile(path string) ([]model.RegionGeometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geojson: %w", err)
	}
	regions, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return regions, nil
}

// Parse 解析 GeoJSON
// 缺少几何或 shapeName 的 Feature 无法参与地图连接，记录日志后跳过
func Parse(data []byte) ([]model.RegionGeometry, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	regions := make([]model.RegionGeometry, 0, len(fc.Features))
	for i, f := range fc.Features {
		if f.Geometry == nil {
			log.Printf("跳过 feature %d: 缺少几何", i)
			continue
		}
		name := f.Properties.MustString(ShapeNameProperty, "")
		if name == "" {
			log.Printf("跳过 feature %d: 缺少 %s 属性", i, ShapeNameProperty)
			continue
		}
		regions = append(regions, model.RegionGeometry{
			ShapeName:  name,
			Geometry:   f.Geometry,
			Properties: map[string]any(f.Properties.Clone()),
		})
	}
	if len(regions) == 0 {
		log.Printf("GeoJSON 中没有可用的地区边界，地图将为空")
	}
	return regions, nil
}

// Bounds 所有地区的外包框
func Bounds(regions []model.RegionGeometry) orb.Bound {
	var b orb.Bound
	for i, r := range regions {
		if i == 0 {
			b = r.Geometry.Bound()
			continue
		}
		b = b.Union(r.Geometry.Bound())
	}
	return b
}

// Names 地区名列表（保持文件顺序）
func Names(regions []model.RegionGeometry) []string {
	out := make([]string, 0, len(regions))
	for _, r := range regions {
		out = append(out, r.ShapeName)
	}
	return out
}
