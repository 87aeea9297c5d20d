package model

import "github.com/paulmach/orb"

// RegionGeometry 行政区边界
type RegionGeometry struct {
	ShapeName  string         `json:"shapeName"`
	Geometry   orb.Geometry   `json:"-"`
	Properties map[string]any `json:"properties,omitempty"`
}

// JoinedRegion 边界 + 所选行业下的优先级
type JoinedRegion struct {
	RegionGeometry
	Priority int `json:"priority"`
}
