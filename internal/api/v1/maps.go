package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb/geojson"

	"infradash/internal/mapview"
	"infradash/internal/model"
)

// legendStops 图例刻度数
const legendStops = 9

type mapResponse struct {
	Industry model.Industry             `json:"industry"`
	Center   [2]float64                 `json:"center"`
	Zoom     int                        `json:"zoom"`
	Min      int                        `json:"min"`
	Max      int                        `json:"max"`
	Legend   []mapview.LegendStop       `json:"legend"`
	Features *geojson.FeatureCollection `json:"features"`
}

func (h *Handler) parseIndustry(c *gin.Context) (model.Industry, bool) {
	industry := model.Industry(c.Query("industry"))
	if industry == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 industry 参数"})
		return "", false
	}
	if !h.data.HasIndustry(industry) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未知行业: " + string(industry)})
		return "", false
	}
	return industry, true
}

// ListRankings 某行业的排名记录
// GET /api/rankings?industry=I
func (h *Handler) ListRankings(c *gin.Context) {
	industry, ok := h.parseIndustry(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"industry": industry,
		"items":    nonNil(h.data.IndustryRankings(industry)),
	})
}

// GetMap 行业优先级地图：边界与排名内连接后着色
// GET /api/map?industry=I
func (h *Handler) GetMap(c *gin.Context) {
	industry, ok := h.parseIndustry(c)
	if !ok {
		return
	}

	view := mapview.BuildView(industry, h.data.Rankings(), h.data.Geometries())
	c.JSON(http.StatusOK, mapResponse{
		Industry: industry,
		Center:   [2]float64{h.mapCfg.CenterLat, h.mapCfg.CenterLon},
		Zoom:     h.mapCfg.Zoom,
		Min:      view.Scale.Min,
		Max:      view.Scale.Max,
		Legend:   view.Scale.Legend(legendStops),
		Features: view.FeatureCollection(),
	})
}
