package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"infradash/internal/model"
)

// GetSeries 时间序列；带 sector 时返回单个序列，否则返回全部部门
// GET /api/series?kind=wear|spending&region=R[&sector=S]
func (h *Handler) GetSeries(c *gin.Context) {
	kind, ok := model.ParseMetricKind(c.DefaultQuery("kind", string(model.MetricWear)))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "非法指标类型"})
		return
	}

	sel, err := h.parseSelection(c, kind, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if sel.Sector != "" {
		c.JSON(http.StatusOK, gin.H{
			"kind":   kind,
			"region": sel.Region,
			"series": []model.Series{h.data.TimeSeries(kind, sel.Region, sel.Sector)},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"kind":   kind,
		"region": sel.Region,
		"series": h.data.AllSectorSeries(kind, sel.Region),
	})
}
