package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"infradash/internal/dataset"
	"infradash/internal/store"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	LoadID      string          `json:"loadId"`
	MetricsFile string          `json:"metricsFile"`
	GeoJSONFile string          `json:"geojsonFile"`
	RankingsDir string          `json:"rankingsDir"`
	Stats       dataset.Stats   `json:"stats"`
	LoadLogs    []store.LoadLog `json:"loadLogs"`
}

// GetStatus 获取加载状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		LoadID:      h.loadID,
		MetricsFile: h.sources.MetricsFile,
		GeoJSONFile: h.sources.GeoJSONFile,
		RankingsDir: h.sources.RankingsDir,
		Stats:       h.data.Stats(),
		LoadLogs:    []store.LoadLog{},
	}

	if h.store != nil {
		logs, err := h.store.LatestLoadLogs()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if logs != nil {
			resp.LoadLogs = logs
		}
	}

	c.JSON(http.StatusOK, resp)
}
