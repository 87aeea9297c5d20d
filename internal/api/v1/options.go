package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"infradash/internal/chart"
	"infradash/internal/model"
)

type optionsResponse struct {
	Regions         []string         `json:"regions"`
	WearSectors     []string         `json:"wearSectors"`
	SpendingSectors []string         `json:"spendingSectors"`
	Industries      []model.Industry `json:"industries"`
	Charts          []chart.Kind     `json:"charts"`
	Years           [2]int           `json:"years"`
}

// GetOptions 下拉框可选值
// GET /api/options
func (h *Handler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, optionsResponse{
		Regions:         nonNil(h.data.Regions()),
		WearSectors:     nonNil(h.data.Sectors(model.MetricWear)),
		SpendingSectors: nonNil(h.data.Sectors(model.MetricSpending)),
		Industries:      nonNil(h.data.Industries()),
		Charts:          chart.Kinds,
		Years:           [2]int{model.FirstYear, model.LastYear},
	})
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
