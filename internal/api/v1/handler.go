package v1

import (
	"github.com/gin-gonic/gin"

	"infradash/internal/config"
	"infradash/internal/dataset"
	"infradash/internal/store"
)

// Handler V1 API 处理器
type Handler struct {
	data    *dataset.Dataset
	store   *store.Store // 可为 nil
	mapCfg  config.MapConfig
	sources dataset.Sources
	loadID  string
}

// Options 处理器选项
type Options struct {
	Store   *store.Store
	Map     config.MapConfig
	Sources dataset.Sources
	LoadID  string
}

// NewHandler 创建 V1 API 处理器
func NewHandler(data *dataset.Dataset, opts Options) *Handler {
	return &Handler{
		data:    data,
		store:   opts.Store,
		mapCfg:  opts.Map,
		sources: opts.Sources,
		loadID:  opts.LoadID,
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	// 下拉选项
	router.GET("/options", h.GetOptions)

	// 时间序列
	router.GET("/series", h.GetSeries)

	// 图表
	router.GET("/charts/:chart", h.GetChart)
	router.GET("/charts/:chart/image", h.RenderChart)
	router.GET("/charts/:chart/export", h.ExportChart)

	// 地图
	router.GET("/rankings", h.ListRankings)
	router.GET("/map", h.GetMap)
}
