package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gonum.org/v1/plot/vg"

	"infradash/internal/chart"
	"infradash/internal/exporter"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// buildChart 解析路径与查询参数并构建图表
func (h *Handler) buildChart(c *gin.Context) (chart.Spec, bool) {
	kind, ok := chart.ParseKind(c.Param("chart"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "未知图表: " + c.Param("chart")})
		return chart.Spec{}, false
	}

	sel, err := h.parseSelection(c, kind.Metric(), kind.NeedsSector())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return chart.Spec{}, false
	}

	spec, err := chart.Build(h.data, kind, sel.Region, sel.Sector)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return chart.Spec{}, false
	}
	return spec, true
}

// GetChart 图表数据
// GET /api/charts/:chart?region=R[&sector=S]
func (h *Handler) GetChart(c *gin.Context) {
	spec, ok := h.buildChart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, spec)
}

// RenderChart 渲染图表图片
// GET /api/charts/:chart/image?format=png|svg&width=&height=
func (h *Handler) RenderChart(c *gin.Context) {
	format, ok := chart.ParseFormat(c.Query("format"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "非法图片格式"})
		return
	}
	width, err := sizeParam(c, "width", chart.DefaultWidth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	height, err := sizeParam(c, "height", chart.DefaultHeight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spec, ok := h.buildChart(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := chart.Render(&buf, spec, format, width, height); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "渲染图表失败: " + err.Error()})
		return
	}
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// ExportChart 导出图表数据为 Excel
// GET /api/charts/:chart/export?region=R[&sector=S]
func (h *Handler) ExportChart(c *gin.Context) {
	spec, ok := h.buildChart(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := exporter.WriteSeries(&buf, spec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出失败: " + err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporter.Filename(spec)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// sizeParam 读取像素尺寸（96 dpi），范围 [100, 4000]
func sizeParam(c *gin.Context, name string, def vg.Length) (vg.Length, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	px, err := strconv.Atoi(raw)
	if err != nil || px < 100 || px > 4000 {
		return 0, fmt.Errorf("非法尺寸参数 %s=%s", name, raw)
	}
	return vg.Length(px) * vg.Inch / 96, nil
}
