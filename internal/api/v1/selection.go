package v1

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"infradash/internal/model"
)

var errMissingRegion = errors.New("缺少 region 参数")

// selection 用户选择
type selection struct {
	Kind   model.MetricKind
	Region string
	Sector string
}

// parseSelection 读取并校验 region / sector，只接受已加载数据中存在的值
func (h *Handler) parseSelection(c *gin.Context, kind model.MetricKind, needSector bool) (selection, error) {
	sel := selection{
		Kind:   kind,
		Region: c.Query("region"),
		Sector: c.Query("sector"),
	}
	if sel.Region == "" {
		return sel, errMissingRegion
	}
	if !h.data.HasRegion(sel.Region) {
		return sel, fmt.Errorf("未知地区: %s", sel.Region)
	}
	if needSector && sel.Sector == "" {
		return sel, errors.New("缺少 sector 参数")
	}
	if sel.Sector != "" && !h.data.HasSector(kind, sel.Sector) {
		return sel, fmt.Errorf("未知部门: %s", sel.Sector)
	}
	return sel, nil
}
