package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态
type StatusResponse struct {
	Initialized    bool `json:"initialized"`
	IconCount      int  `json:"iconCount"`
	CategoryCount  int  `json:"categoryCount"`
	SelectedCount  int  `json:"selectedCount"`
	CachedSVGCount int  `json:"cachedSvgCount"` // SQLite 持久缓存
	MemCachedCount int  `json:"memCachedCount"` // 进程内缓存
	DevMode        bool `json:"devMode"`
}

// GetStatus 获取系统状态
// 目录未加载时不会触发拉取，只报告 Initialized=false。
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		SelectedCount:  h.selection.Count(),
		MemCachedCount: h.cdn.CachedCount(),
		DevMode:        h.cfg.Server.DevMode,
	}

	if n, err := h.store.CountSVG(); err == nil {
		resp.CachedSVGCount = n
	}

	h.mu.Lock()
	index := h.catalog
	h.mu.Unlock()

	if index != nil {
		resp.Initialized = true
		resp.IconCount = index.Len()
		resp.CategoryCount = len(index.Categories())
	}

	c.JSON(http.StatusOK, resp)
}
