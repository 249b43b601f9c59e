package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type selectionIDRequest struct {
	ID string `json:"id"`
}

func (h *Handler) selectionState() gin.H {
	return gin.H{
		"ids":   h.selection.IDs(),
		"count": h.selection.Count(),
	}
}

// GetSelection 获取当前选择
// GET /api/selection
func (h *Handler) GetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, h.selectionState())
}

// ToggleSelection 切换图标选中状态
// POST /api/selection/toggle
func (h *Handler) ToggleSelection(c *gin.Context) {
	var req selectionIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少图标 id"})
		return
	}
	h.selection.Toggle(req.ID)
	c.JSON(http.StatusOK, gin.H{
		"selected": h.selection.IsSelected(req.ID),
		"count":    h.selection.Count(),
	})
}

// SelectIcon 选中图标
// POST /api/selection/select
func (h *Handler) SelectIcon(c *gin.Context) {
	var req selectionIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少图标 id"})
		return
	}
	h.selection.Select(req.ID)
	c.JSON(http.StatusOK, h.selectionState())
}

// DeselectIcon 取消选中图标
// POST /api/selection/deselect
func (h *Handler) DeselectIcon(c *gin.Context) {
	var req selectionIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少图标 id"})
		return
	}
	h.selection.Deselect(req.ID)
	c.JSON(http.StatusOK, h.selectionState())
}

// SelectAll 用给定列表替换当前选择
// POST /api/selection/all
func (h *Handler) SelectAll(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}
	h.selection.SelectAll(req.IDs)
	c.JSON(http.StatusOK, h.selectionState())
}

// ClearSelection 清空选择
// POST /api/selection/clear
func (h *Handler) ClearSelection(c *gin.Context) {
	h.selection.Clear()
	c.JSON(http.StatusOK, h.selectionState())
}
