package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"someicons/internal/catalog"
	"someicons/internal/model"
	"someicons/internal/svgutil"
)

// ListIcons 查询图标列表
// GET /api/icons?query=&style=&category=
func (h *Handler) ListIcons(c *gin.Context) {
	index, err := h.ensureCatalog()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "加载图标目录失败: " + err.Error()})
		return
	}

	style := model.IconStyle(c.DefaultQuery("style", string(model.StyleOutline)))
	if !style.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "样式不合法，应为 outline 或 filled"})
		return
	}
	query := c.Query("query")
	category := c.DefaultQuery("category", catalog.CategoryAll)

	icons := index.Search(query, style, category)
	if icons == nil {
		icons = []model.Icon{}
	}

	c.JSON(http.StatusOK, gin.H{
		"icons": icons,
		"total": len(icons),
	})
}

// RefreshIcons 重新拉取图标目录
// POST /api/icons/refresh
func (h *Handler) RefreshIcons(c *gin.Context) {
	index, err := h.reloadCatalog()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "刷新图标目录失败: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": index.Len()})
}

// ListCategories 获取分类列表
// GET /api/icons/categories
func (h *Handler) ListCategories(c *gin.Context) {
	index, err := h.ensureCatalog()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "加载图标目录失败: " + err.Error()})
		return
	}

	categories := index.Categories()
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetIconSVG 获取单个图标处理后的 SVG 文本
// 前端"点击复制"即复制该响应内容。
// GET /api/icons/:id/svg?style=&color=&size=
func (h *Handler) GetIconSVG(c *gin.Context) {
	index, err := h.ensureCatalog()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "加载图标目录失败: " + err.Error()})
		return
	}

	id := c.Param("id")
	icon, ok := index.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "图标不存在: " + id})
		return
	}

	style := model.IconStyle(c.DefaultQuery("style", string(model.StyleOutline)))
	if !style.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "样式不合法，应为 outline 或 filled"})
		return
	}
	path := icon.Files.PathFor(style)
	if path == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "图标 " + id + " 缺少 " + string(style) + " 样式"})
		return
	}

	color := svgutil.Default
	if raw := c.Query("color"); raw != "" {
		if !svgutil.IsValidHex(raw) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "颜色格式不合法: " + raw})
			return
		}
		color = svgutil.ColorChoice(svgutil.NormalizeHex(raw))
	}

	size := 0
	if raw := c.Query("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil || size <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "尺寸不合法: " + raw})
			return
		}
	}

	svg, err := h.cdn.FetchSVG(path)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "拉取图标 " + id + " 失败: " + err.Error()})
		return
	}

	svg = svgutil.EnsureViewBox(svg)
	svg = svgutil.Recolor(svg, color)
	if size > 0 {
		svg = svgutil.SetDimensions(svg, size)
	}

	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", []byte(svg))
}
