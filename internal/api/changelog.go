package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"someicons/internal/changelog"
)

func (h *Handler) changelogDir() string {
	return filepath.Join(h.dataDir, "changelog")
}

// GetChangelog 获取 changelog 索引
// GET /api/changelog
func (h *Handler) GetChangelog(c *gin.Context) {
	index, err := changelog.Generate(h.changelogDir())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成 changelog 失败: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, index)
}

type generateChangelogRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// GenerateChangelog 写入一条 changelog 并重建索引
// 仅开发模式可用，生产模式返回 501。
// POST /api/generate-changelog
func (h *Handler) GenerateChangelog(c *gin.Context) {
	if !h.cfg.Server.DevMode {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "该接口仅在开发模式下可用"})
		return
	}

	var req generateChangelogRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Filename == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 filename 或 content"})
		return
	}

	if err := changelog.WriteEntry(h.changelogDir(), req.Filename, req.Content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	index, err := changelog.Generate(h.changelogDir())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "重建 changelog 索引失败: " + err.Error()})
		return
	}
	indexPath := filepath.Join(h.dataDir, "changelog-index.json")
	if err := changelog.WriteIndexFile(index, indexPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "写入索引文件失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"filename": req.Filename,
		"entries":  len(index.Entries),
	})
}
