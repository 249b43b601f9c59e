package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"someicons/internal/exporter"
	"someicons/internal/model"
	"someicons/internal/svgutil"
)

// ExportRequest 导出请求体
type ExportRequest struct {
	Size    int      `json:"size"`
	Format  string   `json:"format"`
	Color   string   `json:"color"` // 空串表示保留原配色
	Style   string   `json:"style"`
	IconIDs []string `json:"iconIds"` // 为空时使用服务端选择集
}

func (h *Handler) buildExportOptions(req ExportRequest, progress func(exporter.ProgressEvent)) exporter.ExportOptions {
	iconIDs := req.IconIDs
	if len(iconIDs) == 0 {
		iconIDs = h.selection.IDs()
	}

	style := model.IconStyle(req.Style)
	if req.Style == "" {
		style = model.StyleOutline
	}

	return exporter.ExportOptions{
		Size:     req.Size,
		Format:   exporter.Format(req.Format),
		Color:    svgutil.ColorChoice(req.Color),
		Style:    style,
		IconIDs:  iconIDs,
		Progress: progress,
	}
}

// Export 同步导出，直接返回 ZIP
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	index, err := h.ensureCatalog()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "加载图标目录失败: " + err.Error()})
		return
	}

	opts := h.buildExportOptions(req, nil)
	data, err := h.exporter.Export(index, opts)
	if err != nil {
		var verr *exporter.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出失败: " + err.Error()})
		return
	}

	filename := exporter.BuildExportFilename(opts.Style, opts.Size)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/zip", data)
}

type exportProgressEvent struct {
	Type      string      `json:"type"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// ExportStream 导出 ZIP（SSE 进度 + 完成后提供下载地址）
// POST /api/export/stream
func (h *Handler) ExportStream(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	index, err := h.ensureCatalog()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "加载图标目录失败: " + err.Error()})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "不支持流式响应"})
		return
	}

	send := func(event exportProgressEvent) {
		b, err := json.Marshal(event)
		if err != nil {
			return
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", b)
		flusher.Flush()
	}

	send(exportProgressEvent{
		Type:    "start",
		Message: "开始导出",
		Data: map[string]any{
			"count": len(req.IconIDs),
		},
		Timestamp: time.Now(),
	})

	lastPercent := -1
	progressFn := func(p exporter.ProgressEvent) {
		if p.Percent == lastPercent {
			return
		}
		lastPercent = p.Percent
		send(exportProgressEvent{
			Type:      "progress",
			Message:   p.Stage,
			Data:      map[string]any{"percent": p.Percent, "iconId": p.IconID},
			Timestamp: time.Now(),
		})
	}

	opts := h.buildExportOptions(req, progressFn)
	data, err := h.exporter.Export(index, opts)
	if err != nil {
		send(exportProgressEvent{
			Type:      "error",
			Message:   "导出失败: " + err.Error(),
			Data:      map[string]any{},
			Timestamp: time.Now(),
		})
		return
	}

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("someicons_export_%s.zip", uuid.NewString()))
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		send(exportProgressEvent{
			Type:      "error",
			Message:   "写入导出文件失败: " + err.Error(),
			Data:      map[string]any{},
			Timestamp: time.Now(),
		})
		_ = os.Remove(tempPath)
		return
	}

	filename := exporter.BuildExportFilename(opts.Style, opts.Size)
	token := h.downloads.put(tempPath, filename, 10*time.Minute)
	downloadURL := fmt.Sprintf("/api/export/download/%s", token)

	send(exportProgressEvent{
		Type:    "done",
		Message: "导出完成",
		Data: map[string]any{
			"percent":     100,
			"downloadUrl": downloadURL,
			"filename":    filename,
		},
		Timestamp: time.Now(),
	})
}

// DownloadExport 下载导出的 ZIP 文件（一次性）
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 token"})
		return
	}

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接已失效"})
		return
	}

	if _, err := os.Stat(item.filePath); err != nil {
		h.downloads.delete(token)
		c.JSON(http.StatusNotFound, gin.H{"error": "导出文件不存在"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, item.filename))
	c.Header("Content-Type", "application/zip")
	c.File(item.filePath)

	h.downloads.delete(token)
	_ = os.Remove(item.filePath)
}

// CatalogReport 导出图标目录清单（xlsx）
// GET /api/export/catalog
func (h *Handler) CatalogReport(c *gin.Context) {
	index, err := h.ensureCatalog()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "加载图标目录失败: " + err.Error()})
		return
	}

	f, err := exporter.CatalogReport(index.Icons())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成目录清单失败: " + err.Error()})
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成目录清单失败: " + err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="some-icons-catalog.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
