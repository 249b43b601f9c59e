package api

import (
	"sync"

	"github.com/gin-gonic/gin"

	"someicons/internal/catalog"
	"someicons/internal/cdn"
	"someicons/internal/config"
	"someicons/internal/exporter"
	"someicons/internal/selection"
	"someicons/internal/store"
)

// Handler API 处理器
type Handler struct {
	cfg       *config.AppConfig
	store     *store.Store
	cdn       *cdn.Client
	exporter  *exporter.Exporter
	selection *selection.Set
	downloads *exportDownloadStore
	dataDir   string

	// 目录索引延迟加载，持锁访问
	mu      sync.Mutex
	catalog *catalog.Index
}

// NewHandler 创建 API 处理器
func NewHandler(cfg *config.AppConfig, st *store.Store, client *cdn.Client, dataDir string) *Handler {
	return &Handler{
		cfg:       cfg,
		store:     st,
		cdn:       client,
		exporter:  exporter.NewExporter(client),
		selection: selection.NewSet(),
		downloads: newExportDownloadStore(),
		dataDir:   dataDir,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 图标目录
	router.GET("/icons", h.ListIcons)
	router.POST("/icons/refresh", h.RefreshIcons)
	router.GET("/icons/categories", h.ListCategories)
	router.GET("/icons/:id/svg", h.GetIconSVG)

	// 选择集
	router.GET("/selection", h.GetSelection)
	router.POST("/selection/toggle", h.ToggleSelection)
	router.POST("/selection/select", h.SelectIcon)
	router.POST("/selection/deselect", h.DeselectIcon)
	router.POST("/selection/all", h.SelectAll)
	router.POST("/selection/clear", h.ClearSelection)

	// 导出
	router.POST("/export", h.Export)
	router.POST("/export/stream", h.ExportStream)
	router.GET("/export/download/:token", h.DownloadExport)
	router.GET("/export/catalog", h.CatalogReport)

	// changelog
	router.GET("/changelog", h.GetChangelog)
	router.POST("/generate-changelog", h.GenerateChangelog)
}

// ensureCatalog 获取目录索引，未加载时先从 CDN 拉取
func (h *Handler) ensureCatalog() (*catalog.Index, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.catalog != nil {
		return h.catalog, nil
	}

	index, err := h.cdn.FetchIndex()
	if err != nil {
		return nil, err
	}
	h.catalog = catalog.NewIndex(index.Icons, h.cfg.Export.PreferredCategory)
	return h.catalog, nil
}

// reloadCatalog 强制重新拉取目录
func (h *Handler) reloadCatalog() (*catalog.Index, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	index, err := h.cdn.FetchIndex()
	if err != nil {
		return nil, err
	}
	h.catalog = catalog.NewIndex(index.Icons, h.cfg.Export.PreferredCategory)
	return h.catalog, nil
}
