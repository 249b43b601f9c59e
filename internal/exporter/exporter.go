package exporter

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sync"

	"someicons/internal/catalog"
	"someicons/internal/cdn"
	"someicons/internal/model"
	"someicons/internal/svgutil"
)

// Format 导出格式
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ExportOptions 导出选项
type ExportOptions struct {
	Size     int
	Format   Format
	Color    svgutil.ColorChoice // Default 表示保留原配色
	Style    model.IconStyle
	IconIDs  []string
	Progress func(ProgressEvent)
}

// ValidationError 导出请求校验错误
// Field 标记首个不合法的字段，用于前端内联提示。
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Exporter 图标导出器
// 流程：校验 → 并发拉取 SVG → 逐个 归一化/着色/设尺寸 →（可选栅格化）→ 打包 ZIP。
// 任一图标失败则整个导出失败，不产出部分压缩包。
type Exporter struct {
	cdn *cdn.Client
}

// NewExporter 创建导出器
func NewExporter(client *cdn.Client) *Exporter {
	return &Exporter{cdn: client}
}

// validate 校验导出选项并解析选中的图标
// 校验全部通过前不发起任何网络请求。
func (e *Exporter) validate(index *catalog.Index, opts ExportOptions) ([]model.Icon, error) {
	if len(opts.IconIDs) == 0 {
		return nil, &ValidationError{Field: "iconIds", Message: "请先选择要导出的图标"}
	}
	if opts.Size <= 0 {
		return nil, &ValidationError{Field: "size", Message: "请选择导出尺寸"}
	}
	if opts.Format != FormatSVG && opts.Format != FormatPNG {
		return nil, &ValidationError{Field: "format", Message: "请选择导出格式（svg/png）"}
	}
	if !opts.Style.Valid() {
		return nil, &ValidationError{Field: "style", Message: "图标样式不合法"}
	}
	if opts.Color != svgutil.Default && !svgutil.IsValidHex(string(opts.Color)) {
		return nil, &ValidationError{Field: "color", Message: "颜色格式不合法"}
	}

	icons := make([]model.Icon, 0, len(opts.IconIDs))
	for _, id := range opts.IconIDs {
		icon, ok := index.Get(id)
		if !ok {
			return nil, &ValidationError{Field: "iconIds", Message: fmt.Sprintf("图标不存在: %s", id)}
		}
		if !icon.HasStyle(opts.Style) {
			return nil, &ValidationError{Field: "style", Message: fmt.Sprintf("图标 %s 缺少 %s 样式", id, opts.Style)}
		}
		icons = append(icons, icon)
	}
	return icons, nil
}

// Export 执行导出，返回 ZIP 内容
func (e *Exporter) Export(index *catalog.Index, opts ExportOptions) ([]byte, error) {
	icons, err := e.validate(index, opts)
	if err != nil {
		return nil, err
	}

	color := opts.Color
	if color != svgutil.Default {
		color = svgutil.ColorChoice(svgutil.NormalizeHex(string(color)))
	}

	reportProgress(opts.Progress, 0, "开始导出", "")

	// 并发拉取：SVG 内容不可变，各图标之间无顺序依赖
	sources := make([]string, len(icons))
	fetchErrs := make([]error, len(icons))
	var wg sync.WaitGroup
	for i := range icons {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sources[i], fetchErrs[i] = e.cdn.FetchSVG(icons[i].Files.PathFor(opts.Style))
		}(i)
	}
	wg.Wait()

	for i, ferr := range fetchErrs {
		if ferr != nil {
			return nil, fmt.Errorf("拉取图标 %s 失败: %w", icons[i].ID, ferr)
		}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for i, icon := range icons {
		reportProgress(opts.Progress, (i*100)/len(icons), "处理图标", icon.ID)

		// 顺序固定：先补 viewBox，再着色，最后设尺寸，保证栅格化时缩放基准存在
		svg := svgutil.EnsureViewBox(sources[i])
		svg = svgutil.Recolor(svg, color)
		svg = svgutil.SetDimensions(svg, opts.Size)

		var name string
		var data []byte
		if opts.Format == FormatSVG {
			name = icon.ID + ".svg"
			data = []byte(svg)
		} else {
			name = icon.ID + ".png"
			data, err = RenderPNG(svg, opts.Size)
			if err != nil {
				return nil, fmt.Errorf("栅格化图标 %s 失败: %w", icon.ID, err)
			}
		}

		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("写入压缩包失败: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("写入压缩包失败: %w", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("关闭压缩包失败: %w", err)
	}

	reportProgress(opts.Progress, 100, "导出完成", "")
	return buf.Bytes(), nil
}

// BuildExportFilename 生成导出文件名
// 对同一（样式, 尺寸）组合保持稳定
func BuildExportFilename(style model.IconStyle, size int) string {
	return fmt.Sprintf("some-icons-%s-%dpx.zip", style, size)
}
