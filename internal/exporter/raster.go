package exporter

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// 先以 2 倍尺寸栅格化再缩小，小尺寸下边缘更平滑
const rasterScale = 2

// RenderPNG 将 SVG 文本渲染为 size × size 的 PNG
// 图标按 viewBox 等比缩放并在画布内居中。
func RenderPNG(svg string, size int) ([]byte, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("解析 SVG 失败: %w", err)
	}

	canvas := size * rasterScale

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = float64(canvas), float64(canvas)
	}

	scale := float64(canvas) / math.Max(w, h)
	outW := int(w * scale)
	outH := int(h * scale)
	offsetX := (canvas - outW) / 2
	offsetY := (canvas - outH) / 2

	icon.SetTarget(float64(offsetX), float64(offsetY), float64(outW), float64(outH))

	img := image.NewRGBA(image.Rect(0, 0, canvas, canvas))
	scanner := rasterx.NewScannerGV(canvas, canvas, img, img.Bounds())
	raster := rasterx.NewDasher(canvas, canvas, scanner)
	icon.Draw(raster, 1.0)

	final := imaging.Resize(img, size, size, imaging.Lanczos)

	var buf bytes.Buffer
	if err := png.Encode(&buf, final); err != nil {
		return nil, fmt.Errorf("编码 PNG 失败: %w", err)
	}
	return buf.Bytes(), nil
}
