package svgutil

import (
	"regexp"
	"strings"
)

// ColorChoice 导出颜色选择
// 空串为 Default 哨兵值：不做任何改写，保留 SVG 原生配色（含 currentColor）。
// 非空时必须是规范化后的 #RRGGBB（大写六位）。
type ColorChoice string

// Default 表示“不重新着色”
const Default ColorChoice = ""

var (
	hexColorRe      = regexp.MustCompile(`^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})$`)
	shortHexRe      = regexp.MustCompile(`^#[0-9A-Fa-f]{3}$`)
	fillAttrRe      = regexp.MustCompile(`(?i)(fill\s*=\s*["']?)(#?[0-9a-fA-F]{3,6}|currentColor|black|white)(["']?)`)
	strokeAttrRe    = regexp.MustCompile(`(?i)(stroke\s*=\s*["']?)(#?[0-9a-fA-F]{3,6}|currentColor|black|white)(["']?)`)
	fillStyleDecl   = regexp.MustCompile(`(?i)(fill\s*:\s*)(#?[0-9a-fA-F]{3,6}|currentColor|black|white)\b`)
	strokeStyleDecl = regexp.MustCompile(`(?i)(stroke\s*:\s*)(#?[0-9a-fA-F]{3,6}|currentColor|black|white)\b`)
	styleAttrRe     = regexp.MustCompile(`(?i)style\s*=\s*("([^"]*)"|'([^']*)')`)
)

// IsValidHex 校验 3 位或 6 位十六进制颜色（须带 # 前缀）
func IsValidHex(s string) bool {
	return hexColorRe.MatchString(s)
}

// NormalizeHex 规范化十六进制颜色
// 去空白、补 # 前缀、展开 3 位缩写、统一大写。幂等。
func NormalizeHex(s string) string {
	normalized := strings.TrimSpace(s)
	if !strings.HasPrefix(normalized, "#") {
		normalized = "#" + normalized
	}
	if shortHexRe.MatchString(normalized) {
		r := normalized[1]
		g := normalized[2]
		b := normalized[3]
		normalized = "#" + string([]byte{r, r, g, g, b, b})
	}
	return strings.ToUpper(normalized)
}

// 保留语义的特殊取值，改写时跳过
func isExemptValue(v string) bool {
	switch strings.ToLower(v) {
	case "none", "transparent", "inherit":
		return true
	}
	return false
}

func rewriteAttr(svg string, re *regexp.Regexp, hex string) string {
	return re.ReplaceAllStringFunc(svg, func(match string) string {
		groups := re.FindStringSubmatch(match)
		if groups == nil {
			return match
		}
		if isExemptValue(groups[2]) {
			return match
		}
		return groups[1] + hex + groups[3]
	})
}

func rewriteStyleDecls(svg string, hex string) string {
	return styleAttrRe.ReplaceAllStringFunc(svg, func(match string) string {
		out := fillStyleDecl.ReplaceAllStringFunc(match, func(decl string) string {
			groups := fillStyleDecl.FindStringSubmatch(decl)
			if groups == nil || isExemptValue(groups[2]) {
				return decl
			}
			return groups[1] + hex
		})
		out = strokeStyleDecl.ReplaceAllStringFunc(out, func(decl string) string {
			groups := strokeStyleDecl.FindStringSubmatch(decl)
			if groups == nil || isExemptValue(groups[2]) {
				return decl
			}
			return groups[1] + hex
		})
		return out
	})
}

// Recolor 重新着色 SVG 文本
// color 为 Default 时原样返回（导出结果需与主题无关、字节稳定）。
// 其余情况依次处理：
//  1. 替换所有 currentColor 字面量
//  2. 改写 fill= / stroke= 属性中的十六进制与 black/white 字面量
//     （none / transparent / inherit 保持不变）
//  3. 改写内联 style 属性里的 fill: / stroke: 声明
//
// 纯文本替换，尽力而为，不会因畸形 SVG 报错。
func Recolor(svg string, color ColorChoice) string {
	if color == Default {
		return svg
	}
	hex := string(color)

	out := strings.ReplaceAll(svg, "currentColor", hex)
	out = rewriteAttr(out, fillAttrRe, hex)
	out = rewriteAttr(out, strokeAttrRe, hex)
	out = rewriteStyleDecls(out, hex)
	return out
}
