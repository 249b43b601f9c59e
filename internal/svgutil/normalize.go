package svgutil

import (
	"fmt"
	"regexp"
)

// 图标统一在 16 单位网格上绘制，缺失 viewBox 时以此兜底
const defaultViewBox = `viewBox="0 0 16 16"`

var (
	viewBoxRe = regexp.MustCompile(`(?i)\bviewBox=`)
	svgOpenRe = regexp.MustCompile(`(?i)<svg`)
	widthRe   = regexp.MustCompile(`(?i)width="[^"]*"`)
	heightRe  = regexp.MustCompile(`(?i)height="[^"]*"`)
)

// EnsureViewBox 确保根元素带有 viewBox 属性
// 缺失时在 <svg 开标签后插入 viewBox="0 0 16 16"。幂等。
func EnsureViewBox(svg string) string {
	if viewBoxRe.MatchString(svg) {
		return svg
	}
	replaced := false
	return svgOpenRe.ReplaceAllStringFunc(svg, func(m string) string {
		if replaced {
			return m
		}
		replaced = true
		return m + " " + defaultViewBox
	})
}

// SetDimensions 设置根元素的像素宽高
// 已有属性则替换，缺失则在 <svg 开标签后插入。
// 用于导出时必须先 EnsureViewBox，保证栅格化时缩放基准存在。
func SetDimensions(svg string, size int) string {
	result := svg

	if widthRe.MatchString(result) {
		result = replaceFirst(result, widthRe, fmt.Sprintf(`width="%d"`, size))
	} else {
		result = insertAfterSvgOpen(result, fmt.Sprintf(`width="%d"`, size))
	}

	if heightRe.MatchString(result) {
		result = replaceFirst(result, heightRe, fmt.Sprintf(`height="%d"`, size))
	} else {
		result = insertAfterSvgOpen(result, fmt.Sprintf(`height="%d"`, size))
	}

	return result
}

func replaceFirst(s string, re *regexp.Regexp, repl string) string {
	done := false
	return re.ReplaceAllStringFunc(s, func(m string) string {
		if done {
			return m
		}
		done = true
		return repl
	})
}

func insertAfterSvgOpen(s, attr string) string {
	done := false
	return svgOpenRe.ReplaceAllStringFunc(s, func(m string) string {
		if done {
			return m
		}
		done = true
		return m + " " + attr
	})
}
