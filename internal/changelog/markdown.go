package changelog

import (
	"fmt"
	"regexp"
	"strings"
)

// 刻意保持最小实现：changelog 内容由内部表单生成，结构可控，
// 只需要标题、列表、段落和少量行内格式。
var (
	headerRe   = regexp.MustCompile(`^(#{1,6})(.+)$`)
	ulItemRe   = regexp.MustCompile(`^[-*]\s`)
	olItemRe   = regexp.MustCompile(`^\d+\.\s`)
	boldRe     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe   = regexp.MustCompile(`\*([^*]+)\*`)
	codeRe     = regexp.MustCompile("`([^`]+)`")
	linkRe     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	fenceRe    = regexp.MustCompile("(?s)```(.*?)```")
	hrLineRe    = regexp.MustCompile(`(?m)^---$`)
	headerTagRe = regexp.MustCompile(`^<h[1-6]>`)
)

// processInline 处理行内格式（粗体、斜体、行内代码、链接）
func processInline(text string) string {
	out := boldRe.ReplaceAllString(text, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	out = codeRe.ReplaceAllString(out, "<code>$1</code>")
	out = linkRe.ReplaceAllString(out, `<a href="$2">$1</a>`)
	return out
}

// ToHTML 将 changelog markdown 转为 HTML
// 紧跟在标题后的普通行视为列表项（与生成表单的输出习惯一致）。
func ToHTML(markdown string) string {
	if markdown == "" {
		return ""
	}

	lines := strings.Split(markdown, "\n")
	var result []string
	inList := false
	listType := ""
	var listItems []string

	flushList := func() {
		if len(listItems) == 0 {
			return
		}
		tag := "ul"
		if listType == "ol" {
			tag = "ol"
		}
		result = append(result, "<"+tag+">")
		for _, item := range listItems {
			result = append(result, "  <li>"+item+"</li>")
		}
		result = append(result, "</"+tag+">")
		listItems = nil
		inList = false
		listType = ""
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if m := headerRe.FindStringSubmatch(trimmed); m != nil {
			flushList()
			level := len(m[1])
			text := strings.TrimSpace(m[2])
			result = append(result, fmt.Sprintf("<h%d>%s</h%d>", level, text, level))
			continue
		}

		if ulItemRe.MatchString(trimmed) {
			itemText := processInline(strings.TrimSpace(trimmed[2:]))
			if !inList || listType != "ul" {
				flushList()
				inList = true
				listType = "ul"
			}
			listItems = append(listItems, itemText)
			continue
		}

		if olItemRe.MatchString(trimmed) {
			itemText := processInline(strings.TrimSpace(olItemRe.ReplaceAllString(trimmed, "")))
			if !inList || listType != "ol" {
				flushList()
				inList = true
				listType = "ol"
			}
			listItems = append(listItems, itemText)
			continue
		}

		if trimmed == "" {
			flushList()
			continue
		}

		// 标题后的普通行按列表项处理
		if len(result) > 0 && headerTagRe.MatchString(result[len(result)-1]) && !strings.HasPrefix(trimmed, "#") {
			itemText := processInline(trimmed)
			if !inList || listType != "ul" {
				flushList()
				inList = true
				listType = "ul"
			}
			listItems = append(listItems, itemText)
			continue
		}

		flushList()
		result = append(result, "<p>"+processInline(trimmed)+"</p>")
	}

	flushList()

	html := strings.Join(result, "\n")
	html = fenceRe.ReplaceAllString(html, "<pre><code>$1</code></pre>")
	html = hrLineRe.ReplaceAllString(html, "<hr>")

	return html
}
