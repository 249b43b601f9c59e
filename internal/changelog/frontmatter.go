package changelog

import (
	"regexp"
	"strings"
)

var frontmatterRe = regexp.MustCompile(`(?s)^---\s*\n(.*?)\n---\s*\n(.*)$`)

// ParseFrontmatter 解析 markdown 开头的 frontmatter
// 仅支持简单的 key: "value" 键值对；无 frontmatter 时返回空 map 与原文。
func ParseFrontmatter(content string) (map[string]string, string) {
	match := frontmatterRe.FindStringSubmatch(content)
	if match == nil {
		return map[string]string{}, content
	}

	frontmatter := make(map[string]string)
	for _, line := range strings.Split(match[1], "\n") {
		colonIndex := strings.Index(line, ":")
		if colonIndex <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:colonIndex])
		value := strings.TrimSpace(line[colonIndex+1:])

		// 去掉包裹的引号
		if len(value) >= 2 {
			if (strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) ||
				(strings.HasPrefix(value, `'`) && strings.HasSuffix(value, `'`)) {
				value = value[1 : len(value)-1]
			}
		}
		frontmatter[key] = value
	}

	return frontmatter, match[2]
}
