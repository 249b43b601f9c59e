package changelog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Entry changelog 索引条目
type Entry struct {
	Title    string `json:"title"`
	Version  string `json:"version"`
	Date     string `json:"date,omitempty"`
	Content  string `json:"content"`
	AnchorID string `json:"anchorId"`
}

// Index changelog 索引
type Index struct {
	Entries []Entry `json:"entries"`
}

// 文件名必须是 vX.Y.Z.md
var FilenameRe = regexp.MustCompile(`^v\d+\.\d+\.\d+\.md$`)

var anchorRe = regexp.MustCompile(`[^a-z0-9]+`)

// anchorID 根据版本与标题生成页内锚点
func anchorID(version, title string) string {
	slug := strings.ToLower(version + "-" + title)
	slug = anchorRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// parseVersion 解析版本号为三段整数，非法段记 0
func parseVersion(version string) [3]int {
	var parts [3]int
	cleaned := strings.TrimPrefix(strings.TrimPrefix(version, "v"), "V")
	for i, p := range strings.Split(cleaned, ".") {
		if i >= 3 {
			break
		}
		n, err := strconv.Atoi(p)
		if err == nil {
			parts[i] = n
		}
	}
	return parts
}

func parseDate(date string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006/01/02"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// processFile 处理单个 changelog 文件
// 缺少 title/version 的文件跳过
func processFile(path string) (*Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	frontmatter, body := ParseFrontmatter(string(content))
	title := frontmatter["title"]
	version := frontmatter["version"]
	if title == "" || version == "" {
		return nil, nil
	}

	return &Entry{
		Title:    title,
		Version:  version,
		Date:     frontmatter["date"],
		Content:  ToHTML(strings.TrimSpace(body)),
		AnchorID: anchorID(version, title),
	}, nil
}

// Generate 扫描目录下的 *.md 生成索引
// 排序：日期降序，同日期（或日期非法）按版本号降序。
func Generate(dir string) (*Index, error) {
	index := &Index{Entries: []Entry{}}

	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return index, nil
		}
		return nil, fmt.Errorf("读取 changelog 目录失败: %w", err)
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".md") {
			continue
		}
		entry, err := processFile(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, fmt.Errorf("处理 %s 失败: %w", f.Name(), err)
		}
		if entry != nil {
			index.Entries = append(index.Entries, *entry)
		}
	}

	sort.SliceStable(index.Entries, func(i, j int) bool {
		a, b := index.Entries[i], index.Entries[j]
		dateA, okA := parseDate(a.Date)
		dateB, okB := parseDate(b.Date)
		if okA && okB && !dateA.Equal(dateB) {
			return dateA.After(dateB)
		}
		va, vb := parseVersion(a.Version), parseVersion(b.Version)
		for k := 0; k < 3; k++ {
			if va[k] != vb[k] {
				return va[k] > vb[k]
			}
		}
		// 版本也相同，日期非法的排后面
		return okA && !okB
	})

	return index, nil
}

// WriteEntry 写入一条 changelog markdown 文件
// 文件名必须符合 vX.Y.Z.md
func WriteEntry(dir, filename, content string) error {
	if !FilenameRe.MatchString(filename) {
		return fmt.Errorf("文件名必须符合 vX.Y.Z.md 格式: %s", filename)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644)
}

// WriteIndexFile 将索引序列化为 JSON 写入指定路径
func WriteIndexFile(index *Index, path string) error {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
