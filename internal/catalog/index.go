package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"someicons/internal/model"
)

// CategoryAll 表示不过滤分类
const CategoryAll = "all"

// Index 图标目录的内存索引
// 对拉取到的目录做搜索、分类、排序等派生查询；目录本身不可变。
// 非并发安全，由调用方（API Handler）持锁访问。
type Index struct {
	icons    []model.Icon
	pinned   string
	collator *collate.Collator
}

// NewIndex 创建目录索引
// pinned 为置顶分类（如 general），分类列表中若存在则排在最前。
func NewIndex(icons []model.Icon, pinned string) *Index {
	return &Index{
		icons:    icons,
		pinned:   pinned,
		collator: collate.New(language.English),
	}
}

// Len 目录中图标总数
func (idx *Index) Len() int {
	return len(idx.icons)
}

// Icons 返回全部图标（按目录顺序）
func (idx *Index) Icons() []model.Icon {
	return idx.icons
}

// Get 按 id 查找图标
func (idx *Index) Get(id string) (model.Icon, bool) {
	for _, icon := range idx.icons {
		if icon.ID == id {
			return icon, true
		}
	}
	return model.Icon{}, false
}

// matches 判断图标是否命中查询词
// 每个词都必须是 id+category+tags 拼接文本的子串
func matches(icon model.Icon, terms []string) bool {
	parts := append([]string{icon.ID, icon.Category}, icon.Tags...)
	searchable := strings.ToLower(strings.Join(parts, " "))
	for _, term := range terms {
		if !strings.Contains(searchable, term) {
			return false
		}
	}
	return true
}

// derivedSortKey 去掉 id 的首段前缀作为排序键
// 例如 arrow-left-chevron 按 left-chevron 排序，
// 使同语义图标在跨分类浏览时聚在一起。
func derivedSortKey(iconID string) string {
	parts := strings.Split(iconID, "-")
	if len(parts) > 1 {
		return strings.Join(parts[1:], "-")
	}
	return iconID
}

// Search 过滤并排序图标
// 流程：
//  1. 查询词归一化（trim、小写、按空白切分），空查询命中全部
//  2. 分类过滤与搜索过滤相互独立，两者都要通过
//  3. 过滤掉缺少当前样式文件的图标
//  4. 分类为 all 时按派生键排序，否则按原始 id；比较使用本地化排序
func (idx *Index) Search(query string, style model.IconStyle, category string) []model.Icon {
	var terms []string
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		terms = strings.Fields(q)
	}

	var result []model.Icon
	for _, icon := range idx.icons {
		if category != "" && category != CategoryAll && icon.Category != category {
			continue
		}
		if len(terms) > 0 && !matches(icon, terms) {
			continue
		}
		if !icon.HasStyle(style) {
			continue
		}
		result = append(result, icon)
	}

	if category == "" || category == CategoryAll {
		sort.SliceStable(result, func(i, j int) bool {
			return idx.collator.CompareString(derivedSortKey(result[i].ID), derivedSortKey(result[j].ID)) < 0
		})
	} else {
		sort.SliceStable(result, func(i, j int) bool {
			return idx.collator.CompareString(result[i].ID, result[j].ID) < 0
		})
	}

	return result
}

// Categories 返回去重后的分类列表
// 本地化排序；置顶分类存在时强制排在最前。
func (idx *Index) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, icon := range idx.icons {
		if icon.Category == "" || seen[icon.Category] {
			continue
		}
		seen[icon.Category] = true
		categories = append(categories, icon.Category)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return idx.collator.CompareString(categories[i], categories[j]) < 0
	})

	if idx.pinned != "" && seen[idx.pinned] {
		out := []string{idx.pinned}
		for _, c := range categories {
			if c != idx.pinned {
				out = append(out, c)
			}
		}
		return out
	}
	return categories
}
