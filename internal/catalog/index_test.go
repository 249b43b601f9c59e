package catalog

import (
	"testing"

	"someicons/internal/model"
)

func testIcons() []model.Icon {
	return []model.Icon{
		{
			ID:       "arrow-left-chevron",
			Category: "arrow",
			Tags:     []string{"direction", "back"},
			Files:    model.IconFiles{Outline: "icons/outline/arrow-left-chevron.svg"},
		},
		{
			ID:       "arrow-right-chevron",
			Category: "arrow",
			Files:    model.IconFiles{Outline: "icons/outline/arrow-right-chevron.svg", Filled: "icons/filled/arrow-right-chevron.svg"},
		},
		{
			ID:       "general-calendar",
			Category: "general",
			Tags:     []string{"date", "schedule"},
			Files:    model.IconFiles{Outline: "icons/outline/general-calendar.svg", Filled: "icons/filled/general-calendar.svg"},
		},
		{
			ID:       "interface-loading",
			Category: "interface",
			Files:    model.IconFiles{Filled: "icons/filled/interface-loading.svg"},
		},
	}
}

func ids(icons []model.Icon) []string {
	out := make([]string, 0, len(icons))
	for _, i := range icons {
		out = append(out, i.ID)
	}
	return out
}

func TestSearch_EmptyQueryReturnsAllWithStyle(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testIcons(), "general")
	result := idx.Search("", model.StyleOutline, CategoryAll)
	if len(result) != 3 {
		t.Fatalf("want 3 outline icons, got %d: %v", len(result), ids(result))
	}
	for _, icon := range result {
		if !icon.HasStyle(model.StyleOutline) {
			t.Fatalf("icon without outline in result: %s", icon.ID)
		}
	}
}

func TestSearch_MultiTermAllMustMatch(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testIcons(), "general")
	result := idx.Search("arrow left", model.StyleOutline, CategoryAll)
	if len(result) != 1 || result[0].ID != "arrow-left-chevron" {
		t.Fatalf("want [arrow-left-chevron] got %v", ids(result))
	}
}

func TestSearch_MatchesTags(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testIcons(), "general")
	result := idx.Search("schedule", model.StyleFilled, CategoryAll)
	if len(result) != 1 || result[0].ID != "general-calendar" {
		t.Fatalf("want [general-calendar] got %v", ids(result))
	}
}

func TestSearch_CategoryAndQueryBothApply(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testIcons(), "general")
	// chevron 同时出现在 arrow 分类的两个图标中；分类过滤与搜索过滤叠加
	result := idx.Search("chevron", model.StyleOutline, "arrow")
	if len(result) != 2 {
		t.Fatalf("want 2 got %v", ids(result))
	}
	result = idx.Search("calendar", model.StyleOutline, "arrow")
	if len(result) != 0 {
		t.Fatalf("cross-category query must not bypass category filter: %v", ids(result))
	}
}

func TestSearch_StyleFilter(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testIcons(), "general")
	result := idx.Search("", model.StyleFilled, CategoryAll)
	if len(result) != 3 {
		t.Fatalf("want 3 filled icons, got %v", ids(result))
	}
	for _, icon := range result {
		if icon.ID == "arrow-left-chevron" {
			t.Fatalf("icon without filled variant leaked through")
		}
	}
}

func TestSearch_DerivedSortKeyForAll(t *testing.T) {
	t.Parallel()

	icons := []model.Icon{
		{ID: "zebra-apple", Category: "zebra", Files: model.IconFiles{Outline: "a.svg"}},
		{ID: "arrow-zulu", Category: "arrow", Files: model.IconFiles{Outline: "b.svg"}},
	}
	idx := NewIndex(icons, "")
	result := idx.Search("", model.StyleOutline, CategoryAll)
	// 按派生键排序：apple < zulu，与原始 id 顺序相反
	if result[0].ID != "zebra-apple" || result[1].ID != "arrow-zulu" {
		t.Fatalf("derived key sort broken: %v", ids(result))
	}

	result = idx.Search("", model.StyleOutline, "arrow")
	if len(result) != 1 || result[0].ID != "arrow-zulu" {
		t.Fatalf("category sort broken: %v", ids(result))
	}
}

func TestCategories_PinnedFirst(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testIcons(), "general")
	got := idx.Categories()
	want := []string{"general", "arrow", "interface"}
	if len(got) != len(want) {
		t.Fatalf("want %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v got %v", want, got)
		}
	}
}

func TestCategories_NoPinned(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testIcons(), "")
	got := idx.Categories()
	want := []string{"arrow", "general", "interface"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v got %v", want, got)
		}
	}
}
