package svgutil

import (
	"strings"
	"testing"
)

func TestEnsureViewBox_InsertsWhenMissing(t *testing.T) {
	t.Parallel()

	svg := `<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0"/></svg>`
	got := EnsureViewBox(svg)
	if !strings.Contains(got, `<svg viewBox="0 0 16 16"`) {
		t.Fatalf("viewBox not inserted: %s", got)
	}
}

func TestEnsureViewBox_Idempotent(t *testing.T) {
	t.Parallel()

	svg := `<svg><path d="M0 0"/></svg>`
	once := EnsureViewBox(svg)
	twice := EnsureViewBox(once)
	if once != twice {
		t.Fatalf("not idempotent: %s vs %s", once, twice)
	}
}

func TestEnsureViewBox_ExistingUntouched(t *testing.T) {
	t.Parallel()

	svg := `<svg viewBox="0 0 24 24"></svg>`
	if got := EnsureViewBox(svg); got != svg {
		t.Fatalf("existing viewBox must stay: %s", got)
	}
}

func TestSetDimensions_ReplacesExisting(t *testing.T) {
	t.Parallel()

	svg := `<svg width="16" height="16" viewBox="0 0 16 16"></svg>`
	got := SetDimensions(svg, 24)
	if !strings.Contains(got, `width="24"`) || !strings.Contains(got, `height="24"`) {
		t.Fatalf("dimensions not replaced: %s", got)
	}
	if strings.Contains(got, `width="16"`) || strings.Contains(got, `height="16"`) {
		t.Fatalf("old dimensions remain: %s", got)
	}
}

func TestSetDimensions_InsertsWhenMissing(t *testing.T) {
	t.Parallel()

	svg := `<svg viewBox="0 0 16 16"></svg>`
	got := SetDimensions(svg, 32)
	if !strings.Contains(got, `width="32"`) || !strings.Contains(got, `height="32"`) {
		t.Fatalf("dimensions not inserted: %s", got)
	}
}

func TestSetDimensions_OnlyFirstOccurrence(t *testing.T) {
	t.Parallel()

	// 嵌套元素上的 width 不应被改写
	svg := `<svg width="16"><rect width="8"/></svg>`
	got := SetDimensions(svg, 24)
	if !strings.Contains(got, `width="24"`) {
		t.Fatalf("root width not replaced: %s", got)
	}
	if !strings.Contains(got, `<rect width="8"/>`) {
		t.Fatalf("nested width must stay: %s", got)
	}
}
