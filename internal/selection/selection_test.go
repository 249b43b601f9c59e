package selection

import "testing"

func TestToggleAfterSelectAll(t *testing.T) {
	t.Parallel()

	s := NewSet()
	s.SelectAll([]string{"a", "b", "c"})
	s.Toggle("b")

	if s.Count() != 2 {
		t.Fatalf("count want=2 got=%d", s.Count())
	}
	if s.IsSelected("b") {
		t.Fatalf("b must be deselected")
	}
	if !s.IsSelected("a") || !s.IsSelected("c") {
		t.Fatalf("a and c must stay selected")
	}
}

func TestToggleAddsUnknownID(t *testing.T) {
	t.Parallel()

	s := NewSet()
	s.Toggle("x")
	if !s.IsSelected("x") || s.Count() != 1 {
		t.Fatalf("toggle on empty set must select")
	}
	s.Toggle("x")
	if s.IsSelected("x") || s.Count() != 0 {
		t.Fatalf("second toggle must deselect")
	}
}

func TestDeselectMissingIsNoop(t *testing.T) {
	t.Parallel()

	s := NewSet()
	s.Select("a")
	s.Deselect("missing")
	if s.Count() != 1 {
		t.Fatalf("count want=1 got=%d", s.Count())
	}
}

func TestSelectAllReplaces(t *testing.T) {
	t.Parallel()

	s := NewSet()
	s.Select("old")
	s.SelectAll([]string{"a", "b"})
	if s.IsSelected("old") {
		t.Fatalf("selectAll must replace the set")
	}
	if s.Count() != 2 {
		t.Fatalf("count want=2 got=%d", s.Count())
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := NewSet()
	s.SelectAll([]string{"a", "b"})
	s.Clear()
	if s.Count() != 0 || s.IsSelected("a") {
		t.Fatalf("clear must empty the set")
	}
}

func TestSelectIsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewSet()
	s.Select("a")
	s.Select("a")
	if s.Count() != 1 {
		t.Fatalf("duplicate select must not grow count: %d", s.Count())
	}
}
