package svgutil

import (
	"regexp"
	"strings"
	"testing"
)

func TestNormalizeHex_Expand(t *testing.T) {
	t.Parallel()

	if got := NormalizeHex("abc"); got != "#AABBCC" {
		t.Fatalf("abc want=#AABBCC got=%s", got)
	}
	if got := NormalizeHex("#abc"); got != "#AABBCC" {
		t.Fatalf("#abc want=#AABBCC got=%s", got)
	}
	if got := NormalizeHex("ff0000"); got != "#FF0000" {
		t.Fatalf("ff0000 want=#FF0000 got=%s", got)
	}
	if got := NormalizeHex("  #112233 "); got != "#112233" {
		t.Fatalf("trim want=#112233 got=%s", got)
	}
}

func TestNormalizeHex_Idempotent(t *testing.T) {
	t.Parallel()

	canonical := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	for _, h := range []string{"abc", "#abc", "ABCDEF", "#abcdef", "123", "#f0f"} {
		once := NormalizeHex(h)
		twice := NormalizeHex(once)
		if once != twice {
			t.Fatalf("not idempotent: %s -> %s -> %s", h, once, twice)
		}
		if !canonical.MatchString(once) {
			t.Fatalf("not canonical: %s -> %s", h, once)
		}
	}
}

func TestIsValidHex(t *testing.T) {
	t.Parallel()

	valid := []string{"#fff", "#FFF", "#112233", "#AbCdEf"}
	for _, v := range valid {
		if !IsValidHex(v) {
			t.Fatalf("expected valid: %s", v)
		}
	}
	invalid := []string{"fff", "#ff", "#fffff", "#gggggg", "", "#1234567"}
	for _, v := range invalid {
		if IsValidHex(v) {
			t.Fatalf("expected invalid: %s", v)
		}
	}
}

func TestRecolor_DefaultIsIdentity(t *testing.T) {
	t.Parallel()

	svg := `<svg><path fill="#000000" stroke="currentColor"/></svg>`
	if got := Recolor(svg, Default); got != svg {
		t.Fatalf("default must not rewrite, got: %s", got)
	}
}

func TestRecolor_FillAndCurrentColor(t *testing.T) {
	t.Parallel()

	svg := `<svg><path fill="#000000" stroke="currentColor"/></svg>`
	got := Recolor(svg, "#FF0000")
	want := `<svg><path fill="#FF0000" stroke="#FF0000"/></svg>`
	if got != want {
		t.Fatalf("want=%s got=%s", want, got)
	}
}

func TestRecolor_ExemptValuesUntouched(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"none", "None", "NONE", "transparent", "inherit"} {
		svg := `<svg><path fill="` + v + `" stroke="#111"/></svg>`
		got := Recolor(svg, "#FF0000")
		if !strings.Contains(got, `fill="`+v+`"`) {
			t.Fatalf("exempt value %s was rewritten: %s", v, got)
		}
		if !strings.Contains(got, `stroke="#FF0000"`) {
			t.Fatalf("stroke not rewritten: %s", got)
		}
	}
}

func TestRecolor_ShortHexAndSingleQuotes(t *testing.T) {
	t.Parallel()

	svg := `<svg><rect fill='#abc'/><circle stroke='123456'/></svg>`
	got := Recolor(svg, "#112233")
	if !strings.Contains(got, `fill='#112233'`) {
		t.Fatalf("short hex not rewritten: %s", got)
	}
	if !strings.Contains(got, `stroke='#112233'`) {
		t.Fatalf("bare hex not rewritten: %s", got)
	}
}

func TestRecolor_BlackWhiteNames(t *testing.T) {
	t.Parallel()

	svg := `<svg><path fill="black" stroke="WHITE"/></svg>`
	got := Recolor(svg, "#336699")
	want := `<svg><path fill="#336699" stroke="#336699"/></svg>`
	if got != want {
		t.Fatalf("want=%s got=%s", want, got)
	}
}

func TestRecolor_InlineStyleDeclarations(t *testing.T) {
	t.Parallel()

	svg := `<svg><path style="fill:#000000;stroke: none" /></svg>`
	got := Recolor(svg, "#FF00FF")
	if !strings.Contains(got, "fill:#FF00FF") {
		t.Fatalf("style fill not rewritten: %s", got)
	}
	if !strings.Contains(got, "stroke: none") {
		t.Fatalf("style stroke:none must stay: %s", got)
	}
}

func TestRecolor_AttributeNameCaseInsensitive(t *testing.T) {
	t.Parallel()

	svg := `<svg><path FILL="#000000"/></svg>`
	got := Recolor(svg, "#FF0000")
	if !strings.Contains(got, `FILL="#FF0000"`) {
		t.Fatalf("uppercase attr not rewritten: %s", got)
	}
}

func TestRecolor_NoMatchReturnsUnchanged(t *testing.T) {
	t.Parallel()

	svg := `<svg><path d="M0 0h16v16H0z"/></svg>`
	if got := Recolor(svg, "#FF0000"); got != svg {
		t.Fatalf("want unchanged, got: %s", got)
	}
}

func TestRecolor_FillOpacityNotTouched(t *testing.T) {
	t.Parallel()

	svg := `<svg><path fill-opacity="0.4" fill="#222222"/></svg>`
	got := Recolor(svg, "#FF0000")
	if !strings.Contains(got, `fill-opacity="0.4"`) {
		t.Fatalf("fill-opacity was rewritten: %s", got)
	}
	if !strings.Contains(got, `fill="#FF0000"`) {
		t.Fatalf("fill not rewritten: %s", got)
	}
}
