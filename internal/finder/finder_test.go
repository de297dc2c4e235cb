package finder

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dtstyler/dtstyler/internal/style"
)

func testStyles() []style.Style {
	return []style.Style{
		{Name: "Cinematic", Prompt: "[prompt] one"},
		{Name: "Anime Classic", Prompt: "[prompt] two"},
		{Name: "Dark Anime", Prompt: "[prompt] three"},
		{Name: "Watercolor", Prompt: "[prompt] four"},
		{Name: "anime sketch", Prompt: "[prompt] five"},
	}
}

func TestResolveIndexShortcut(t *testing.T) {
	styles := testStyles()

	// Every valid 1-based index resolves to exactly that entry
	for i := 1; i <= len(styles); i++ {
		t.Run(fmt.Sprintf("index %d", i), func(t *testing.T) {
			matches, err := Resolve(fmt.Sprintf("%d", i), styles)
			if err != nil {
				t.Fatalf("Resolve(%d) error = %v", i, err)
			}
			if len(matches) != 1 {
				t.Fatalf("Resolve(%d) returned %d matches, want 1", i, len(matches))
			}
			if matches[0].Index != i-1 {
				t.Errorf("Resolve(%d).Index = %d, want %d", i, matches[0].Index, i-1)
			}
			if matches[0].Style.Name != styles[i-1].Name {
				t.Errorf("Resolve(%d).Style.Name = %q, want %q", i, matches[0].Style.Name, styles[i-1].Name)
			}
		})
	}
}

func TestResolveIndexWithWhitespace(t *testing.T) {
	matches, err := Resolve("  2  ", testStyles())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if matches[0].Index != 1 {
		t.Errorf("Resolve(\"  2  \").Index = %d, want 1", matches[0].Index)
	}
}

func TestResolveOutOfRangeIntegerFallsThrough(t *testing.T) {
	styles := testStyles()

	// "0" and "99" are not valid positions, so they become substring queries
	for _, q := range []string{"0", "99", "-1"} {
		_, err := Resolve(q, styles)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve(%q) error = %v, want ErrNotFound", q, err)
		}
	}

	// A style whose name is a number stays reachable by text
	numbered := append(styles, style.Style{Name: "Style 99", Prompt: "[prompt]"})
	matches, err := Resolve("99", numbered)
	if err != nil {
		t.Fatalf("Resolve(\"99\") error = %v", err)
	}
	if len(matches) != 1 || matches[0].Style.Name != "Style 99" {
		t.Errorf("Resolve(\"99\") = %+v, want the numbered style", matches)
	}
}

func TestResolveSubstringCaseInsensitive(t *testing.T) {
	matches, err := Resolve("ANIME", testStyles())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("Resolve(\"ANIME\") returned %d matches, want 3", len(matches))
	}

	// Matches arrive in collection order
	wantIndexes := []int{1, 2, 4}
	wantNames := []string{"Anime Classic", "Dark Anime", "anime sketch"}
	for i, m := range matches {
		if m.Index != wantIndexes[i] {
			t.Errorf("matches[%d].Index = %d, want %d", i, m.Index, wantIndexes[i])
		}
		if m.Style.Name != wantNames[i] {
			t.Errorf("matches[%d].Name = %q, want %q", i, m.Style.Name, wantNames[i])
		}
	}
}

func TestResolvePartialWord(t *testing.T) {
	matches, err := Resolve("water", testStyles())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(matches) != 1 || matches[0].Style.Name != "Watercolor" {
		t.Errorf("Resolve(\"water\") = %+v, want Watercolor", matches)
	}
}

func TestResolveNotFound(t *testing.T) {
	_, err := Resolve("oil painting", testStyles())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve() error = %v, want ErrNotFound", err)
	}
}

func TestResolveEmptyCollection(t *testing.T) {
	_, err := Resolve("anything", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve() on empty collection error = %v, want ErrNotFound", err)
	}
}

func TestResolveOne(t *testing.T) {
	styles := testStyles()

	match, err := ResolveOne("water", styles)
	if err != nil {
		t.Fatalf("ResolveOne() error = %v", err)
	}
	if match.Style.Name != "Watercolor" {
		t.Errorf("ResolveOne().Name = %q, want %q", match.Style.Name, "Watercolor")
	}

	_, err = ResolveOne("anime", styles)
	if !errors.Is(err, ErrAmbiguous) {
		t.Errorf("ResolveOne(\"anime\") error = %v, want ErrAmbiguous", err)
	}

	_, err = ResolveOne("nope", styles)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ResolveOne(\"nope\") error = %v, want ErrNotFound", err)
	}
}
