package einops

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gomlx/tensorshape/shape"
)

func TestParseSimplePattern(t *testing.T) {
	p, err := Parse("b h w c -> b c h w")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Pattern{
		Input: Side{Atoms: []Atom{Axis{"b"}, Axis{"h"}, Axis{"w"}, Axis{"c"}}},
		Output: Side{Atoms: []Atom{Axis{"b"}, Axis{"c"}, Axis{"h"}, Axis{"w"}}},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("Parse result mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCompositeAndEllipsis(t *testing.T) {
	p, err := Parse("... (h w) c ->... h w c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Pattern{
		Input: Side{Atoms: []Atom{
			Ellipsis{},
			Composite{Atoms: []Atom{Axis{"h"}, Axis{"w"}}},
			Axis{"c"},
		}},
		Output: Side{Atoms: []Atom{Ellipsis{}, Axis{"h"}, Axis{"w"}, Axis{"c"}}},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("Parse result mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsEmptySide(t *testing.T) {
	if _, err := Parse(" -> a b"); shape.ClassifierOf(err) != shape.EmptyPattern {
		t.Fatalf("got classifier %v, want EmptyPattern", shape.ClassifierOf(err))
	}
}

func TestParseRejectsMissingArrow(t *testing.T) {
	if _, err := Parse("a b c"); shape.ClassifierOf(err) != shape.MultipleArrows {
		t.Fatalf("got classifier %v, want MultipleArrows", shape.ClassifierOf(err))
	}
}

func TestParseRejectsMultipleArrows(t *testing.T) {
	if _, err := Parse("a -> b -> c"); shape.ClassifierOf(err) != shape.MultipleArrows {
		t.Fatalf("got classifier %v, want MultipleArrows", shape.ClassifierOf(err))
	}
}

func TestParseRejectsUnmatchedParen(t *testing.T) {
	if _, err := Parse("(a b -> a b"); shape.ClassifierOf(err) != shape.UnmatchedParen {
		t.Fatalf("got classifier %v, want UnmatchedParen", shape.ClassifierOf(err))
	}
}

func TestParseRejectsDuplicateIdentifier(t *testing.T) {
	if _, err := Parse("a a -> a"); shape.ClassifierOf(err) != shape.DuplicateIdentifier {
		t.Fatalf("got classifier %v, want DuplicateIdentifier", shape.ClassifierOf(err))
	}
}

func TestParseRejectsMultipleEllipses(t *testing.T) {
	if _, err := Parse("... a... -> a"); shape.ClassifierOf(err) != shape.MultipleEllipses {
		t.Fatalf("got classifier %v, want MultipleEllipses", shape.ClassifierOf(err))
	}
}
