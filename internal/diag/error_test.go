package diag_test

import (
	"strings"
	"testing"

	"github.com/KingWilliamsGPT/temptacious/internal/diag"
	"github.com/KingWilliamsGPT/temptacious/internal/source"
)

func TestErrorFormatting(t *testing.T) {
	err := diag.Errorf(diag.TplNameNotFound, "name %q does not exist in context", "user").
		WithRaw("user.name").
		At(source.Span{Start: 5, End: 18}, 2)

	msg := err.Error()
	for _, piece := range []string{"TPL3001", `name "user" does not exist`, "'user.name'", "at 2nd line"} {
		if !strings.Contains(msg, piece) {
			t.Errorf("error message %q missing %q", msg, piece)
		}
	}
}

func TestErrorWithoutLocation(t *testing.T) {
	msg := diag.Errorf(diag.TplEmptyBlock, "empty block").Error()
	if strings.Contains(msg, "line") {
		t.Errorf("locationless error should not mention a line: %q", msg)
	}
	if !strings.HasPrefix(msg, "TPL2001") {
		t.Errorf("expected code prefix, got %q", msg)
	}
}

func TestCodeClassification(t *testing.T) {
	structural := []diag.Code{
		diag.TplEmptyBlock, diag.TplUnterminatedBlock,
		diag.TplForMissingIn, diag.TplForBadHeader, diag.TplIfMissingCondition,
	}
	for _, c := range structural {
		if !c.Structural() {
			t.Errorf("%v should be structural", c)
		}
		if c.Resolution() {
			t.Errorf("%v should not be resolution", c)
		}
	}

	resolution := []diag.Code{
		diag.TplNameNotFound, diag.TplAttrNotFound,
		diag.TplNotIterable, diag.TplNotIndexable, diag.TplCallFailed,
	}
	for _, c := range resolution {
		if !c.Resolution() {
			t.Errorf("%v should be resolution", c)
		}
		if c.Structural() {
			t.Errorf("%v should not be structural", c)
		}
	}

	for _, c := range []diag.Code{diag.TplUnknownDirective, diag.TplEmptyExpression} {
		if c.Structural() || c.Resolution() {
			t.Errorf("%v should be its own taxonomy kind", c)
		}
	}
}

func TestBagSortAndMerge(t *testing.T) {
	a := diag.NewBag(4)
	a.Add(diag.NewError(diag.TplEmptyBlock, source.Span{Start: 20, End: 22}, "later"))
	a.Add(diag.NewError(diag.TplEmptyBlock, source.Span{Start: 3, End: 5}, "earlier"))

	b := diag.NewBag(4)
	b.Add(diag.NewError(diag.TplNameNotFound, source.Span{Start: 10, End: 12}, "middle"))

	a.Merge(b)
	a.Sort()

	items := a.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(items))
	}
	wantOrder := []string{"earlier", "middle", "later"}
	for i, w := range wantOrder {
		if items[i].Message != w {
			t.Errorf("position %d: got %q, want %q", i, items[i].Message, w)
		}
	}
	if !a.HasErrors() {
		t.Error("bag with errors should report HasErrors")
	}
}

func TestBagCap(t *testing.T) {
	b := diag.NewBag(1)
	if !b.Add(diag.NewError(diag.TplEmptyBlock, source.Span{}, "first")) {
		t.Fatal("first add should fit")
	}
	if b.Add(diag.NewError(diag.TplEmptyBlock, source.Span{}, "second")) {
		t.Error("second add should be dropped by the cap")
	}
	if b.Len() != 1 {
		t.Errorf("len: got %d, want 1", b.Len())
	}
}
