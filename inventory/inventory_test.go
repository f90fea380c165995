package inventory

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStandardTablesPriority(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, inv := range Standard() {
		if err := CheckPriority(inv); err != nil {
			t.Errorf("standard table violates priority order: %v", err)
		}
	}
}

func TestTableSizes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	if Onset().Len() != 16 {
		t.Errorf("expected 16 onset symbols, have %d", Onset().Len())
	}
	if Nucleus().Len() != 17 {
		t.Errorf("expected 17 nucleus symbols, have %d", Nucleus().Len())
	}
	if Coda().Len() != 13 {
		t.Errorf("expected 13 coda symbols, have %d", Coda().Len())
	}
	if Onset().At(0) != "ʷɯi" {
		t.Errorf("expected highest priority onset to be 'ʷɯi', is %q", Onset().At(0))
	}
	if Onset().At(Onset().Len()-1) != "ʷ" {
		t.Errorf("expected lowest priority onset to be 'ʷ', is %q", Onset().At(Onset().Len()-1))
	}
	if Onset().MaxRunes() != 3 {
		t.Errorf("expected longest onset to have 3 runes, has %d", Onset().MaxRunes())
	}
}

func TestCheckPriorityShadowed(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	inv := New("coda", "m", "ŋ", "ŋʷ")
	err := CheckPriority(inv)
	if err == nil {
		t.Fatalf("expected 'ŋ' to shadow 'ŋʷ'")
	}
	var perr *PriorityError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a PriorityError, have %T", err)
	}
	if perr.Prefix != "ŋ" || perr.Symbol != "ŋʷ" || perr.PrefixPos != 1 || perr.Pos != 2 {
		t.Errorf("unexpected violation reported: %v", perr)
	}
}

func TestInventoryAccess(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	inv := New("test", "ab", "", "a", "b")
	if inv.Len() != 3 {
		t.Fatalf("expected empty symbol to be dropped, have %d symbols", inv.Len())
	}
	if inv.Index("a") != 1 || inv.Index("x") != -1 {
		t.Errorf("index lookup broken: a=%d, x=%d", inv.Index("a"), inv.Index("x"))
	}
	if !inv.Contains("b") || inv.Contains("ba") {
		t.Errorf("contains broken")
	}
	syms := inv.Symbols()
	syms[0] = "zz"
	if inv.At(0) != "ab" {
		t.Errorf("Symbols() must return a copy")
	}
	if s := inv.String(); s != "test[ab a b]" {
		t.Errorf("unexpected string representation %q", s)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected At() to panic for index out of range")
		}
	}()
	inv.At(3)
}
