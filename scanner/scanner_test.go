package scanner

import (
	"reflect"
	"testing"

	"github.com/npillmayer/rime"
	"github.com/npillmayer/rime/grammar"
	"github.com/npillmayer/rime/inventory"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCandidates(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	c := Candidates(inventory.Onset(), "ʷɯiɛ")
	expected := []string{"ʷɯi", "ʷɯ", "ʷ"}
	if !reflect.DeepEqual(c, expected) {
		t.Errorf("expected onset candidates %v, have %v", expected, c)
	}
	c = Candidates(inventory.Coda(), "kʷ")
	expected = []string{"kʷ", "k"}
	if !reflect.DeepEqual(c, expected) {
		t.Errorf("expected coda candidates %v, have %v", expected, c)
	}
	if c = Candidates(inventory.Nucleus(), "ŋ"); len(c) != 0 {
		t.Errorf("expected no nucleus candidates for 'ŋ', have %v", c)
	}
	if c = Candidates(inventory.Nucleus(), ""); len(c) != 0 {
		t.Errorf("expected no candidates for empty input, have %v", c)
	}
}

func TestScannerDecompose(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tests := map[string]rime.Parts{
		"ɑ":    {"", "ɑ", ""},
		"uŋ":   {"", "u", "ŋ"},
		"ui":   {"u", "i", ""},
		"ʷɯa":  {"ʷɯ", "a", ""},
		"iɐp":  {"i", "ɐ", "p"},
		"ʷɯi":  {"ʷɯ", "i", ""},
		"ɯiɛm": {"ɯi", "ɛ", "m"},
	}
	for input, expected := range tests {
		parts, err := rime.DecomposeWith(Default(), input)
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		if parts != expected {
			t.Errorf("%q: expected %v, have %v", input, expected, parts)
		}
	}
	for _, input := range []string{"", "abc", "cde"} {
		if _, err := rime.DecomposeWith(Default(), input); err == nil {
			t.Errorf("expected %q to be rejected", input)
		}
	}
}

// Both engines have to agree on every input, valid or not.
func TestEnginesAgree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	scan := Default()
	regex := rime.EngineFor(grammar.Default())
	symbols := map[string]bool{"": true, "x": true, "ʷ": true}
	for _, inv := range inventory.Standard() {
		for _, sym := range inv.Symbols() {
			symbols[sym] = true
		}
	}
	syms := make([]string, 0, len(symbols))
	for sym := range symbols {
		syms = append(syms, sym)
	}
	n := 0
	for _, a := range syms {
		for _, b := range syms {
			for _, c := range []string{"", "x", "ŋ", "ʷ", "i", "kʷ"} {
				input := a + b + c
				p1, ok1 := scan.Match(input)
				p2, ok2 := regex.Match(input)
				if ok1 != ok2 || (ok1 && p1 != p2) {
					t.Errorf("%q: scanner says %v/%v, grammar says %v/%v", input, p1, ok1, p2, ok2)
				}
				n++
			}
		}
	}
	t.Logf("compared %d inputs", n)
}
