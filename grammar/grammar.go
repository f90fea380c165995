/*
Package grammar builds the composite matching grammar for rimes.

The grammar is a single regular expression

    ^(onset₁|onset₂|…)?(nucleus₁|nucleus₂|…)(coda₁|coda₂|…)?

with one capturing group per part of the rime. Go's regexp package uses
leftmost-first semantics, i.e. alternatives are tried from left to right and
the first one leading to a match wins. The order of the inventories therefore
is the one and only means of disambiguation.

Building a grammar is a pure function of the inventories and cannot fail.
The grammar for the standard inventories is built once on first use and
shared afterwards.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grammar

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/npillmayer/rime/inventory"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Capturing group indices for the parts of a rime.
const (
	OnsetGroup   = 1
	NucleusGroup = 2
	CodaGroup    = 3
)

// Grammar is a compiled composite grammar. It is immutable and safe for
// concurrent use.
type Grammar struct {
	source string
	re     *regexp.Regexp
}

// Build creates a grammar from three inventories. The onset and coda groups
// are optional, the nucleus group is mandatory.
func Build(onset, nucleus, coda *inventory.Inventory) *Grammar {
	source := fmt.Sprintf("^%s?%s%s?", group(onset), group(nucleus), group(coda))
	g := &Grammar{
		source: source,
		re:     regexp.MustCompile(source),
	}
	CT().Debugf("built rime grammar %s", source)
	return g
}

// group joins the symbols of an inventory to a single capturing alternation.
func group(inv *inventory.Inventory) string {
	syms := inv.Symbols()
	for i, sym := range syms {
		syms[i] = regexp.QuoteMeta(sym)
	}
	return "(" + strings.Join(syms, "|") + ")"
}

var (
	defaultOnce    sync.Once
	defaultGrammar *Grammar
)

// Default returns the grammar for the standard inventories. It is built on
// first call; concurrent first calls are safe.
func Default() *Grammar {
	defaultOnce.Do(func() {
		inv := inventory.Standard()
		defaultGrammar = Build(inv[0], inv[1], inv[2])
	})
	return defaultGrammar
}

// Match applies the grammar at the start of s. If no nucleus can be found,
// ok is false. Optional parts which did not participate in the match are
// returned as empty strings. Match does not check whether the match extends
// to the end of s.
func (g *Grammar) Match(s string) (onset, nucleus, coda string, ok bool) {
	m := g.re.FindStringSubmatchIndex(s)
	if m == nil {
		CT().Debugf("grammar: no match for %q", s)
		return "", "", "", false
	}
	onset = submatch(s, m, OnsetGroup)
	nucleus = submatch(s, m, NucleusGroup)
	coda = submatch(s, m, CodaGroup)
	CT().Debugf("grammar: %q => [%s|%s|%s]", s, onset, nucleus, coda)
	return onset, nucleus, coda, true
}

func submatch(s string, m []int, grp int) string {
	if m[2*grp] < 0 {
		return ""
	}
	return s[m[2*grp]:m[2*grp+1]]
}

// String returns the source of the regular expression.
func (g *Grammar) String() string {
	return g.source
}
