/*
Package scanner implements a rime engine which does not use regular expressions.

The scanner walks the input rune by rune. At a given position it subscribes
one recognizer per inventory symbol to a rune publisher and feeds runes to
them until every recognizer has either accepted or aborted. Accepted
recognizers yield the candidate symbols at that position, ordered by their
priority within the inventory.

The search for a decomposition then follows the same order a backtracking
matcher for the grammar

    (onset…)? (nucleus…) (coda…)?

would follow: onset candidates in order of priority, then no onset at all;
for each of these, nucleus candidates in order of priority. The first
nucleus found fixes the result; the coda is the first coda candidate
following it, if any. Results are therefore identical to the ones of the
grammar engine, for every input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scanner

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/rime"
	"github.com/npillmayer/rime/inventory"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Engine is a rime engine scanning for inventory symbols. It is immutable
// and safe for concurrent use; every call to Match works on its own set of
// recognizers.
type Engine struct {
	onset, nucleus, coda *inventory.Inventory
}

// New creates a scanner engine for three inventories.
func New(onset, nucleus, coda *inventory.Inventory) *Engine {
	return &Engine{onset: onset, nucleus: nucleus, coda: coda}
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns a scanner engine for the standard inventories.
func Default() *Engine {
	defaultOnce.Do(func() {
		inv := inventory.Standard()
		defaultEngine = New(inv[0], inv[1], inv[2])
	})
	return defaultEngine
}

// Match is part of interface rime.Engine.
func (e *Engine) Match(s string) (rime.Parts, bool) {
	var parts rime.Parts
	onsets := append(Candidates(e.onset, s), "") // no onset has lowest priority
	for _, o := range onsets {
		nuclei := Candidates(e.nucleus, s[len(o):])
		if len(nuclei) == 0 {
			continue
		}
		n := nuclei[0]
		parts[rime.Onset], parts[rime.Nucleus] = o, n
		if codas := Candidates(e.coda, s[len(o)+len(n):]); len(codas) > 0 {
			parts[rime.Coda] = codas[0]
		}
		CT().Debugf("scanner: %q => [%s|%s|%s]", s, parts[rime.Onset], parts[rime.Nucleus],
			parts[rime.Coda])
		return parts, true
	}
	CT().Debugf("scanner: no match for %q", s)
	return parts, false
}

// Candidates returns all symbols of inv which are a prefix of s, in order of
// priority.
func Candidates(inv *inventory.Inventory, s string) []string {
	if inv.Len() == 0 || s == "" {
		return nil
	}
	var accepted []int
	harvest := func(subscr rime.RuneSubscriber) {
		rec := subscr.(*rime.Recognizer)
		if rec.Accepted() {
			accepted = append(accepted, rec.UserData.(int))
		}
	}
	publisher := rime.NewRunePublisher(harvest)
	for i := 0; i < inv.Len(); i++ {
		publisher.SubscribeMe(rime.NewSymbolRecognizer(inv.At(i), i))
	}
	for _, r := range s {
		if r == utf8.RuneError {
			break
		}
		publisher.PublishRuneEvent(r)
		if publisher.Len() == 0 {
			break
		}
	}
	publisher.Close() // symbols longer than the rest of s
	sort.Ints(accepted)
	candidates := make([]string, len(accepted))
	for i, prio := range accepted {
		candidates[i] = inv.At(prio)
	}
	if len(candidates) > 0 {
		CT().Debugf("scanner: %s candidates for %q: %s", inv.Name(), s,
			strings.Join(candidates, " "))
	}
	return candidates
}
