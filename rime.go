package rime

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/rime/grammar"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidRimeFormat is the kind of all errors reporting a rime which cannot
// be decomposed. Use errors.Is to check for it.
var ErrInvalidRimeFormat = errors.New("invalid rime format")

// InvalidRimeError is returned for inputs which do not conform to the
// onset? nucleus coda? format, either because nothing matches or because
// symbols are left over after the best match.
type InvalidRimeError struct {
	Rime string
}

func (e *InvalidRimeError) Error() string {
	return fmt.Sprintf("rime %q does not conform to onset? nucleus coda? format (韻「%s」格式不合法)",
		e.Rime, e.Rime)
}

// Is makes InvalidRimeError match ErrInvalidRimeFormat.
func (e *InvalidRimeError) Is(target error) bool {
	return target == ErrInvalidRimeFormat
}

// Parts is the result of a decomposition, indexed by SegmentKind.
// Onset and coda may be empty, the nucleus of a valid rime never is.
type Parts [3]string

// Get returns the part for a segment kind. Get panics if k is invalid.
func (p Parts) Get(k SegmentKind) string {
	return p[k]
}

// Map returns the parts as a map keyed by segment kind.
func (p Parts) Map() map[SegmentKind]string {
	m := make(map[SegmentKind]string, len(kinds))
	for _, k := range kinds {
		m[k] = p[k]
	}
	return m
}

// String concatenates onset, nucleus and coda.
func (p Parts) String() string {
	return p[Onset] + p[Nucleus] + p[Coda]
}

// Format prints the parts with labels, one part per kind, separated by blanks.
// The label function is usually SegmentKind.Label.
func (p Parts) Format(label func(SegmentKind) string) string {
	var sb strings.Builder
	for i, k := range kinds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(label(k))
		sb.WriteString("：")
		sb.WriteString(p[k])
	}
	return sb.String()
}

// Engine is a matching strategy for rimes. Match tries to match a prefix of s
// as onset? nucleus coda?. It is not required to consume all of s.
type Engine interface {
	Match(s string) (Parts, bool)
}

type grammarEngine struct {
	g *grammar.Grammar
}

func (e grammarEngine) Match(s string) (Parts, bool) {
	var p Parts
	o, n, c, ok := e.g.Match(s)
	if !ok {
		return p, false
	}
	p[Onset], p[Nucleus], p[Coda] = o, n, c
	return p, true
}

// GrammarEngine returns an engine using the default grammar.
func GrammarEngine() Engine {
	return grammarEngine{g: grammar.Default()}
}

// EngineFor returns an engine using grammar g.
func EngineFor(g *grammar.Grammar) Engine {
	return grammarEngine{g: g}
}

// Decompose splits a rime into onset, nucleus and coda, using the default
// grammar. If rime cannot be decomposed completely, an *InvalidRimeError is
// returned.
func Decompose(rime string) (Parts, error) {
	return DecomposeWith(GrammarEngine(), rime)
}

// DecomposeWith splits a rime using a given engine. The parts found by the
// engine have to reproduce rime exactly, otherwise an *InvalidRimeError is
// returned.
func DecomposeWith(e Engine, rime string) (Parts, error) {
	parts, ok := e.Match(rime)
	if !ok {
		CT().Errorf("no match for rime %q", rime)
		return Parts{}, &InvalidRimeError{Rime: rime}
	}
	if parts.String() != rime {
		CT().Errorf("rime %q only partially matched by [%s|%s|%s]", rime,
			parts[Onset], parts[Nucleus], parts[Coda])
		return Parts{}, &InvalidRimeError{Rime: rime}
	}
	CT().Debugf("rime %q = [%s|%s|%s]", rime, parts[Onset], parts[Nucleus], parts[Coda])
	return parts, nil
}

// DecomposeNormalized converts rime to Unicode normalization form NFC before
// decomposing it. The parts returned reproduce the normalized input, which may
// differ from rime in its byte representation.
func DecomposeNormalized(rime string) (Parts, error) {
	nfc := norm.NFC.String(rime)
	if nfc != rime {
		CT().Debugf("rime %q normalized to %q", rime, nfc)
	}
	return Decompose(nfc)
}
