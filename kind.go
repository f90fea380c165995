package rime

import (
	"fmt"

	"github.com/npillmayer/rime/grammar"
	"github.com/npillmayer/rime/inventory"
	"golang.org/x/text/language"
)

// SegmentKind is one of the three parts of a rime.
type SegmentKind int8

// Parts of a rime, in order of appearance.
const (
	Onset   SegmentKind = iota // 韻頭
	Nucleus                    // 韻腹
	Coda                       // 韻尾
)

var kinds = [...]SegmentKind{Onset, Nucleus, Coda}

// Kinds returns all segment kinds in fixed order Onset, Nucleus, Coda.
func Kinds() []SegmentKind {
	k := kinds
	return k[:]
}

var kindNames = [...]string{"Onset", "Nucleus", "Coda"}

var labels = [...][3]string{
	{"韻頭", "韻腹", "韻尾"},
	{"onset", "nucleus", "coda"},
}

// Languages of labels, in the same order as labels.
// The first language is used as fallback.
var labelMatch = language.NewMatcher([]language.Tag{
	language.Chinese,
	language.English,
})

func (k SegmentKind) valid() bool {
	return k >= Onset && k <= Coda
}

func (k SegmentKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("SegmentKind(%d)", int8(k))
	}
	return kindNames[k]
}

// Label returns the traditional Chinese label for k, e.g. “韻頭” for Onset.
func (k SegmentKind) Label() string {
	return k.LabelFor(language.Chinese)
}

// LabelFor returns a human readable label for k in a given language.
// Chinese and English labels are available; for other languages the
// Chinese label is returned.
func (k SegmentKind) LabelFor(tag language.Tag) string {
	if !k.valid() {
		return k.String()
	}
	_, index, confidence := labelMatch.Match(tag)
	if confidence == language.No || index >= len(labels) {
		index = 0
	}
	return labels[index][k]
}

// Group returns the index of the capturing group of the grammar for k.
func (k SegmentKind) Group() int {
	switch k {
	case Onset:
		return grammar.OnsetGroup
	case Nucleus:
		return grammar.NucleusGroup
	case Coda:
		return grammar.CodaGroup
	}
	return 0
}

// Inventory returns the standard symbol inventory for k.
func (k SegmentKind) Inventory() *inventory.Inventory {
	if !k.valid() {
		return nil
	}
	return inventory.Standard()[k]
}
