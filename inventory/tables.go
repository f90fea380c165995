package inventory

import "sync"

// Onset glides and clusters. Combinations have the highest priority, the bare
// labialisation mark ʷ the lowest: it matches only if nothing else does.
var onsetSymbols = []string{
	"ʷɯi",
	"ʷi", "ʷɨ", "ʷɯ", "ɯi",
	"i", "j", "u", "w",
	"ɨ", "ɻ", "ʵ",
	"ɯ", "ɣ", "r",
	"ʷ",
}

// Nucleus vowels. No symbol is a prefix of another one.
var nucleusSymbols = []string{
	"i", "ɨ", "ɪ", "ɯ", "u",
	"e", "ɘ", "ə", "o", "ɤ",
	"ɛ", "ɐ", "ʌ", "ɔ", "ɑ",
	"æ", "a",
}

// Coda consonants and glides.
var codaSymbols = []string{
	"u", "w", "i", "j", // 陰聲韻 -i -u
	"ŋʷ", "ng", "m", "n", "ŋ", // 陽聲韻 -m -n -ng
	"p", "t", "kʷ", "k", // 入聲韻 -p -t -k
}

var (
	tablesOnce sync.Once
	onset      *Inventory
	nucleus    *Inventory
	coda       *Inventory
)

func setupTables() {
	onset = New("onset", onsetSymbols...)
	nucleus = New("nucleus", nucleusSymbols...)
	coda = New("coda", codaSymbols...)
	CT().Debugf("rime inventories: %s %s %s", onset, nucleus, coda)
}

// Onset returns the standard inventory of onset glides.
func Onset() *Inventory {
	tablesOnce.Do(setupTables)
	return onset
}

// Nucleus returns the standard inventory of nucleus vowels.
func Nucleus() *Inventory {
	tablesOnce.Do(setupTables)
	return nucleus
}

// Coda returns the standard inventory of coda consonants and glides.
func Coda() *Inventory {
	tablesOnce.Do(setupTables)
	return coda
}

// Standard returns the onset, nucleus and coda inventories, in this order.
func Standard() [3]*Inventory {
	tablesOnce.Do(setupTables)
	return [3]*Inventory{onset, nucleus, coda}
}
