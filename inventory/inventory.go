package inventory

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Inventory is an ordered list of candidate symbols for one part of a rime.
// Position in the list is match priority: lower indices are tried first.
type Inventory struct {
	name    string
	symbols *arraylist.List
}

// New creates an inventory from a list of symbols, in order of priority.
// Empty symbols are dropped, as they would match everywhere.
func New(name string, symbols ...string) *Inventory {
	inv := &Inventory{name: name, symbols: arraylist.New()}
	for _, sym := range symbols {
		if sym == "" {
			CT().Errorf("inventory %s: dropping empty symbol", name)
			continue
		}
		inv.symbols.Add(sym)
	}
	return inv
}

// Name returns the name of the inventory, e.g. "onset".
func (inv *Inventory) Name() string {
	return inv.name
}

// Len returns the number of symbols.
func (inv *Inventory) Len() int {
	if inv == nil {
		return 0
	}
	return inv.symbols.Size()
}

// At returns the symbol at priority position i.
// At panics if i is out of range.
func (inv *Inventory) At(i int) string {
	sym, ok := inv.symbols.Get(i)
	if !ok {
		panic(fmt.Sprintf("inventory %s: index out of range, [%d] in [0:%d]",
			inv.name, i, inv.Len()))
	}
	return sym.(string)
}

// Symbols returns a copy of the symbols in priority order.
func (inv *Inventory) Symbols() []string {
	syms := make([]string, 0, inv.Len())
	it := inv.symbols.Iterator()
	for it.Next() {
		syms = append(syms, it.Value().(string))
	}
	return syms
}

// Contains is true if sym is one of the symbols of inv.
func (inv *Inventory) Contains(sym string) bool {
	return inv.symbols.Contains(sym)
}

// Index returns the priority position of sym, or -1 if sym is not part of inv.
func (inv *Inventory) Index(sym string) int {
	it := inv.symbols.Iterator()
	for it.Next() {
		if it.Value().(string) == sym {
			return it.Index()
		}
	}
	return -1
}

// MaxRunes returns the length in runes of the longest symbol.
func (inv *Inventory) MaxRunes() int {
	l := 0
	it := inv.symbols.Iterator()
	for it.Next() {
		if n := len([]rune(it.Value().(string))); n > l {
			l = n
		}
	}
	return l
}

func (inv *Inventory) String() string {
	return fmt.Sprintf("%s[%s]", inv.name, strings.Join(inv.Symbols(), " "))
}

// --- Priority invariant ----------------------------------------------------

// PriorityError flags a pair of symbols in wrong order: Prefix is a proper
// prefix of Symbol, but is listed before it and will therefore always win.
type PriorityError struct {
	Inventory      string
	Prefix, Symbol string
	PrefixPos, Pos int
}

func (e *PriorityError) Error() string {
	return fmt.Sprintf("inventory %s: %q at position %d shadows %q at position %d",
		e.Inventory, e.Prefix, e.PrefixPos, e.Symbol, e.Pos)
}

// CheckPriority verifies that no symbol of inv is shadowed by a prefix of it
// listed earlier. It returns a *PriorityError for the first violation found.
func CheckPriority(inv *Inventory) error {
	syms := inv.Symbols()
	for i, sym := range syms {
		for j := 0; j < i; j++ {
			if len(syms[j]) < len(sym) && strings.HasPrefix(sym, syms[j]) {
				CT().Errorf("inventory %s: %q shadows %q", inv.name, syms[j], sym)
				return &PriorityError{
					Inventory: inv.name,
					Prefix:    syms[j],
					Symbol:    sym,
					PrefixPos: j,
					Pos:       i,
				}
			}
		}
	}
	return nil
}
