package assembler

import "sort"

// SymbolTable maps labels to addresses. A label defined twice keeps the
// address of its last definition.
type SymbolTable map[string]int

// Symbol is one symbol table entry.
type Symbol struct {
	Label   string
	Address int
}

// Define assigns addr to label and reports the address it replaced, if any.
func (s SymbolTable) Define(label string, addr int) (prev int, redefined bool) {
	prev, redefined = s[label]
	s[label] = addr
	return prev, redefined
}

// Lookup returns the address of label.
func (s SymbolTable) Lookup(label string) (int, bool) {
	addr, ok := s[label]
	return addr, ok
}

// Sorted returns the entries ordered by address, then label.
func (s SymbolTable) Sorted() []Symbol {
	out := make([]Symbol, 0, len(s))
	for label, addr := range s {
		out = append(out, Symbol{Label: label, Address: addr})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Address != out[j].Address {
			return out[i].Address < out[j].Address
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// Clone returns an independent copy of the table.
func (s SymbolTable) Clone() SymbolTable {
	out := make(SymbolTable, len(s))
	for label, addr := range s {
		out[label] = addr
	}
	return out
}
