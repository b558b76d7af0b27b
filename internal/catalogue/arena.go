package catalogue

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Arena hands out scratch operands for cases that mutate their input in
// place. Every scratch operand belongs to exactly one case.
type Arena struct {
	owned map[string]*mat.Dense
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{owned: make(map[string]*mat.Dense)}
}

// Scratch returns a private copy of init owned by owner.
func (a *Arena) Scratch(owner string, init mat.Matrix) (*mat.Dense, error) {
	if _, ok := a.owned[owner]; ok {
		return nil, fmt.Errorf("scratch operand for %q already allocated", owner)
	}
	m := mat.DenseCopyOf(init)
	a.owned[owner] = m
	return m, nil
}

// Owners returns how many scratch operands have been handed out.
func (a *Arena) Owners() int {
	return len(a.owned)
}
