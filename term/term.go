// Package term implements the additive normal form for terms over a free
// Abelian group: a signed multiset of variables plus an integer offset.
package term

import (
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dmcclean/agum/util"
)

// Represents an Abelian group term as a linear combination of variables with
// signed integer exponents, plus a constant offset. The implementation uses a
// dictionary as a form of signed multiset, where an element in the set can
// have more than one occurrence (represented by a positive exponent) or even
// negative occurrences (represented by a negative exponent). If an element
// has exactly zero occurrences, it is removed from the dictionary, so the
// zero value of both fields is the group identity.
type Term struct {
	// The variables of the term and their associated exponents.
	Vars map[string]int
	// The constant offset of the term.
	Const int
}

// Create the identity term, with no variables and a zero offset.
func Identity() Term {
	return Term{map[string]int{}, 0}
}

// Create a single variable term with exponent 1.
func Variable(name string) Term {
	return Term{map[string]int{name: 1}, 0}
}

// Create a constant term with the given offset.
func Constant(n int) Term {
	return Term{map[string]int{}, n}
}

// True if the term has no variables and a zero offset.
func (t Term) IsIdentity() bool {
	return len(t.Vars) == 0 && t.Const == 0
}

// True if the term has no variables.
func (t Term) IsConstant() bool {
	return len(t.Vars) == 0
}

// Get the variables of the term without their associated exponents,
// sorted by name.
func (t Term) Free() []string {
	free := maps.Keys(t.Vars)
	slices.Sort(free)
	return free
}

// Get the exponent of the given variable name within this term.
// Returns 0 if the variable is not present.
func (t Term) ExponentOf(v string) int {
	if e, ok := t.Vars[v]; ok {
		return e
	}
	return 0
}

// Negate all the exponents and the offset of the term.
func (t Term) Invert() Term {
	inverted := Term{maps.Clone(t.Vars), -t.Const}
	for k, v := range inverted.Vars {
		inverted.Vars[k] = -v
	}
	return inverted
}

// Multiply every exponent and the offset by k. Scaling by zero yields the
// identity term, since every entry cancels.
func (t Term) Scale(k int) Term {
	if k == 0 {
		return Identity()
	}
	scaled := Term{maps.Clone(t.Vars), t.Const * k}
	for v, e := range scaled.Vars {
		scaled.Vars[v] = e * k
	}
	return scaled
}

// Combine two terms via summing. Variables that appear in both terms have
// their exponents added, and entries that cancel to zero are removed.
func (t Term) Add(other Term) Term {
	mergeAdd := func(l, r int) int { return l + r }
	expNotZero := func(v int) bool { return v != 0 }
	vars := util.MergeMaps(t.Vars, other.Vars, mergeAdd)
	vars = util.MapFilterValue(vars, expNotZero)
	return Term{vars, t.Const + other.Const}
}

// Removes the given term from this term. Equivalent to `t.Add(other.Invert())`.
func (t Term) Subtract(other Term) Term {
	return t.Add(other.Invert())
}

// True if the two terms are equal modulo the Abelian group axioms, i.e. have
// identical normal forms.
func (t Term) Equal(other Term) bool {
	return t.Const == other.Const && maps.Equal(t.Vars, other.Vars)
}

// Render the term canonically: variables sorted by name, the constant offset
// last, exponent 1 elided and -1 shown as a leading minus. The identity term
// renders as "0".
func (t Term) String() string {
	if t.IsIdentity() {
		return "0"
	}
	var sb strings.Builder
	first := true
	emit := func(coeff int, name string) {
		if first {
			if coeff < 0 {
				sb.WriteByte('-')
			}
			first = false
		} else if coeff < 0 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}
		abs := util.AbsInt(coeff)
		if abs != 1 || name == "" {
			sb.WriteString(strconv.Itoa(abs))
		}
		sb.WriteString(name)
	}
	for _, v := range t.Free() {
		emit(t.Vars[v], v)
	}
	if t.Const != 0 {
		emit(t.Const, "")
	}
	return sb.String()
}
