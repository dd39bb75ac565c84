// Package unify solves unification and matching problems over the equational
// theory of Abelian groups, by reduction to linear Diophantine systems.
package unify

import (
	"strings"

	"github.com/rjNemo/underscore"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dmcclean/agum/linear"
	"github.com/dmcclean/agum/term"
)

// A substitution from variable names to terms. Applying it to both sides of
// the problem it was produced for makes them equal modulo the group axioms.
type Substitution map[string]term.Term

// A single variable binding of a substitution.
type Maplet struct {
	Var  string
	Term term.Term
}

func (m Maplet) String() string {
	return m.Var + " -> " + m.Term.String()
}

// Maplets returns the bindings of the substitution sorted by variable name.
func (s Substitution) Maplets() []Maplet {
	names := maps.Keys(s)
	slices.Sort(names)
	return underscore.Map(names, func(v string) Maplet { return Maplet{v, s[v]} })
}

func (s Substitution) String() string {
	parts := underscore.Map(s.Maplets(), func(m Maplet) string { return m.String() })
	return "[" + strings.Join(parts, ", ") + "]"
}

// Apply the substitution to a term. Variables without a binding are kept.
func (s Substitution) Apply(t term.Term) term.Term {
	out := term.Constant(t.Const)
	for v, e := range t.Vars {
		if rep, ok := s[v]; ok {
			out = out.Add(rep.Scale(e))
		} else {
			out = out.Add(term.Variable(v).Scale(e))
		}
	}
	return out
}

// Match generates a substitution that, when applied to t0, makes it equal to
// t1 with respect to the equational rules for Abelian groups. The variables
// of t1 are treated as fixed constants and are never instantiated. Generated
// variables in the result carry the reserved prefix and are derived from the
// solver's column indexes. Returns linear.ErrNoSolution when no such
// substitution exists.
func Match(t0, t1 term.Term) (Substitution, error) {
	// terms that already share a normal form need no instantiation
	if t0.Equal(t1) {
		return Substitution{}, nil
	}
	if t0.IsConstant() {
		return nil, linear.ErrNoSolution
	}

	// put the constant offset of t0 on the right-hand side, so that the
	// matching side only has variables
	right := t1.Subtract(term.Constant(t0.Const))

	// fix a traversal order for the variable maps, so that solver column
	// indexes line up across construction and reconstruction
	ordVars := t0.Free()
	ordRightVars := right.Free()

	coeffs := underscore.Map(ordVars, func(v string) int { return t0.Vars[v] })
	consts := underscore.Map(ordRightVars, func(v string) int { return right.Vars[v] })

	// the constant offset of the right-hand side occupies one extra column
	numCol := -1
	if right.Const != 0 {
		numCol = len(consts)
		consts = append(consts, right.Const)
	}

	solution, err := linear.Equation{Coefficients: coeffs, Constants: consts}.Solution()
	if err != nil {
		return nil, err
	}

	// convert the linear substitution variable indexes back into named
	// variables and terms
	res := Substitution{}
	for i, v := range ordVars {
		sub, ok := solution[i]
		if !ok {
			// never eliminated, so unconstrained: bind it to the generated
			// variable of its own column
			res[v] = term.Variable(term.FreshVar(i))
			continue
		}
		out := term.Identity()
		for j, c := range sub.Coefficients {
			out = out.Add(term.Variable(term.FreshVar(j)).Scale(c))
		}
		// constant columns below numCol pair with the right-hand side's
		// variables; recorded constant vectors may be shorter than the
		// final width, with absent entries reading as zero
		for cj, name := range ordRightVars {
			if cj < len(sub.Constants) {
				out = out.Add(term.Variable(name).Scale(sub.Constants[cj]))
			}
		}
		if numCol >= 0 && numCol < len(sub.Constants) {
			out = out.Add(term.Constant(sub.Constants[numCol]))
		}
		res[v] = out
	}
	return res, nil
}

// Unify generates a most general unifier that, when applied to both t0 and
// t1, makes the resulting terms equal with respect to the equational rules
// for Abelian groups. Since the theory has subtraction, unification reduces
// to matching the difference of the two terms against the identity. Returns
// linear.ErrNoSolution when the terms cannot be unified.
func Unify(t0, t1 term.Term) (Substitution, error) {
	return Match(t0.Subtract(t1), term.Identity())
}
