// Package linear finds most general integer solutions of linear Diophantine
// equation systems that share a single coefficient vector.
package linear

import (
	"errors"
	"math"

	"github.com/dmcclean/agum/util"
)

// Represents a system of linear Diophantine equations with a shared
// left-hand side: one equation `sum c[j]*x[j] = d[k]` per constant d[k],
// or the single homogeneous equation `sum c[j]*x[j] = 0` when Constants
// is empty.
type Equation struct {
	Coefficients []int
	Constants    []int
}

// A substitution on linear Diophantine equations, where the integer keys
// are an index into the coefficient list, representing the variable that
// the coefficient is applied to. Indexes at or beyond the length of the
// original coefficient list denote variables introduced during solving.
type Substitution map[int]Equation

var (
	// ErrNoSolution reports that the system has no integer solution.
	ErrNoSolution = errors.New("linear: no solution")
	// ErrBadProblem reports an elimination state with no non-zero
	// coefficient while variables remain, which cannot be reached from a
	// well-formed system and indicates a defect in the caller's reduction.
	ErrBadProblem = errors.New("linear: no non-zero coefficient left")
)

// Find the non-zero coefficient closest to zero in the list. Return the
// index at which the smallest non-zero element was found, and the element
// itself in that order. The index is -1 when every entry is zero.
func smallest(coeffs []int) (int, int) {
	small := math.MaxInt
	ind := -1
	for i, c := range coeffs {
		if c != 0 && util.AbsInt(c) < util.AbsInt(small) {
			small = c
			ind = i
		}
	}
	return ind, small
}

// Negate all the integers in a list.
func negate(ns []int) []int {
	nr := make([]int, len(ns))
	for i, n := range ns {
		nr[i] = -n
	}
	return nr
}

// Replace the integer at index i in a list with 0.
func zeroAt(index int, ns []int) []int {
	nr := make([]int, len(ns))
	copy(nr, ns)
	nr[index] = 0
	return nr
}

// Check if every number in a list is divisible by a given divisor.
func divisible(divisor int, ns []int) bool {
	res := true
	for _, n := range ns {
		res = res && util.Modulo(n, divisor) == 0
	}
	return res
}

// Divide every number in a list by the given divisor.
func divide(divisor int, ns []int) []int {
	nr := make([]int, len(ns))
	for i, n := range ns {
		nr[i] = util.DivFloor(n, divisor)
	}
	return nr
}

// Compute xs + n*ys pointwise, padding the shorter list with zeros.
func addMul(n int, xs []int, ys []int) []int {
	resLen := len(xs)
	if len(ys) > resLen {
		resLen = len(ys)
	}
	nr := make([]int, resLen)

	for i := 0; i < resLen; i++ {
		if i >= len(ys) {
			nr[i] = xs[i]
		} else if i >= len(xs) {
			nr[i] = n * ys[i]
		} else {
			nr[i] = xs[i] + n*ys[i]
		}
	}
	return nr
}

// Eliminate the variable at index i if it occurs in eqn, by substituting the
// defining equation orig for it. Returns a copy of eqn modified such that
// the variable i has been removed.
func elim(i int, orig Equation, eqn Equation) Equation {
	if i >= len(eqn.Coefficients) || eqn.Coefficients[i] == 0 {
		res := Equation{make([]int, len(eqn.Coefficients)), make([]int, len(eqn.Constants))}
		copy(res.Coefficients, eqn.Coefficients)
		copy(res.Constants, eqn.Constants)
		return res
	}
	return Equation{
		addMul(eqn.Coefficients[i], zeroAt(i, eqn.Coefficients), orig.Coefficients),
		addMul(eqn.Coefficients[i], eqn.Constants, orig.Constants),
	}
}

// Eliminate a variable from the substitution. If the variable is in the
// original problem, add its defining equation to the substitution; in either
// case fold the equation into every previously recorded one, so recorded
// equations never reference an eliminated variable.
func eliminate(varCount int, elimInd int, orig Equation, subst Substitution) Substitution {
	res := make(Substitution, len(subst)+1)
	for k, v := range subst {
		res[k] = elim(elimInd, orig, v)
	}
	if elimInd < varCount {
		res[elimInd] = orig
	}
	return res
}

// Find a most general solution for the linear Diophantine equation system,
// if one exists. The returned substitution maps each eliminated variable
// index to its defining equation over the surviving and introduced variable
// indexes; variables absent from the substitution are unconstrained.
//
// The elimination follows the classic GCD-style descent: repeatedly select
// the non-zero coefficient closest to zero, eliminate its variable outright
// when it divides everything in sight, and otherwise reduce the remaining
// coefficients modulo it while introducing one new variable, which strictly
// shrinks the smallest coefficient and so terminates.
func (eqn Equation) Solution() (Substitution, error) {
	if len(eqn.Coefficients) == 0 {
		for _, d := range eqn.Constants {
			if d != 0 {
				return nil, ErrNoSolution
			}
		}
		return Substitution{}, nil
	}

	working := eqn
	varCount := len(eqn.Coefficients)
	subst := make(Substitution)
	for {
		smInd, smVal := smallest(working.Coefficients)

		// a system with variables left but only zero coefficients cannot
		// arise from a well-formed reduction
		if smInd < 0 {
			return nil, ErrBadProblem
		}

		// make sure the coefficient closest to zero is positive
		if smVal < 0 {
			working = Equation{negate(working.Coefficients), negate(working.Constants)}
			continue
		}

		// a unit coefficient eliminates its variable outright
		if smVal == 1 {
			el := Equation{negate(zeroAt(smInd, working.Coefficients)), working.Constants}
			return eliminate(varCount, smInd, el, subst), nil
		}

		// if the coefficients are all divisible by the smallest non-zero
		// coefficient, solvability hinges on the constants alone
		if divisible(smVal, working.Coefficients) {
			if !divisible(smVal, working.Constants) {
				return nil, ErrNoSolution
			}
			divCoeffs := divide(smVal, working.Coefficients)
			divConsts := divide(smVal, working.Constants)
			el := Equation{negate(zeroAt(smInd, divCoeffs)), divConsts}
			return eliminate(varCount, smInd, el, subst), nil
		}

		// otherwise introduce a new variable and continue with the
		// coefficients reduced modulo the smallest
		coeffs := divide(smVal, zeroAt(smInd, working.Coefficients))
		el := Equation{append(negate(coeffs), 1), []int{}}

		subst = eliminate(varCount, smInd, el, subst)

		nextCoeffs := make([]int, len(working.Coefficients))
		for i, m := range working.Coefficients {
			nextCoeffs[i] = util.Modulo(m, smVal)
		}
		working = Equation{
			append(nextCoeffs, smVal),
			working.Constants,
		}
	}
}
