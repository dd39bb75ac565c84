package linear

import (
	"errors"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestLinearEquationSolution(t *testing.T) {
	data := []Equation{
		{[]int{}, []int{}},         // empty system
		{[]int{5, 10}, []int{18}},  // 5x + 10y = 18
		{[]int{5, 3}, []int{0}},    // 5x + 3y = 0
		{[]int{64, -41}, []int{1}}, // 64x - 41y = 1
		{[]int{2}, []int{}},        // 2x = 0
	}

	testCases := []struct {
		name string
		exp  Substitution
		err  error
	}{
		{"EmptyEqn", Substitution{}, nil},
		{"5x+10y=18", nil, ErrNoSolution},
		{"5x+3y=0",
			Substitution{
				0: Equation{[]int{0, 0, 0, 3}, []int{0}},
				1: Equation{[]int{0, 0, 0, -5}, []int{0}},
			}, nil},
		{"64x-41y=1",
			Substitution{
				0: Equation{[]int{0, 0, 0, 0, 0, 0, -41}, []int{-16}},
				1: Equation{[]int{0, 0, 0, 0, 0, 0, -64}, []int{-25}},
			}, nil},
		{"2x=0", Substitution{0: Equation{[]int{0}, []int{}}}, nil},
	}

	for ind, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := data[ind].Solution()
			if !errors.Is(err, tc.err) {
				t.Fatalf("Expected error %v, got %v instead", tc.err, err)
			}
			if tc.err == nil && !cmp.Equal(res, tc.exp) {
				t.Errorf("Expected %v, got %v instead", tc.exp, res)
			}
		})
	}
}

func TestEmptySystemWithConstants(t *testing.T) {
	if _, err := (Equation{[]int{}, []int{5}}).Solution(); !errors.Is(err, ErrNoSolution) {
		t.Errorf("0 = 5 should have no solution, got %v", err)
	}
}

func TestAllZeroCoefficientsIsBadProblem(t *testing.T) {
	if _, err := (Equation{[]int{0, 0}, []int{1}}).Solution(); !errors.Is(err, ErrBadProblem) {
		t.Errorf("all-zero coefficient vector should be rejected, got %v", err)
	}
}

func TestLinearSolutionProperties(t *testing.T) {

	// equations of the form Ax = 0 always have solution 0
	singleVarEqualsZeroIsZero :=
		func(coeff int) bool {
			if coeff == 0 {
				return true
			}

			eqn := Equation{[]int{coeff}, []int{0}}
			sol := Substitution{0: Equation{[]int{0}, []int{0}}}
			res, err := eqn.Solution()
			return err == nil && cmp.Equal(res, sol)
		}

	// equations of the form Ax + Ay = 0 always have solution 0, -1
	twoVarsEqualZeroSameCoeffIsSubtraction :=
		func(coeff int) bool {
			if coeff == 0 {
				return true
			}

			eqn := Equation{[]int{coeff, coeff}, []int{0}}
			sol := Substitution{0: Equation{[]int{0, -1}, []int{0}}}
			res, err := eqn.Solution()
			return err == nil && cmp.Equal(res, sol)
		}

	if err := quick.Check(singleVarEqualsZeroIsZero, nil); err != nil {
		t.Errorf("Equation of form Ax = 0 had incorrect solution with A: %v", err)
	}

	if err := quick.Check(twoVarsEqualZeroSameCoeffIsSubtraction, nil); err != nil {
		t.Errorf("Equation of form Ax + Ay = 0 had incorrect solution with A: %v", err)
	}
}

// solutionSatisfies plugs the parametric solution back into the system:
// folding every recorded equation scaled by its variable's coefficient must
// cancel the coefficient columns and reproduce the constants exactly.
// Surviving variables stand for the parameter of their own column, and
// recorded vectors shorter than the final width read as zero.
func solutionSatisfies(eqn Equation, subst Substitution) bool {
	width := len(eqn.Coefficients)
	for _, sub := range subst {
		if len(sub.Coefficients) > width {
			width = len(sub.Coefficients)
		}
	}
	at := func(ns []int, i int) int {
		if i < len(ns) {
			return ns[i]
		}
		return 0
	}

	for j := 0; j < width; j++ {
		total := 0
		for i, c := range eqn.Coefficients {
			if sub, ok := subst[i]; ok {
				total += c * at(sub.Coefficients, j)
			} else if i == j {
				total += c
			}
		}
		if total != 0 {
			return false
		}
	}
	for k := range eqn.Constants {
		total := 0
		for i, c := range eqn.Coefficients {
			if sub, ok := subst[i]; ok {
				total += c * at(sub.Constants, k)
			}
		}
		if total != eqn.Constants[k] {
			return false
		}
	}
	return true
}

func TestSolutionSatisfiesSystem(t *testing.T) {
	systems := []Equation{
		{[]int{64, -41}, []int{1}},
		{[]int{5, 3}, []int{0}},
		{[]int{2, 1, -3}, []int{}},
		{[]int{12, 34, 41, 7}, []int{5, -2}},
		{[]int{1058, 24}, []int{2}},
	}
	for _, eqn := range systems {
		res, err := eqn.Solution()
		if err != nil {
			t.Errorf("Expected a solution for %v, got %v", eqn, err)
			continue
		}
		if !solutionSatisfies(eqn, res) {
			t.Errorf("Solution %v does not satisfy %v", res, eqn)
		}
	}
}

func TestSolverTerminatesOnLargeCoefficients(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("solutions up to 10^6 are exact or correctly absent", prop.ForAll(
		func(a, b, d int) bool {
			if a == 0 || b == 0 {
				return true
			}
			eqn := Equation{[]int{a, b}, []int{d}}
			res, err := eqn.Solution()
			if errors.Is(err, ErrNoSolution) {
				// only a gcd obstruction may block a two-variable equation
				return d%gcd(a, b) != 0
			}
			return err == nil && solutionSatisfies(eqn, res)
		},
		gen.IntRange(-1000000, 1000000),
		gen.IntRange(-1000000, 1000000),
		gen.IntRange(-1000000, 1000000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
