package term

// An equation pairs two terms whose equality modulo the Abelian group axioms
// is to be solved.
type Equation struct {
	Left  Term
	Right Term
}

func (eq Equation) String() string {
	return eq.Left.String() + " = " + eq.Right.String()
}
