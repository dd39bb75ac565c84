package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmcclean/agum/linear"
	"github.com/dmcclean/agum/logger"
	"github.com/dmcclean/agum/parse"
	"github.com/dmcclean/agum/term"
	"github.com/dmcclean/agum/unify"
)

// solveBatch reads one equation per line until end of input, printing the
// canonicalized problem, its unifier and its matcher for each. A malformed
// or unsolvable line is reported and never aborts the batch.
func solveBatch(r io.Reader, w io.Writer) error {
	log := logger.Logger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		eq, err := parse.Equation(line)
		if err != nil {
			log.Debug().Str("line", line).Err(err).Msg("rejected input line")
			fmt.Fprintf(w, "Error:     %v\n", err)
			continue
		}
		fmt.Fprintf(w, "Problem:   %v\n", eq)
		fmt.Fprintf(w, "Unifier:   %s\n", solve(eq, unify.Unify))
		fmt.Fprintf(w, "Matcher:   %s\n", solve(eq, unify.Match))
	}
	return scanner.Err()
}

func solve(eq term.Equation, via func(t0, t1 term.Term) (unify.Substitution, error)) string {
	subst, err := via(eq.Left, eq.Right)
	switch {
	case err == nil:
		return subst.String()
	case errors.Is(err, linear.ErrNoSolution):
		return "no solution"
	default:
		// anything else means the reduction built a malformed system
		log := logger.Logger()
		log.Error().Stringer("problem", eq).Err(err).Msg("solver invariant violation")
		return fmt.Sprintf("internal error: %v", err)
	}
}
