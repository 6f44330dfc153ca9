package cryptarithm

import (
	"fmt"
	"strings"

	"github.com/finito-solver/finito/pkg/finito"
	"github.com/finito-solver/finito/pkg/finito/constraint"
)

// Puzzle is a cryptarithmetic equation of the form
// WORD + WORD [+ WORD ...] = WORD, where every word is a sequence of
// uppercase letters and every distinct letter stands for a distinct
// decimal digit.
type Puzzle struct {
	Addends []string
	Sum     string

	// distinct letters in first-appearance order
	letters []finito.Identifier
}

// Parse splits an equation string like "SEND + MORE = MONEY" into a
// Puzzle.
func Parse(equation string) (*Puzzle, error) {
	sides := strings.Split(equation, "=")
	if len(sides) != 2 {
		return nil, fmt.Errorf("invalid equation (%s): expected exactly one '='", equation)
	}
	sum := strings.TrimSpace(sides[1])
	var addends []string
	for _, w := range strings.Split(sides[0], "+") {
		addends = append(addends, strings.TrimSpace(w))
	}
	if len(addends) < 2 {
		return nil, fmt.Errorf("invalid equation (%s): expected at least two addends", equation)
	}

	p := &Puzzle{Addends: addends, Sum: sum}
	seen := map[finito.Identifier]struct{}{}
	for _, word := range append(append([]string{}, addends...), sum) {
		if word == "" {
			return nil, fmt.Errorf("invalid equation (%s): empty word", equation)
		}
		for _, r := range word {
			if r < 'A' || r > 'Z' {
				return nil, fmt.Errorf("invalid letter %q in word %q: words are uppercase A-Z", r, word)
			}
			id := finito.Identifier(r)
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				p.letters = append(p.letters, id)
			}
		}
	}
	return p, nil
}

// Letters returns the distinct letters in first-appearance order.
func (p *Puzzle) Letters() []finito.Identifier {
	return p.letters
}

// Encode builds the constraint instance for the puzzle. Every letter
// gets a digit variable in [0,9], all letters are pairwise distinct,
// and no word starts with zero. The arithmetic identity is encoded as
// a chain of per-column equations with an explicit carry variable per
// column; with singleSum set, it is instead one positional
// weighted-sum equation over the letters. The two forms are
// functionally equivalent.
func (p *Puzzle) Encode(singleSum bool) (*finito.Instance, error) {
	instance := finito.NewInstance()
	for _, id := range p.letters {
		if err := instance.Declare(id, 0, 9); err != nil {
			return nil, err
		}
	}
	if err := instance.Assert(constraint.AllDistinct(p.letters...)); err != nil {
		return nil, err
	}
	for _, word := range append(append([]string{}, p.Addends...), p.Sum) {
		if err := instance.Assert(constraint.Exclude(finito.Identifier(word[0]), 0)); err != nil {
			return nil, err
		}
	}

	if singleSum {
		return instance, p.assertWeightedSum(instance)
	}
	return instance, p.assertCarryChain(instance)
}

// assertWeightedSum folds the positional weights of every letter
// occurrence into one coefficient per letter and asserts a single
// linear equation with target zero.
func (p *Puzzle) assertWeightedSum(instance *finito.Instance) error {
	coefs := map[finito.Identifier]int{}
	for _, word := range p.Addends {
		accumulate(coefs, word, 1)
	}
	accumulate(coefs, p.Sum, -1)

	terms := make([]constraint.Term, 0, len(p.letters))
	for _, id := range p.letters {
		if coefs[id] == 0 {
			continue
		}
		terms = append(terms, constraint.Term{Var: id, Coef: coefs[id]})
	}
	return instance.Assert(constraint.LinearEq(0, terms...))
}

func accumulate(coefs map[finito.Identifier]int, word string, sign int) {
	weight := 1
	for i := len(word) - 1; i >= 0; i-- {
		coefs[finito.Identifier(word[i])] += sign * weight
		weight *= 10
	}
}

// assertCarryChain asserts one equation per digit column: the column's
// addend digits plus the incoming carry equal the sum digit plus ten
// times the outgoing carry. Carries are auxiliary variables in [0,9];
// the most significant column has no outgoing carry.
func (p *Puzzle) assertCarryChain(instance *finito.Instance) error {
	width := len(p.Sum)
	for _, word := range p.Addends {
		if len(word) > width {
			width = len(word)
		}
	}

	carry := func(col int) finito.Identifier {
		return finito.Identifier(fmt.Sprintf("carry%d", col))
	}

	for col := 0; col < width; col++ {
		var terms []constraint.Term
		for _, word := range p.Addends {
			if col < len(word) {
				terms = append(terms, constraint.Term{Var: finito.Identifier(word[len(word)-1-col]), Coef: 1})
			}
		}
		if col > 0 {
			terms = append(terms, constraint.Term{Var: carry(col), Coef: 1})
		}
		if col < len(p.Sum) {
			terms = append(terms, constraint.Term{Var: finito.Identifier(p.Sum[len(p.Sum)-1-col]), Coef: -1})
		}
		if col < width-1 {
			if err := instance.Declare(carry(col+1), 0, 9); err != nil {
				return err
			}
			terms = append(terms, constraint.Term{Var: carry(col + 1), Coef: -10})
		}
		if err := instance.Assert(constraint.LinearEq(0, terms...)); err != nil {
			return err
		}
	}
	return nil
}

// Value resolves a word to the number it spells under the model.
func Value(model finito.Model, word string) int {
	n := 0
	for _, r := range word {
		n = n*10 + model[finito.Identifier(r)]
	}
	return n
}

// Decode renders the equation with every letter replaced by its digit
// from the model.
func (p *Puzzle) Decode(model finito.Model) string {
	parts := make([]string, len(p.Addends))
	for i, word := range p.Addends {
		parts[i] = fmt.Sprintf("%d", Value(model, word))
	}
	return fmt.Sprintf("%s = %d", strings.Join(parts, " + "), Value(model, p.Sum))
}

// String renders the puzzle in its original letter form.
func (p *Puzzle) String() string {
	return fmt.Sprintf("%s = %s", strings.Join(p.Addends, " + "), p.Sum)
}
