// SPDX-License-Identifier: MIT

package solver_test

import (
	"fmt"

	"sableye/bateman"
	"sableye/fuel"
	"sableye/isotope"
	"sableye/rates"
	"sableye/solver"
)

// ExampleReactor_Evolve builds a two-isotope decay generator, advances
// the state through one half-life of the parent and prints the result.
func ExampleReactor_Evolve() {
	parent := isotope.MustParse("0902340000")
	child := isotope.MustParse("0912340000")
	tracked := []isotope.Code{parent, child}

	// ln(2) decay constant makes dt=1 exactly one half-life.
	table := rates.DecayTable{
		parent: {Lambda: 0.6931471805599453, Children: []isotope.Code{child}, Probs: []float64{1}},
	}

	b, _ := bateman.NewBuilder(tracked)
	_ = b.AddDecay(table)

	reactor, _ := solver.NewReactor(b.Export())
	st, _ := fuel.New(tracked, []float64{1, 0})
	_ = reactor.Evolve(st, 1)

	cur := st.Current()
	fmt.Printf("parent %.3f child %.3f steps %d\n", cur[0], cur[1], st.Steps())
	// Output: parent 0.500 child 0.500 steps 2
}

// ExampleScheme_Apply shows that the identity scheme is a recorded
// no-op: the vector is unchanged but the history grows by one row.
func ExampleScheme_Apply() {
	u235 := isotope.MustParse("0922350000")
	u238 := isotope.MustParse("0922380000")

	st, _ := fuel.New([]isotope.Code{u235, u238}, []float64{0.25, 0.75})
	noop, _ := solver.NewIdentityScheme(2)
	_ = noop.Apply(st)

	fmt.Println(st.Current(), st.Steps())
	// Output: [0.25 0.75] 2
}
