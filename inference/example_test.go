package inference_test

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/lvlid/demos"
	"github.com/katalvlaran/lvlid/inference"
)

// ExampleEngine_MEU solves the oil wildcatter problem.
func ExampleEngine_MEU() {
	id, err := demos.OilWildcatter()
	if err != nil {
		fmt.Println(err)
		return
	}
	e, err := inference.NewEngine(id)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = e.MakeInference(context.Background()); err != nil {
		fmt.Println(err)
		return
	}
	meu, _ := e.MEU()
	test, _ := id.NodeByName("Test")
	choice, _ := e.BestDecisionChoice(test)
	v, _ := id.Variable(test)

	fmt.Printf("MEU %.1f, test: %s\n", meu, v.Label(choice))
	// Output:
	// MEU 22.5, test: yes
}

// ExampleEngine_DisplayResult prints the policy of the observed chain.
func ExampleEngine_DisplayResult() {
	id, _ := demos.ObservedChain()
	e, _ := inference.NewEngine(id)
	_ = e.MakeInference(context.Background())
	_ = e.DisplayResult(os.Stdout)
	// Output:
	// MEU: 10
	// decision D: d0
	//   <A:a0> d1
	//   <A:a1> d0
}
