package operator_test

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/GriffinCanCode/AgentOS/calculator/operator"
)

func ExampleElementaryArithmeticOperator() {
	div := operator.MustBigIntArithmeticOperator(operator.Division)

	q, _ := div.Calculate(big.NewInt(-7), big.NewInt(2))
	fmt.Println(q)

	_, err := div.Calculate(big.NewInt(1), big.NewInt(0))
	fmt.Println(errors.Is(err, operator.ErrDivisionByZero))
	// Output:
	// -3
	// true
}

func ExampleLogarithmOperator() {
	log := operator.LogarithmOperator{}

	_, err := log.Calculate(1, 10)
	fmt.Println(err)
	// Output: invalid argument base=1: base must be positive and not 1
}

func ExampleTrigOperator() {
	sec := operator.MustTrigOperator(operator.Sec)

	v, _ := sec.Calculate(0)
	fmt.Println(v)
	// Output: 1
}
