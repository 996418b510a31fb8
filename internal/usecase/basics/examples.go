package basics

import (
	"fmt"
	"strconv"
)

// Example is one literal invocation with its rendered inputs and output.
type Example struct {
	Function string `json:"function"`
	Input    string `json:"input"`
	Output   string `json:"output"`
}

func (e Example) String() string {
	return fmt.Sprintf("Input: %s | Function: %s | Output: %s", e.Input, e.Function, e.Output)
}

// Examples evaluates the fixed set of literal invocations, in order.
func Examples() []Example {
	return []Example{
		AddExample(5, 3),
		ConcatExample("Hello", "World"),
		IsEvenExample(4),
		IsEvenExample(7),
		GreetExample(DefaultGreetName),
		FutureAgeExample(30, 5),
		IsTallExample(5.9),
		SumMessageExample(5, 3),
		HelloExample("World"),
	}
}

func AddExample(a, b int) Example {
	return Example{
		Function: "Add",
		Input:    fmt.Sprintf("%d, %d", a, b),
		Output:   strconv.Itoa(Add(a, b)),
	}
}

func ConcatExample(a, b string) Example {
	return Example{
		Function: "Concat",
		Input:    fmt.Sprintf("%q, %q", a, b),
		Output:   strconv.Quote(Concat(a, b)),
	}
}

func IsEvenExample(n int) Example {
	return Example{
		Function: "IsEven",
		Input:    strconv.Itoa(n),
		Output:   strconv.FormatBool(IsEven(n)),
	}
}

func GreetExample(name string) Example {
	return Example{
		Function: "Greet",
		Input:    strconv.Quote(name),
		Output:   strconv.Quote(Greet(name)),
	}
}

func FutureAgeExample(age, years int) Example {
	return Example{
		Function: "FutureAge",
		Input:    fmt.Sprintf("%d, %d", age, years),
		Output:   strconv.Itoa(FutureAge(age, years)),
	}
}

// IsTallExample renders the height with one decimal place.
func IsTallExample(heightFeet float64) Example {
	return Example{
		Function: "IsTall",
		Input:    strconv.FormatFloat(heightFeet, 'f', 1, 64),
		Output:   strconv.FormatBool(IsTall(heightFeet)),
	}
}

func SumMessageExample(a, b int) Example {
	return Example{
		Function: "SumMessage",
		Input:    fmt.Sprintf("%d, %d", a, b),
		Output:   strconv.Quote(SumMessage(a, b)),
	}
}

func HelloExample(name string) Example {
	return Example{
		Function: "Hello",
		Input:    strconv.Quote(name),
		Output:   strconv.Quote(Hello(name)),
	}
}
