// Package basics holds the pure helpers of the functions example.
package basics

import "fmt"

// Add returns a + b.
func Add(a, b int) int {
	return a + b
}

// Concat joins a and b with exactly one ASCII space.
func Concat(a, b string) string {
	return a + " " + b
}

// IsEven reports whether n is divisible by two. Zero and negative values included.
func IsEven(n int) bool {
	return n%2 == 0
}

// DefaultGreetName is used when Greet receives an empty name.
const DefaultGreetName = "Ch"

func Greet(name string) string {
	if name == "" {
		name = DefaultGreetName
	}
	return "Hello " + name + ", this is a random message!"
}

// FutureAge is the age reached after the given number of years.
func FutureAge(age, years int) int {
	return age + years
}

// TallThresholdFeet is the height a person must exceed to count as tall.
const TallThresholdFeet = 6.0

func IsTall(heightFeet float64) bool {
	return heightFeet > TallThresholdFeet
}

// SumMessage renders Add as a sentence.
func SumMessage(a, b int) string {
	return fmt.Sprintf("The sum of %d and %d is %d", a, b, Add(a, b))
}

func Hello(name string) string {
	return "Hello, " + name + "!"
}
