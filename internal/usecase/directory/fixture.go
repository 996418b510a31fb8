package directory

import "github.com/aalvaropc/primer/internal/domain"

// DefaultEmployees returns a fresh copy of the built-in five-record directory.
func DefaultEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: 101, FirstName: "Alice", LastName: "Smith", Department: "Engineering", YearsOfService: 5},
		{ID: 102, FirstName: "Bob", LastName: "Johnson", Department: "Marketing", YearsOfService: 2},
		{ID: 103, FirstName: "Charlie", LastName: "Williams", Department: "Engineering", YearsOfService: 8},
		{ID: 104, FirstName: "Diana", LastName: "Brown", Department: "HR", YearsOfService: 3},
		{ID: 105, FirstName: "Edward", LastName: "Jones", Department: "Engineering", YearsOfService: 1},
	}
}

// Fixture serves DefaultEmployees through the ports.EmployeeSource interface.
type Fixture struct{}

func (Fixture) LoadEmployees() ([]domain.Employee, error) {
	return DefaultEmployees(), nil
}
