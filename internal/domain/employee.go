package domain

import "fmt"

// Employee is a single directory record.
type Employee struct {
	ID             int    `json:"id" yaml:"id"`
	FirstName      string `json:"first_name" yaml:"first_name"`
	LastName       string `json:"last_name" yaml:"last_name"`
	Department     string `json:"department" yaml:"department"`
	YearsOfService int    `json:"years_of_service" yaml:"years_of_service"`
}

// FullName joins first and last name with a single space.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e Employee) String() string {
	return fmt.Sprintf("ID: %d, Name: %s, Department: %s, Service Years: %d",
		e.ID, e.FullName(), e.Department, e.YearsOfService)
}
