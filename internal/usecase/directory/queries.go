package directory

import (
	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/usecase/query"
)

// Experienced returns the employees of department with strictly more than
// minYears of service.
func Experienced(emps []domain.Employee, department string, minYears int) []domain.Employee {
	return Filter(emps, func(e domain.Employee) bool {
		return e.Department == department && e.YearsOfService > minYears
	})
}

// InDepartment returns the employees of department.
func InDepartment(emps []domain.Employee, department string) []domain.Employee {
	return Filter(emps, func(e domain.Employee) bool {
		return e.Department == department
	})
}

// NamesIn projects the employees of department to "First Last".
func NamesIn(emps []domain.Employee, department string) []string {
	return Map(InDepartment(emps, department), domain.Employee.FullName)
}

// Where returns the employees matching a parsed query expression.
func Where(emps []domain.Employee, node query.Node) []domain.Employee {
	return Filter(emps, func(e domain.Employee) bool {
		return query.Match(node, e)
	})
}
