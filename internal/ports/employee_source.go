package ports

import "github.com/aalvaropc/primer/internal/domain"

// EmployeeSource loads the directory records in their original order.
type EmployeeSource interface {
	LoadEmployees() ([]domain.Employee, error)
}
