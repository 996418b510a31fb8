package yamldirectory

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

// Loader reads a directory of employees from a YAML file.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

var _ ports.EmployeeSource = (*Loader)(nil)

func (l *Loader) LoadEmployees() ([]domain.Employee, error) {
	b, err := os.ReadFile(l.path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamldirectory.load",
			Kind: domain.KindNotFound,
			Path: l.path,
			Err:  err,
		}
	}

	var yd yamlDirectory
	if err := yaml.Unmarshal(b, &yd); err != nil {
		return nil, &domain.OpError{
			Op:   "yamldirectory.load",
			Kind: domain.KindInvalidConfig,
			Path: l.path,
			Err:  err,
		}
	}

	return mapAndValidate(l.path, yd)
}

type yamlDirectory struct {
	Employees []yamlEmployee `yaml:"employees"`
}

type yamlEmployee struct {
	ID             int    `yaml:"id"`
	FirstName      string `yaml:"first_name"`
	LastName       string `yaml:"last_name"`
	Department     string `yaml:"department"`
	YearsOfService *int   `yaml:"years_of_service"`
}

func mapAndValidate(path string, yd yamlDirectory) ([]domain.Employee, error) {
	out := make([]domain.Employee, 0, len(yd.Employees))
	seen := make(map[int]int, len(yd.Employees))

	for i, ye := range yd.Employees {
		prefix := fmt.Sprintf("employees[%d]", i)

		if ye.ID <= 0 {
			return nil, invalidField(path, prefix+".id", "id must be a positive integer")
		}
		if prev, dup := seen[ye.ID]; dup {
			return nil, invalidField(path, prefix+".id", fmt.Sprintf("duplicate id %d (also employees[%d])", ye.ID, prev))
		}
		seen[ye.ID] = i

		first := strings.TrimSpace(ye.FirstName)
		last := strings.TrimSpace(ye.LastName)
		dept := strings.TrimSpace(ye.Department)
		if first == "" {
			return nil, invalidField(path, prefix+".first_name", "first_name is required")
		}
		if last == "" {
			return nil, invalidField(path, prefix+".last_name", "last_name is required")
		}
		if dept == "" {
			return nil, invalidField(path, prefix+".department", "department is required")
		}
		if ye.YearsOfService == nil {
			return nil, invalidField(path, prefix+".years_of_service", "years_of_service is required")
		}
		if *ye.YearsOfService < 0 {
			return nil, invalidField(path, prefix+".years_of_service", "years_of_service must not be negative")
		}

		out = append(out, domain.Employee{
			ID:             ye.ID,
			FirstName:      first,
			LastName:       last,
			Department:     dept,
			YearsOfService: *ye.YearsOfService,
		})
	}

	return out, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamldirectory.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
