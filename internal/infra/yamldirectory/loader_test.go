package yamldirectory

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/primer/internal/domain"
)

func TestLoadEmployees(t *testing.T) {
	emps, err := NewLoader(filepath.Join("testdata", "employees.yaml")).LoadEmployees()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(emps) != 3 {
		t.Fatalf("expected 3 employees, got %d", len(emps))
	}
	if emps[0].ID != 201 || emps[1].ID != 202 || emps[2].ID != 203 {
		t.Fatalf("expected file order preserved, got %v", emps)
	}
	if emps[1].YearsOfService != 0 {
		t.Fatalf("expected explicit zero years kept")
	}
	if emps[0].FullName() != "Grace Hopper" {
		t.Fatalf("unexpected name %q", emps[0].FullName())
	}
}

func TestLoadEmployeesInvalid(t *testing.T) {
	path := filepath.Join("testdata", "employees_invalid.yaml")
	_, err := NewLoader(path).LoadEmployees()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "employees[1].department") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadEmployeesMissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).LoadEmployees()
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestLoadEmployeesValidation(t *testing.T) {
	cases := []struct {
		name  string
		yaml  string
		field string
	}{
		{"missing id", "employees:\n  - first_name: A\n    last_name: B\n    department: C\n    years_of_service: 1\n", "employees[0].id"},
		{"duplicate id", "employees:\n  - {id: 1, first_name: A, last_name: B, department: C, years_of_service: 1}\n  - {id: 1, first_name: D, last_name: E, department: F, years_of_service: 2}\n", "employees[1].id"},
		{"missing first", "employees:\n  - {id: 1, last_name: B, department: C, years_of_service: 1}\n", "employees[0].first_name"},
		{"missing last", "employees:\n  - {id: 1, first_name: A, department: C, years_of_service: 1}\n", "employees[0].last_name"},
		{"missing years", "employees:\n  - {id: 1, first_name: A, last_name: B, department: C}\n", "employees[0].years_of_service"},
		{"negative years", "employees:\n  - {id: 1, first_name: A, last_name: B, department: C, years_of_service: -1}\n", "employees[0].years_of_service"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "employees.yaml")
			if err := os.WriteFile(path, []byte(c.yaml), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}

			_, err := NewLoader(path).LoadEmployees()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), c.field) {
				t.Fatalf("expected %s in error, got %v", c.field, err)
			}
		})
	}
}

func TestLoadEmployeesMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.yaml")
	if err := os.WriteFile(path, []byte("employees: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := NewLoader(path).LoadEmployees()
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}
