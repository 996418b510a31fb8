package directory

import (
	"strings"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
	"github.com/aalvaropc/primer/internal/usecase/query"
)

// Options selects the criteria of the directory queries.
type Options struct {
	Department string `json:"department"`
	MinYears   int    `json:"min_years"`
	NamesOf    string `json:"names_of"`
	Where      string `json:"where,omitempty"`
}

// DefaultOptions mirrors the classic example: engineers with more than three
// years of service, and the names of everyone in Marketing.
func DefaultOptions() Options {
	return Options{
		Department: "Engineering",
		MinYears:   3,
		NamesOf:    "Marketing",
	}
}

// Report holds every list the directory example prints.
type Report struct {
	Criteria    Options           `json:"criteria"`
	All         []domain.Employee `json:"all"`
	Experienced []domain.Employee `json:"experienced"`
	Names       []string          `json:"names"`
	Matches     []domain.Employee `json:"matches"`
}

type RunQueries struct {
	source ports.EmployeeSource
}

func NewRunQueries(source ports.EmployeeSource) *RunQueries {
	return &RunQueries{source: source}
}

// Execute loads the records and runs the fixed pipeline. A query expression
// is parsed before anything is loaded so syntax errors surface first.
func (uc *RunQueries) Execute(opts Options) (Report, error) {
	var node query.Node
	if strings.TrimSpace(opts.Where) != "" {
		n, err := query.Parse(opts.Where)
		if err != nil {
			return Report{}, err
		}
		node = n
	}

	emps, err := uc.source.LoadEmployees()
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Criteria:    opts,
		All:         emps,
		Experienced: Experienced(emps, opts.Department, opts.MinYears),
		Names:       NamesIn(emps, opts.NamesOf),
	}
	if node != nil {
		rep.Matches = Where(emps, node)
	}
	return rep, nil
}
