package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/usecase/directory"
)

const noMatches = "No employees found matching the criteria."

func directoryCmd(g *globalFlags) *cobra.Command {
	opts := directory.DefaultOptions()
	var data string
	var format string

	c := &cobra.Command{
		Use:   "directory",
		Short: "Query the employee directory with filter/projection pipelines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}
			defer ws.close()

			return runDirectory(cmd.OutOrStdout(), ws, data, opts, format)
		},
	}

	c.Flags().StringVar(&data, "data", "", "YAML employee file (defaults to primer.directory.data or the built-in list)")
	c.Flags().StringVar(&opts.Department, "department", opts.Department, "Department for the experienced-employees query")
	c.Flags().IntVar(&opts.MinYears, "min-years", opts.MinYears, "Minimum years of service (exclusive)")
	c.Flags().StringVar(&opts.NamesOf, "names-of", opts.NamesOf, "Department whose names are listed")
	c.Flags().StringVar(&opts.Where, "where", "", `Query expression, e.g. 'dept:engineering AND years>=5'`)
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func runDirectory(w io.Writer, ws *workspaceCtx, data string, opts directory.Options, format string) error {
	uc := directory.NewRunQueries(ws.employeeSource(data))

	rep, err := uc.Execute(opts)
	if err != nil {
		ws.log.Warn("directory.failed", "error", err.Error())
		return err
	}
	ws.log.Info("directory.query",
		"records", len(rep.All),
		"experienced", len(rep.Experienced),
		"names", len(rep.Names),
		"where", opts.Where,
	)

	return printDirectory(w, rep, format)
}

func printDirectory(w io.Writer, rep directory.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "pretty", "":
		printPrettyDirectory(w, rep)
		return nil
	default:
		return unsupportedFormat(format)
	}
}

func printPrettyDirectory(w io.Writer, rep directory.Report) {
	fmt.Fprintln(w, "All Employees:")
	printEmployees(w, rep.All)

	fmt.Fprintf(w, "\n--- %s Department Employees with more than %d years of service ---\n",
		rep.Criteria.Department, rep.Criteria.MinYears)
	printEmployees(w, rep.Experienced)

	fmt.Fprintf(w, "\n--- Names of all employees in %s ---\n", rep.Criteria.NamesOf)
	if len(rep.Names) == 0 {
		fmt.Fprintln(w, noMatches)
	}
	for _, n := range rep.Names {
		fmt.Fprintln(w, n)
	}

	if rep.Criteria.Where != "" {
		fmt.Fprintf(w, "\n--- Employees matching %q ---\n", rep.Criteria.Where)
		printEmployees(w, rep.Matches)
	}
}

func printEmployees(w io.Writer, emps []domain.Employee) {
	if len(emps) == 0 {
		fmt.Fprintln(w, noMatches)
		return
	}
	for _, e := range emps {
		fmt.Fprintln(w, e.String())
	}
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "json", "":
		return nil
	}
	return unsupportedFormat(format)
}

func unsupportedFormat(format string) error {
	return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
}
