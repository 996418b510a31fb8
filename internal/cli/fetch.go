package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/infra/httpclient"
	"github.com/aalvaropc/primer/internal/infra/httprunner"
	"github.com/aalvaropc/primer/internal/infra/runstore"
	"github.com/aalvaropc/primer/internal/ports"
	"github.com/aalvaropc/primer/internal/usecase"
	ucextract "github.com/aalvaropc/primer/internal/usecase/extract"
)

type fetchFlags struct {
	url      string
	timeout  time.Duration
	jsonpath []string
	save     bool
	format   string
}

func fetchCmd(g *globalFlags) *cobra.Command {
	var f fetchFlags

	c := &cobra.Command{
		Use:   "fetch",
		Short: "Perform one GET request and print the classified outcome",
		Long: "Perform one GET request and print the classified outcome.\n\n" +
			"Fetch failures are reported on stdout and never change the exit code.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(f.format); err != nil {
				return err
			}
			rules, err := ucextract.ParseRules(f.jsonpath)
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}
			defer ws.close()

			return runFetch(cmd.Context(), cmd.OutOrStdout(), ws, f, rules)
		},
	}

	c.Flags().StringVar(&f.url, "url", "", "Endpoint to GET (defaults to primer.fetch.url)")
	c.Flags().DurationVar(&f.timeout, "timeout", 0, "Total request timeout (defaults to primer.fetch.timeout)")
	c.Flags().StringArrayVar(&f.jsonpath, "jsonpath", nil, "Extract a value from a JSON body: name=$.path or $.path (repeatable)")
	c.Flags().BoolVar(&f.save, "save", false, "Save the outcome as a JSON artifact under runs/")
	c.Flags().StringVar(&f.format, "format", "pretty", "Output format: pretty|json")
	return c
}

func runFetch(ctx context.Context, w io.Writer, ws *workspaceCtx, f fetchFlags, rules domain.ExtractSpec) error {
	if ctx == nil {
		ctx = context.Background()
	}

	url := strings.TrimSpace(f.url)
	if url == "" {
		url = ws.cfg.Fetch.URL
	}
	timeout := ws.cfg.Fetch.Timeout
	if f.timeout > 0 {
		timeout = f.timeout
	}

	client := httpclient.Open(httpclient.DefaultConfig().WithTimeout(timeout))
	defer client.Close()

	runner := httprunner.New(client.HTTP(), httprunner.WithMaxBodyBytes(ws.cfg.Fetch.MaxBodyBytes))

	var store ports.ArtifactStore
	if f.save {
		store = runstore.NewJSONStore(ws.root, ws.cfg, runstore.WithIndex(true))
	}

	if f.format != "json" {
		fmt.Fprintf(w, "Attempting to fetch data from: %s\n", url)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	uc := usecase.NewFetchAPI(runner, store, ws.log)
	rep, err := uc.Execute(ctx, usecase.FetchRequest{URL: url, Extract: rules, Save: f.save})

	if perr := printFetch(w, rep, f.format); perr != nil {
		return perr
	}
	if err != nil {
		return fmt.Errorf("save fetch artifact: %w", err)
	}
	return nil
}

func printFetch(w io.Writer, rep usecase.FetchReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "pretty", "":
		printPrettyFetch(w, rep)
		return nil
	default:
		return unsupportedFormat(format)
	}
}

func printPrettyFetch(w io.Writer, rep usecase.FetchReport) {
	out := rep.Outcome

	switch out.State {
	case domain.FetchSuccess:
		fmt.Fprintln(w, "\n--- API Response ---")
		fmt.Fprintln(w, out.Body)
		if out.Truncated {
			fmt.Fprintln(w, "(response truncated)")
		}
		fmt.Fprintln(w, "\n--- End of Response ---")
		printExtracts(w, rep.Extracts)
		fmt.Fprintln(w, "\nSuccessfully fetched and displayed data.")

	case domain.FetchClientError:
		fmt.Fprintln(w, "\n--- Error ---")
		fmt.Fprintf(w, "Request error: %s\n", errorMessage(out))
		fmt.Fprintf(w, "Status code: %d\n", out.StatusCode)

	case domain.FetchTransportError:
		fmt.Fprintln(w, "\n--- Error ---")
		kind := domain.RunErrorUnknown
		if out.Error != nil {
			kind = out.Error.Kind
		}
		fmt.Fprintf(w, "Request error: %s: %s\n", kind, errorMessage(out))

	default:
		fmt.Fprintln(w, "\n--- An unexpected error occurred ---")
		fmt.Fprintf(w, "Error: %s\n", errorMessage(out))
		if out.HasStatus() {
			fmt.Fprintf(w, "Status code: %d\n", out.StatusCode)
		}
	}

	if rep.ArtifactID != "" {
		fmt.Fprintf(w, "\nSaved artifact: %s\n", rep.ArtifactID)
	}
	fmt.Fprintln(w, "\nAPI call attempt finished.")
}

func printExtracts(w io.Writer, results []domain.ExtractResult) {
	if len(results) == 0 {
		return
	}
	sorted := make([]domain.ExtractResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	fmt.Fprintln(w, "\nExtracted:")
	for _, e := range sorted {
		if e.Success {
			fmt.Fprintf(w, "  %s = %s\n", e.Name, e.Message)
		} else {
			fmt.Fprintf(w, "  %s: failed: %s\n", e.Name, e.Message)
		}
	}
}

func errorMessage(out domain.FetchOutcome) string {
	if out.Error == nil || out.Error.Message == "" {
		return "unknown error"
	}
	return out.Error.Message
}
