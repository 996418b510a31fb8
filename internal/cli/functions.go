package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/usecase/basics"
)

func functionsCmd(g *globalFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "functions",
		Short: "Run the basic utility functions on their literal inputs",
		Long: "Run the basic utility functions on their literal inputs.\n\n" +
			"Subcommands evaluate a single function on your own arguments.\n" +
			"Pass negative numbers after --, e.g. `primer functions add -- -2 5`.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}
			defer ws.close()

			exs := basics.Examples()
			ws.log.Info("functions.examples", "count", len(exs))
			return printExamples(cmd.OutOrStdout(), exs, format)
		},
	}
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	c.AddCommand(
		addCmd(),
		joinCmd(),
		evenCmd(),
		greetCmd(),
		ageCmd(),
		tallCmd(),
		sumCmd(),
		helloCmd(),
	)
	return c
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add A B",
		Short: "Sum two integers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseIntArg("A", args[0])
			if err != nil {
				return err
			}
			b, err := parseIntArg("B", args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), basics.AddExample(a, b))
			return nil
		},
	}
}

func joinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join A B",
		Short: "Join two strings with a single space",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), basics.ConcatExample(args[0], args[1]))
			return nil
		},
	}
}

func evenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "even N",
		Short: "Report whether an integer is even",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIntArg("N", args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), basics.IsEvenExample(n))
			return nil
		},
	}
}

func greetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greet [NAME]",
		Short: "Build the greeting message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := basics.DefaultGreetName
			if len(args) == 1 {
				name = args[0]
			}
			fmt.Fprintln(cmd.OutOrStdout(), basics.GreetExample(name))
			return nil
		},
	}
}

func ageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "age AGE YEARS",
		Short: "Project an age a number of years ahead",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			age, err := parseIntArg("AGE", args[0])
			if err != nil {
				return err
			}
			years, err := parseIntArg("YEARS", args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), basics.FutureAgeExample(age, years))
			return nil
		},
	}
}

func tallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tall HEIGHT",
		Short: "Report whether a height in feet is above 6.0",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("argument HEIGHT: %q is not a number", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), basics.IsTallExample(h))
			return nil
		},
	}
}

func sumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum A B",
		Short: "Describe the sum of two integers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseIntArg("A", args[0])
			if err != nil {
				return err
			}
			b, err := parseIntArg("B", args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), basics.SumMessageExample(a, b))
			return nil
		},
	}
}

func helloCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hello NAME",
		Short: "Say hello to NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), basics.HelloExample(args[0]))
			return nil
		},
	}
}

func parseIntArg(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("argument %s: %q is not an integer", name, raw)
	}
	return n, nil
}

func printExamples(w io.Writer, exs []basics.Example, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(exs)
	case "pretty", "":
		for _, e := range exs {
			fmt.Fprintln(w, e)
		}
		return nil
	default:
		return unsupportedFormat(format)
	}
}
