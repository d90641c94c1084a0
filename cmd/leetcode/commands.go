package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harsh-govind/LeetCode-Solutions/catalog"
	"github.com/harsh-govind/LeetCode-Solutions/runner"
)

func newListCommand() *cobra.Command {
	var (
		difficulty string
		tag        string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List solved problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			problems, err := catalog.Load()
			if err != nil {
				return err
			}

			var d catalog.Difficulty
			if difficulty != "" {
				if d, err = catalog.ParseDifficulty(difficulty); err != nil {
					return err
				}
			}
			selected := catalog.Filter(problems, d, tag)

			out := cmd.OutOrStdout()
			if err := catalog.Render(out, selected, catalog.Format(format)); err != nil {
				return err
			}

			tally := catalog.Tally(selected)
			parts := make([]string, 0, len(catalog.Difficulties))
			for _, d := range catalog.Difficulties {
				parts = append(parts, fmt.Sprintf("%s %d", d, tally[d]))
			}
			_, _ = fmt.Fprintln(out, strings.Join(parts, " · "))

			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Only list problems of this difficulty (easy|medium|hard)")
	cmd.Flags().StringVar(&tag, "tag", "", "Only list problems with this topic tag")
	cmd.Flags().StringVarP(&format, "format", "f", string(catalog.FormatTable), "Output format (table|markdown)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(catalog.FormatTable), string(catalog.FormatMarkdown)}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one problem's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			problems, err := catalog.Load()
			if err != nil {
				return err
			}
			p, err := catalog.Lookup(problems, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s. %s\n", p.Key(), p.Title)
			_, _ = fmt.Fprintf(out, "Difficulty: %s\n", p.Difficulty)
			_, _ = fmt.Fprintf(out, "Tags:       %s\n", strings.Join(p.Tags, ", "))
			_, _ = fmt.Fprintf(out, "Time:       %s\n", p.Time)
			_, _ = fmt.Fprintf(out, "Space:      %s\n", p.Space)
			_, _ = fmt.Fprintf(out, "Package:    %s\n", p.Package)
			_, _ = fmt.Fprintf(out, "URL:        %s\n", p.URL())

			return nil
		},
	}
}

func newSolveCommand(a *app) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "solve <id>",
		Short: "Run a solution against a JSON input document",
		Long: `Run a solution against a JSON input document and print the answer as JSON.

The document is taken from --input, or read from stdin when --input is empty.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			doc := []byte(input)
			if input == "" {
				if doc, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
			}

			r := runner.New(runner.WithLogger(a.logger))
			ans, err := r.Solve(id, doc)
			if err != nil {
				a.logger.Warn("solve failed", zap.Int("problem", id), zap.Error(err))
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			return enc.Encode(ans)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "JSON input document (default: read stdin)")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "leetcode v%s\n", Version)
		},
	}
}

// parseID accepts plain or zero-padded problem numbers ("300", "0300").
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid problem number %q", s)
	}

	return id, nil
}
