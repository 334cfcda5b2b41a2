// Package main provides the CLI entry point for jsdoc, a tool that
// decomposes JSDoc comments into structured records and recomposes
// records back into comment text.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jsdoc"
	"go.jacobcolvin.com/jsdoc/log"
	"go.jacobcolvin.com/jsdoc/profile"
	"go.jacobcolvin.com/jsdoc/version"
)

func main() {
	cfg := jsdoc.NewConfig()
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()
	profiler := profCfg.NewProfiler()

	rootCmd := &cobra.Command{
		Use:   "jsdoc",
		Short: "Convert JSDoc comments to structured records and back",
		Long: `jsdoc converts documentation comments written in the JSDoc convention into
structured records (JSON or YAML) and regenerates comment text from records.
Parsing is best-effort: malformed tag content degrades to absent fields
rather than errors. Regenerated comments are content-equivalent to their
source, not byte-identical.`,
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return profiler.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return profiler.Stop()
		},
	}

	cfg.RegisterFlags(rootCmd.PersistentFlags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.PersistentFlags())

	for _, register := range []func(*cobra.Command) error{
		cfg.RegisterCompletions,
		logCfg.RegisterCompletions,
		profCfg.RegisterCompletions,
	} {
		if err := register(rootCmd); err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	parseCmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Decompose one JSDoc comment into a structured record",
		Long: `parse reads a single already-isolated JSDoc comment from a file or stdin
and prints its structured record. The comment may include the /** and */
delimiters. Unpopulated record fields are omitted from the output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runParse(cfg, args)
		},
	}

	composeCmd := &cobra.Command{
		Use:   "compose [file]",
		Short: "Recompose a structured record into a JSDoc comment",
		Long: `compose reads a structured record (as produced by parse, possibly edited)
from a file or stdin and prints the regenerated JSDoc comment. Records may
omit any field that has nothing to say.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCompose(cfg, args)
		},
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the record format",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSchema(cfg)
		},
	}

	rootCmd.AddCommand(parseCmd, composeCmd, schemaCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runParse(cfg *jsdoc.Config, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	comment := jsdoc.Parse(string(data))

	slog.Debug("parsed comment",
		slog.Int("params", len(comment.Params)),
		slog.Int("throws", len(comment.Throws)),
		slog.Int("examples", len(comment.Examples)),
		slog.Int("tags", len(comment.Tags)),
	)

	codec, err := cfg.NewCodec()
	if err != nil {
		return err
	}

	out, err := codec.Marshal(comment)
	if err != nil {
		return err
	}

	return writeOutput(cfg.Output, out)
}

func runCompose(cfg *jsdoc.Config, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	codec, err := cfg.NewCodec()
	if err != nil {
		return err
	}

	comment, err := codec.Unmarshal(data)
	if err != nil {
		return err
	}

	return writeOutput(cfg.Output, []byte(jsdoc.Compose(comment)+"\n"))
}

func runSchema(cfg *jsdoc.Config) error {
	out, err := json.MarshalIndent(jsdoc.Schema(), "", strings.Repeat(" ", cfg.Indent))
	if err != nil {
		return fmt.Errorf("%w: %w", jsdoc.ErrWriteOutput, err)
	}

	return writeOutput(cfg.Output, append(out, '\n'))
}

// readInput reads the single positional input, treating a missing
// argument or "-" as stdin.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", jsdoc.ErrReadInput, err)
		}

		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", jsdoc.ErrReadInput, err)
	}

	return data, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %w", jsdoc.ErrWriteOutput, err)
		}

		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", jsdoc.ErrWriteOutput, err)
	}

	return nil
}
