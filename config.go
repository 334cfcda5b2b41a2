package jsdoc

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for record serialization, allowing callers
// to customize flag names while keeping sensible defaults via
// [NewConfig].
type Flags struct {
	Output string
	Format string
	Indent string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for record serialization.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewCodec] to create a [Codec].
type Config struct {
	Output string
	Format string
	Indent int
	Flags  Flags
}

// NewConfig returns a new [Config] with default flag names.
// Use [Config.RegisterFlags] to add CLI flags, or set values directly.
func NewConfig() *Config {
	f := Flags{
		Output: "output",
		Format: "format",
		Indent: "indent",
	}

	return f.NewConfig()
}

// RegisterFlags adds serialization flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
	flags.StringVarP(&c.Format, c.Flags.Format, "f", string(FormatJSON),
		fmt.Sprintf("record format, one of: %s, %s", FormatJSON, FormatYAML))
	flags.IntVar(&c.Indent, c.Flags.Indent, 2,
		"indentation spaces for serialized records")
}

// RegisterCompletions registers shell completions for serialization
// flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions([]string{string(FormatJSON), string(FormatYAML)},
			cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Indent, noFileComp)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Indent, err)
	}

	return nil
}

// NewCodec creates a [Codec] using this [Config].
func (c *Config) NewCodec() (*Codec, error) {
	format, err := ParseFormat(c.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	return NewCodec(WithFormat(format), WithIndent(c.Indent))
}
