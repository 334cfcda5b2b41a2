package jsdoc

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format identifies a record serialization format.
type Format string

const (
	// FormatJSON serializes records as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML serializes records as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format string into a [Format].
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if slices.Contains([]Format{FormatJSON, FormatYAML}, f) {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Codec serializes and deserializes [Comment] records so external
// tooling can store and edit them between [Parse] and [Compose].
//
// Create instances with [NewCodec].
type Codec struct {
	format Format
	indent int
}

// Option configures a [Codec].
type Option func(*Codec)

// WithFormat sets the serialization format. The default is [FormatJSON].
func WithFormat(f Format) Option {
	return func(c *Codec) {
		c.format = f
	}
}

// WithIndent sets the indentation width. The default is 2.
func WithIndent(n int) Option {
	return func(c *Codec) {
		c.indent = n
	}
}

// NewCodec creates a Codec with the given options.
func NewCodec(opts ...Option) (*Codec, error) {
	c := &Codec{
		format: FormatJSON,
		indent: 2,
	}

	for _, opt := range opts {
		opt(c)
	}

	if _, err := ParseFormat(string(c.format)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	if c.indent < 0 {
		return nil, fmt.Errorf("%w: negative indent %d", ErrInvalidOption, c.indent)
	}

	return c, nil
}

// Marshal serializes a record. Unpopulated optional fields are absent
// from the output, not present-but-empty, so output size varies by
// content.
func (c *Codec) Marshal(comment *Comment) ([]byte, error) {
	switch c.format {
	case FormatYAML:
		out, err := yaml.MarshalWithOptions(comment,
			yaml.Indent(c.indent),
			yaml.UseLiteralStyleIfMultiline(true),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		return out, nil

	case FormatJSON:
		out, err := json.MarshalIndent(comment, "", strings.Repeat(" ", c.indent))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		return append(out, '\n'), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, c.format)
}

// Unmarshal deserializes a record produced by [Codec.Marshal] or by an
// external editor. The record may carry any subset of fields; absent
// collections decode to nil and are treated by [Compose] as "nothing to
// emit."
func (c *Codec) Unmarshal(data []byte) (*Comment, error) {
	comment := &Comment{}

	switch c.format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, comment); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}

	case FormatJSON:
		if err := json.Unmarshal(data, comment); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, c.format)
	}

	return comment, nil
}
