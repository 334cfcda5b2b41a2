package jsdoc

import (
	"maps"
	"slices"
	"strings"
)

// Compose regenerates JSDoc comment text from a [Comment]. The output
// uses /** and */ delimiters with a leading * on every body line, and
// re-parsing it with [Parse] yields a Comment field-for-field equal to
// the input for every Comment that Parse itself produced.
//
// Compose accepts any Comment, including hand-built or mutated ones with
// whole sections absent; absent sections simply emit nothing. States the
// decomposer can never produce (an optional parameter with no type, a
// description holding blank lines) still render syntactically valid
// output, but only decomposer-produced Comments carry the round-trip
// guarantee.
func Compose(c *Comment) string {
	var lines []string

	if c.Description != "" {
		lines = slices.Concat(lines, strings.Split(c.Description, "\n"))
	}

	var tagLines []string

	for _, p := range c.Params {
		tagLines = append(tagLines, paramLine(p, p.Name))

		// Dotted property lines re-fold into the parent on parse.
		for _, prop := range p.Properties {
			tagLines = append(tagLines, paramLine(prop, p.Name+"."+prop.Name))
		}
	}

	if c.Returns != nil {
		tagLines = append(tagLines, typeDescLine("@returns", c.Returns.Type, c.Returns.Description))
	}

	for _, t := range c.Throws {
		tagLines = append(tagLines, typeDescLine("@throws", t.Type, t.Description))
	}

	for _, example := range c.Examples {
		tagLines = append(tagLines, "@example")
		tagLines = slices.Concat(tagLines, strings.Split(example, "\n"))
	}

	// Custom tags are emitted in sorted name order so output is
	// deterministic; occurrence order within a name is preserved.
	for _, name := range slices.Sorted(maps.Keys(c.Tags)) {
		for _, value := range c.Tags[name] {
			if value == "" {
				tagLines = append(tagLines, "@"+name)

				continue
			}

			tagLines = append(tagLines, "@"+name+" "+value)
		}
	}

	if len(lines) > 0 && len(tagLines) > 0 {
		lines = append(lines, "")
	}

	lines = slices.Concat(lines, tagLines)

	var b strings.Builder

	b.WriteString("/**\n")

	for _, line := range lines {
		// A tag value edited to contain newlines still renders as
		// continuation lines rather than breaking the comment body.
		for _, physical := range strings.Split(line, "\n") {
			if physical == "" {
				b.WriteString(" *\n")

				continue
			}

			b.WriteString(" * ")
			b.WriteString(physical)
			b.WriteString("\n")
		}
	}

	b.WriteString(" */")

	return b.String()
}

// paramLine renders one @param line. The name argument is passed
// separately so property entries can be rendered under their dotted
// parent.name form.
func paramLine(p *Param, name string) string {
	parts := []string{"@param"}

	if p.Type != nil {
		parts = append(parts, "{"+*p.Type+"}")
	}

	switch {
	case p.Default != nil:
		name = "[" + name + "=" + *p.Default + "]"
	case p.Optional:
		name = "[" + name + "]"
	}

	parts = append(parts, name)

	if p.Description != "" {
		// The dash separator is only understood by the typed parse
		// path; the untyped path would fold it into the description.
		if p.Type != nil {
			parts = append(parts, "-")
		}

		parts = append(parts, p.Description)
	}

	return strings.Join(parts, " ")
}

// typeDescLine renders a @returns or @throws line. No dash separator is
// used: the parser treats everything after the type as description.
func typeDescLine(keyword string, typ *string, desc string) string {
	parts := []string{keyword}

	if typ != nil {
		parts = append(parts, "{"+*typ+"}")
	}

	if desc != "" {
		parts = append(parts, desc)
	}

	return strings.Join(parts, " ")
}
