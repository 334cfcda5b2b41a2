package jsdoc

import (
	"regexp"
	"strings"
)

var tagLineExpr = regexp.MustCompile(`^@(\w+)\s*(.*)$`)

// tagAliases folds alternate tag spellings onto their canonical names
// before handler lookup.
var tagAliases = map[string]string{
	"arg":       "param",
	"argument":  "param",
	"return":    "returns",
	"exception": "throws",
}

// tagHandlers maps canonical tag names to their processing functions.
// Tags without an entry fall through to the generic custom-tag store.
var tagHandlers = map[string]func(c *Comment, lines []string){
	"param":       parseParamTag,
	"returns":     parseReturnsTag,
	"throws":      parseThrowsTag,
	"example":     parseExampleTag,
	"description": parseDescriptionTag,
}

// Parse decomposes a JSDoc comment into a [Comment]. The input may
// include the /** and */ delimiters and per-line * continuation markers;
// both are tolerated and stripped.
//
// Parse is maximally permissive and never fails: malformed tag content
// degrades to absent fields or, for parameters with no extractable name,
// to no entry at all. The zero-content worst case is a Comment with an
// empty description and nothing else.
func Parse(src string) *Comment {
	c := &Comment{}

	src = strings.TrimSpace(src)
	src = strings.TrimPrefix(src, "/**")
	src = strings.TrimSuffix(src, "*/")

	// One tag accumulates at a time. A new @tag line flushes the
	// previous accumulator; everything before the first tag is
	// description text.
	var (
		tag     string
		content []string
	)

	for line := range strings.SplitSeq(src, "\n") {
		line = strings.TrimSpace(line)
		// Exactly one continuation asterisk is stripped; any further
		// asterisks are content.
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))

		if m := tagLineExpr.FindStringSubmatch(line); m != nil {
			if tag != "" {
				dispatchTag(c, tag, content)
			}

			tag = m[1]
			content = []string{m[2]}

			continue
		}

		if tag != "" {
			content = append(content, line)

			continue
		}

		if line != "" {
			c.appendDescription(line)
		}
	}

	if tag != "" {
		dispatchTag(c, tag, content)
	}

	return c
}

// dispatchTag resolves aliases, then routes content to the handler for
// the canonical tag name. Unrecognized tags are stored verbatim under
// Tags, one value per occurrence, in source order.
func dispatchTag(c *Comment, name string, lines []string) {
	if canonical, ok := tagAliases[name]; ok {
		name = canonical
	}

	if handler, ok := tagHandlers[name]; ok {
		handler(c, lines)

		return
	}

	if c.Tags == nil {
		c.Tags = make(map[string][]string)
	}

	c.Tags[name] = append(c.Tags[name], joinSpaced(lines))
}

// joinSpaced trims each line, drops empty ones, and joins the rest with
// single spaces. This is the content-joining rule for every tag except
// @example.
func joinSpaced(lines []string) string {
	parts := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}

	return strings.Join(parts, " ")
}

// joinVerbatim joins lines with newlines and trims only the whole block,
// preserving internal line breaks and blank lines. Used for @example.
func joinVerbatim(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// extractBraceType extracts a {type} prefix from tag content, handling
// nested braces with an explicit depth counter (linear in the input, no
// regex balancing). It returns the text strictly between the outermost
// braces and the trimmed remainder. A missing or never-closed brace
// yields a nil type and the content untouched.
func extractBraceType(content string) (*string, string) {
	if !strings.HasPrefix(content, "{") {
		return nil, content
	}

	depth := 0

	for i, r := range content {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				typ := content[1:i]

				return &typ, strings.TrimSpace(content[i+1:])
			}
		}
	}

	return nil, content
}

var (
	// Typed form: optional [brackets], identifier-like name, optional
	// =default before the closing bracket, optional dash-led description.
	typedParamExpr = regexp.MustCompile(`^\[?([A-Za-z_$][0-9A-Za-z_$.]*)(?:=([^\]]+))?\]?\s*(?:-\s*(.*))?$`)
	// Bracket detection for optionality; matched against the same
	// remainder as typedParamExpr.
	bracketExpr = regexp.MustCompile(`^\[[A-Za-z_$][0-9A-Za-z_$.]*(?:=[^\]]+)?\]`)
	// Fallback when the typed form fails: bare leading identifier, rest
	// becomes the description.
	nameRestExpr = regexp.MustCompile(`^([A-Za-z_$][0-9A-Za-z_$.]*)(.*)$`)
	// Untyped forms allow a trailing * in the name (variadic markers).
	nameDescExpr = regexp.MustCompile(`^([A-Za-z_$][0-9A-Za-z_$.*]*)\s+(.*)$`)
	bareNameExpr = regexp.MustCompile(`^[A-Za-z_$][0-9A-Za-z_$.*]*$`)
)

func parseParamTag(c *Comment, lines []string) {
	p := parseParamContent(joinSpaced(lines))
	if p == nil {
		return
	}

	c.addParam(p)
}

// parseParamContent splits joined @param content into name, type,
// default, optionality, and description. It returns nil when no
// identifier-like name can be extracted (digit-led or symbol-only names
// are deliberately discarded, not errors).
func parseParamContent(content string) *Param {
	typ, rest := extractBraceType(content)

	if typ != nil {
		if m := typedParamExpr.FindStringSubmatch(rest); m != nil {
			p := &Param{Name: m[1], Type: typ, Description: m[3]}

			switch {
			case m[2] != "":
				def := m[2]
				p.Default = &def
				p.Optional = true

			case bracketExpr.MatchString(rest):
				p.Optional = true
			}

			return p
		}

		if m := nameRestExpr.FindStringSubmatch(rest); m != nil {
			desc := strings.TrimSpace(m[2])
			if strings.HasPrefix(desc, "-") {
				desc = strings.TrimSpace(desc[1:])
			}

			return &Param{Name: m[1], Type: typ, Description: desc}
		}

		return nil
	}

	if m := nameDescExpr.FindStringSubmatch(content); m != nil {
		return &Param{Name: m[1], Description: m[2]}
	}

	if bareNameExpr.MatchString(content) {
		return &Param{Name: content}
	}

	return nil
}

// addParam appends a parsed parameter, folding dotted names one level
// into the parent's Properties list. A child seen before its parent
// fabricates a synthetic Object parent at the child's position; later
// occurrences of the real parent name are NOT merged back and no
// reordering happens. Only the first dot splits: options.user.age
// becomes property "user.age" of "options".
func (c *Comment) addParam(p *Param) {
	dot := strings.Index(p.Name, ".")
	if dot < 0 {
		c.Params = append(c.Params, p)

		return
	}

	parentName := p.Name[:dot]
	p.Name = p.Name[dot+1:]

	parent := c.Param(parentName)
	if parent == nil {
		objType := "Object"
		parent = &Param{Name: parentName, Type: &objType, Properties: []*Param{}}
		c.Params = append(c.Params, parent)
	}

	parent.Properties = append(parent.Properties, p)
}

func parseReturnsTag(c *Comment, lines []string) {
	typ, desc := splitTypeDesc(joinSpaced(lines))

	// Last @returns wins; earlier ones are overwritten.
	c.Returns = &Returns{Type: typ, Description: desc}
}

func parseThrowsTag(c *Comment, lines []string) {
	typ, desc := splitTypeDesc(joinSpaced(lines))
	c.Throws = append(c.Throws, &Throws{Type: typ, Description: desc})
}

// splitTypeDesc applies brace type extraction to @returns/@throws
// content. With a type, the remainder is the description; without one,
// the whole content is.
func splitTypeDesc(content string) (*string, string) {
	typ, rest := extractBraceType(content)
	if typ == nil {
		return nil, content
	}

	return typ, rest
}

func parseExampleTag(c *Comment, lines []string) {
	c.Examples = append(c.Examples, joinVerbatim(lines))
}

func parseDescriptionTag(c *Comment, lines []string) {
	c.appendDescription(joinSpaced(lines))
}
