package jsdoc

// Comment is the structured form of a JSDoc block: the free-text
// description plus the typed content of every recognized tag.
//
// A Comment is a plain mutable value graph. Callers may edit any field
// between [Parse] and [Compose]: append or remove params, rewrite
// descriptions, add throws entries. Nothing is shared between Comments,
// and nothing points back at the source text.
//
// Collection fields are nil when empty and carry omitempty struct tags,
// so serialized records only contain the sections that are populated.
type Comment struct {
	Description string              `json:"description"        yaml:"description"`
	Params      []*Param            `json:"params,omitempty"   yaml:"params,omitempty"`
	Returns     *Returns            `json:"returns,omitempty"  yaml:"returns,omitempty"`
	Throws      []*Throws           `json:"throws,omitempty"   yaml:"throws,omitempty"`
	Examples    []string            `json:"examples,omitempty" yaml:"examples,omitempty"`
	Tags        map[string][]string `json:"tags,omitempty"     yaml:"tags,omitempty"`
}

// Param describes one @param tag (or one dotted property of a parent
// param; properties reuse this type with Name holding the text after the
// first dot).
//
// Type is a pointer so that "no type annotation" (nil) stays distinct
// from an explicitly empty type written as {} (pointer to ""). Default is
// nil unless a default value was supplied inside brackets. Optional is
// true exactly when the name was bracket-wrapped or carried a default.
type Param struct {
	Name        string   `json:"name"                 yaml:"name"`
	Type        *string  `json:"type,omitempty"       yaml:"type,omitempty"`
	Description string   `json:"description"          yaml:"description"`
	Default     *string  `json:"default,omitempty"    yaml:"default,omitempty"`
	Optional    bool     `json:"optional,omitempty"   yaml:"optional,omitempty"`
	Properties  []*Param `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Returns describes the @returns tag. Only one survives per Comment; when
// several appear in the source, the last occurrence wins.
type Returns struct {
	Type        *string `json:"type,omitempty" yaml:"type,omitempty"`
	Description string  `json:"description"    yaml:"description"`
}

// Throws describes a single @throws tag. All occurrences are retained in
// source order.
type Throws struct {
	Type        *string `json:"type,omitempty" yaml:"type,omitempty"`
	Description string  `json:"description"    yaml:"description"`
}

// Param returns the top-level parameter with the given name, or nil.
// Properties of nested params are not searched.
func (c *Comment) Param(name string) *Param {
	for _, p := range c.Params {
		if p.Name == name {
			return p
		}
	}

	return nil
}

// appendDescription adds a line (or a pre-joined block) to the
// description, separated from existing content by a newline.
func (c *Comment) appendDescription(text string) {
	if c.Description != "" {
		c.Description += "\n" + text

		return
	}

	c.Description = text
}
