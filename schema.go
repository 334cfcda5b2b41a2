package jsdoc

import "github.com/google/jsonschema-go/jsonschema"

// Schema returns a JSON Schema describing the serialized form of a
// [Comment] record, for tooling in other languages that stores or edits
// records between parse and compose. The schema mirrors the
// absent-vs-empty convention: optional fields are simply not present in
// a serialized record, so none of them are required.
//
// The returned schema is freshly built on every call and may be mutated
// by the caller.
func Schema() *jsonschema.Schema {
	typeDesc := func(what string) *jsonschema.Schema {
		return &jsonschema.Schema{
			Type:        "object",
			Description: what,
			Properties: map[string]*jsonschema.Schema{
				"type": {
					Type:        "string",
					Description: "type annotation text; absent when no annotation was given, empty for {}",
				},
				"description": {Type: "string"},
			},
			Required:             []string{"description"},
			AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
		}
	}

	param := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name": {
				Type:        "string",
				Description: "identifier-like parameter name; never starts with a digit",
			},
			"type": {
				Type:        "string",
				Description: "type annotation text; absent when no annotation was given, empty for {}",
			},
			"description": {Type: "string"},
			"default": {
				Type:        "string",
				Description: "raw default value text; present only when a default was supplied",
			},
			"optional": {
				Type:        "boolean",
				Description: "present and true only for bracket-wrapped or defaulted parameters",
			},
			"properties": {
				Type:        "array",
				Description: "dotted child parameters folded one level under this parent",
				Items:       &jsonschema.Schema{Ref: "#/$defs/param"},
			},
		},
		Required:             []string{"name", "description"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}

	return &jsonschema.Schema{
		Schema:      "https://json-schema.org/draft/2020-12/schema",
		Title:       "JSDoc comment record",
		Description: "Structured form of one JSDoc comment block.",
		Type:        "object",
		Properties: map[string]*jsonschema.Schema{
			"description": {
				Type:        "string",
				Description: "newline-joined non-tag comment text",
			},
			"params": {
				Type:  "array",
				Items: &jsonschema.Schema{Ref: "#/$defs/param"},
			},
			"returns": typeDesc("last @returns tag seen"),
			"throws": {
				Type:  "array",
				Items: typeDesc("one @throws tag, in source order"),
			},
			"examples": {
				Type:  "array",
				Items: &jsonschema.Schema{Type: "string"},
			},
			"tags": {
				Type:        "object",
				Description: "unrecognized tags: name to ordered raw values, one per occurrence",
				AdditionalProperties: &jsonschema.Schema{
					Type:  "array",
					Items: &jsonschema.Schema{Type: "string"},
				},
			},
		},
		Required:             []string{"description"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
		Defs: map[string]*jsonschema.Schema{
			"param": param,
		},
	}
}
