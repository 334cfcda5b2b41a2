package jsdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jsdoc"
	"go.jacobcolvin.com/jsdoc/stringtest"
)

func TestCompose(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input *jsdoc.Comment
		want  string
	}{
		"empty record": {
			input: &jsdoc.Comment{},
			want:  "/**\n */",
		},
		"description only": {
			input: &jsdoc.Comment{Description: "Greets a user."},
			want:  "/**\n * Greets a user.\n */",
		},
		"full record": {
			input: &jsdoc.Comment{
				Description: "Calculates the sum of two numbers",
				Params: []*jsdoc.Param{
					{Name: "a", Type: ptr("number"), Description: "First number"},
					{Name: "b", Type: ptr("number"), Description: "Second number"},
				},
				Returns: &jsdoc.Returns{Type: ptr("number"), Description: "The sum of a and b"},
				Throws: []*jsdoc.Throws{
					{Type: ptr("TypeError"), Description: "If a or b are not numbers"},
				},
				Examples: []string{"add(1, 2); // returns 3"},
				Tags: map[string][]string{
					"since": {"v1.0.0"},
				},
			},
			want: stringtest.Input(`
				/**
				 * Calculates the sum of two numbers
				 *
				 * @param {number} a - First number
				 * @param {number} b - Second number
				 * @returns {number} The sum of a and b
				 * @throws {TypeError} If a or b are not numbers
				 * @example
				 * add(1, 2); // returns 3
				 * @since v1.0.0
				 */`),
		},
		"untyped param omits dash": {
			input: &jsdoc.Comment{
				Params: []*jsdoc.Param{
					{Name: "name", Description: "Name without type"},
				},
			},
			want: "/**\n * @param name Name without type\n */",
		},
		"optional and default params": {
			input: &jsdoc.Comment{
				Params: []*jsdoc.Param{
					{Name: "a", Type: ptr("string"), Optional: true},
					{Name: "b", Type: ptr("string"), Default: ptr("'x'")},
				},
			},
			want: stringtest.Input(`
				/**
				 * @param {string} [a]
				 * @param {string} [b='x']
				 */`),
		},
		"properties render dotted under parent": {
			input: &jsdoc.Comment{
				Params: []*jsdoc.Param{
					{
						Name:        "options",
						Type:        ptr("Object"),
						Description: "Options object",
						Properties: []*jsdoc.Param{
							{Name: "name", Type: ptr("string"), Description: "The name"},
							{Name: "user.age", Type: ptr("number"), Description: "User age"},
						},
					},
				},
			},
			want: stringtest.Input(`
				/**
				 * @param {Object} options - Options object
				 * @param {string} options.name - The name
				 * @param {number} options.user.age - User age
				 */`),
		},
		"explicitly empty type renders bare braces": {
			input: &jsdoc.Comment{
				Params:  []*jsdoc.Param{{Name: "x", Type: ptr(""), Description: "No type"}},
				Returns: &jsdoc.Returns{Type: ptr("")},
			},
			want: stringtest.Input(`
				/**
				 * @param {} x - No type
				 * @returns {}
				 */`),
		},
		"multi-line example keeps line breaks": {
			input: &jsdoc.Comment{
				Examples: []string{"const x = 1;\n\nconst y = 2;"},
			},
			want: stringtest.Input(`
				/**
				 * @example
				 * const x = 1;
				 *
				 * const y = 2;
				 */`),
		},
		"custom tags sorted by name": {
			input: &jsdoc.Comment{
				Tags: map[string][]string{
					"since":  {"v1.0.0"},
					"author": {"a", "b"},
					"async":  {""},
				},
			},
			want: stringtest.Input(`
				/**
				 * @async
				 * @author a
				 * @author b
				 * @since v1.0.0
				 */`),
		},
		"hand-built optional without type": {
			input: &jsdoc.Comment{
				Params: []*jsdoc.Param{{Name: "x", Default: ptr("1")}},
			},
			want: "/**\n * @param [x=1]\n */",
		},
		"hand-built description with blank line": {
			input: &jsdoc.Comment{Description: "First paragraph\n\nSecond paragraph"},
			want: stringtest.Input(`
				/**
				 * First paragraph
				 *
				 * Second paragraph
				 */`),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, jsdoc.Compose(tc.input))
		})
	}
}

// Re-parsing composed output must reproduce the original record
// field-for-field for any record the decomposer produced.
func TestComposeParseRoundTrip(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"empty": "/**\n */",
		"description only": `
			/**
			 * Utility for formatting dates.
			 */`,
		"mixed comment": `
			/**
			 * Calculates the sum of two numbers
			 *
			 * @param {number} a - First number
			 * @param {number} b - Second number
			 * @returns {number} The sum of a and b
			 * @throws {TypeError} If a or b are not numbers
			 * @example
			 * add(1, 2); // returns 3
			 * @since v1.0.0
			 */`,
		"untyped params": `
			/**
			 * @param name Name without type
			 * @param other
			 */`,
		"optional and default": `
			/**
			 * @param {string} [name] - Optional name
			 * @param {string} [greeting='hello'] - Greeting with default
			 * @param {Object} [options={a: 1, b: 'text'}]
			 */`,
		"greedy default capture": `
			/**
			 * @param {number} [limit=5 - the cap]
			 */`,
		"nested params": `
			/**
			 * @param {Object} options - Options object
			 * @param {string} options.name - The name
			 * @param {Object} options.user - User info
			 * @param {number} options.user.age - User age
			 */`,
		"child before parent": `
			/**
			 * @param {string} options.name - The name
			 * @param {Object} options - Options object
			 */`,
		"variadic and wildcard types": `
			/**
			 * @param {...string} names - The names
			 * @param {*} anything - Any value
			 */`,
		"empty braces": `
			/**
			 * @param {} value - Untagged value
			 * @returns {} Nothing in particular
			 */`,
		"unclosed returns brace": `
			/**
			 * @returns {never closes
			 */`,
		"bare returns": "/** @returns */",
		"multiple throws": `
			/**
			 * @throws {TypeError} If the input is not a string
			 * @throws {RangeError} If the input is out of range
			 * @throws no type at all
			 */`,
		"examples with blank lines": `
			/**
			 * @example
			 * first();
			 *
			 * second();
			 * @example
			 * third();
			 */`,
		"value-less and repeated tags": `
			/**
			 * @async
			 * @deprecated
			 * @see First reference
			 * @see Second reference
			 */`,
		"typedef block": `
			/**
			 * @typedef {Object} Person
			 * @property {string} name - Person's name
			 * @property {number} age - Person's age
			 */`,
	}

	for name, src := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			first := jsdoc.Parse(stringtest.Input(src))
			second := jsdoc.Parse(jsdoc.Compose(first))

			require.Equal(t, first, second)
		})
	}
}
