package jsdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jsdoc"
	"go.jacobcolvin.com/jsdoc/stringtest"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    jsdoc.Format
		wantErr error
	}{
		"json":           {input: "json", want: jsdoc.FormatJSON},
		"yaml":           {input: "yaml", want: jsdoc.FormatYAML},
		"case-folded":    {input: "JSON", want: jsdoc.FormatJSON},
		"unknown format": {input: "xml", wantErr: jsdoc.ErrUnknownFormat},
		"empty":          {input: "", wantErr: jsdoc.ErrUnknownFormat},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := jsdoc.ParseFormat(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewCodec(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		opts    []jsdoc.Option
		wantErr error
	}{
		"defaults": {},
		"yaml format": {
			opts: []jsdoc.Option{jsdoc.WithFormat(jsdoc.FormatYAML)},
		},
		"unknown format": {
			opts:    []jsdoc.Option{jsdoc.WithFormat(jsdoc.Format("xml"))},
			wantErr: jsdoc.ErrInvalidOption,
		},
		"negative indent": {
			opts:    []jsdoc.Option{jsdoc.WithIndent(-1)},
			wantErr: jsdoc.ErrInvalidOption,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			codec, err := jsdoc.NewCodec(tc.opts...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, codec)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, codec)
		})
	}
}

func TestCodecMarshalJSON(t *testing.T) {
	t.Parallel()

	codec, err := jsdoc.NewCodec()
	require.NoError(t, err)

	t.Run("populated sections only", func(t *testing.T) {
		t.Parallel()

		out, err := codec.Marshal(&jsdoc.Comment{Description: "Just a description."})
		require.NoError(t, err)

		assert.JSONEq(t, `{"description": "Just a description."}`, string(out))
		assert.NotContains(t, string(out), "params")
		assert.NotContains(t, string(out), "returns")
	})

	t.Run("full record", func(t *testing.T) {
		t.Parallel()

		c := jsdoc.Parse(stringtest.Input(`
			/**
			 * Adds numbers.
			 *
			 * @param {number} a - First number
			 * @param {number} [b=0] - Second number
			 * @returns {number} The sum
			 * @since v1.0.0
			 */`))

		out, err := codec.Marshal(c)
		require.NoError(t, err)

		assert.JSONEq(t, stringtest.Input(`
			{
			  "description": "Adds numbers.",
			  "params": [
			    {"name": "a", "type": "number", "description": "First number"},
			    {"name": "b", "type": "number", "description": "Second number", "default": "0", "optional": true}
			  ],
			  "returns": {"type": "number", "description": "The sum"},
			  "tags": {"since": ["v1.0.0"]}
			}`), string(out))
	})

	t.Run("empty type stays distinct from absent type", func(t *testing.T) {
		t.Parallel()

		out, err := codec.Marshal(&jsdoc.Comment{
			Params: []*jsdoc.Param{
				{Name: "a", Type: ptr("")},
				{Name: "b"},
			},
		})
		require.NoError(t, err)

		assert.JSONEq(t, stringtest.Input(`
			{
			  "description": "",
			  "params": [
			    {"name": "a", "type": "", "description": ""},
			    {"name": "b", "description": ""}
			  ]
			}`), string(out))
	})
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	c := jsdoc.Parse(stringtest.Input(`
		/**
		 * Fetches a user record.
		 *
		 * @param {Object} options - Lookup options
		 * @param {string} options.id - User ID
		 * @param {boolean} [options.cached=true] - Allow cache hits
		 * @returns {Promise<User>} The user
		 * @throws {NotFoundError} If no user matches
		 * @example
		 * await fetchUser({id: 'u1'});
		 * @async
		 */`))

	for _, format := range []jsdoc.Format{jsdoc.FormatJSON, jsdoc.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			codec, err := jsdoc.NewCodec(jsdoc.WithFormat(format))
			require.NoError(t, err)

			data, err := codec.Marshal(c)
			require.NoError(t, err)

			got, err := codec.Unmarshal(data)
			require.NoError(t, err)

			assert.Equal(t, c, got)
		})
	}
}

func TestCodecUnmarshalInvalid(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		format jsdoc.Format
		data   string
	}{
		"truncated json":      {format: jsdoc.FormatJSON, data: `{"description": "x"`},
		"mistyped json field": {format: jsdoc.FormatJSON, data: `{"params": "not an array"}`},
		"mistyped yaml field": {format: jsdoc.FormatYAML, data: "params: not an array\n"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			codec, err := jsdoc.NewCodec(jsdoc.WithFormat(tc.format))
			require.NoError(t, err)

			_, err = codec.Unmarshal([]byte(tc.data))
			require.ErrorIs(t, err, jsdoc.ErrInvalidRecord)
		})
	}
}
