package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/jsdoc/stringtest"
)

func TestInput(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"empty string": {
			input: "",
			want:  "",
		},
		"single line no indent": {
			input: "hello",
			want:  "hello",
		},
		"single line with surrounding newlines": {
			input: "\nhello\n",
			want:  "hello",
		},
		"multi-line with common indent spaces": {
			input: "\n    line1\n    line2\n    line3",
			want:  "line1\nline2\nline3",
		},
		"multi-line with common indent tabs": {
			input: "\n\tline1\n\tline2\n\tline3",
			want:  "line1\nline2\nline3",
		},
		"multi-line with varying indent": {
			input: "\n    line1\n      indented\n    line3",
			want:  "line1\n  indented\nline3",
		},
		"blank interior lines preserved empty": {
			input: "\n\tline1\n\t\n\tline3\n\t",
			want:  "line1\n\nline3",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stringtest.Input(tc.input))
		})
	}
}

func TestJoinLF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\nc", stringtest.JoinLF("a", "b", "c"))
	assert.Equal(t, "", stringtest.JoinLF())
	assert.Equal(t, "only", stringtest.JoinLF("only"))
}
