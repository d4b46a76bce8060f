package jsonquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		expected Document
		err      string
	}{
		{name: "null", src: `null`, expected: Null},
		{name: "true", src: `true`, expected: NewBool(true)},
		{name: "false", src: `false`, expected: NewBool(false)},
		{name: "integer", src: `128`, expected: NewNumber("128")},
		{name: "negative", src: `-0.5e10`, expected: NewNumber("-0.5e10")},
		{name: "string", src: `"foo\nbar"`, expected: NewString(`foo\nbar`)},
		{
			name:     "array",
			src:      `[1, "two", null]`,
			expected: NewArray([]Document{NewNumber("1"), NewString("two"), Null}),
		},
		{
			name: "object",
			src:  `{"a": 1, "b": 2}`,
			expected: NewObject([]Pair{
				{Key: "a", Value: NewNumber("1")},
				{Key: "b", Value: NewNumber("2")},
			}),
		},
		{
			name: "duplicate keys first wins",
			src:  `{"a": 1, "a": 2}`,
			expected: NewObject([]Pair{
				{Key: "a", Value: NewNumber("1")},
			}),
		},
		{name: "empty array", src: `[]`, expected: NewArray(nil)},
		{name: "empty object", src: `{}`, expected: NewObject(nil)},
		{name: "leading zero is invalid", src: `01`, err: "syntax error"},
		{name: "trailing comma in array is invalid", src: `[1,]`, err: "syntax error"},
		{name: "trailing comma in object is invalid", src: `{"a":1,}`, err: "syntax error"},
		{name: "trailing garbage is invalid", src: `1 2`, err: "syntax error"},
		{name: "empty input is invalid", src: ``, err: "syntax error"},
		{name: "unterminated string", src: `"foo`, err: "syntax error"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseJSON(tc.src)
			if tc.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "got %s, want %s", got.Serialize(), tc.expected.Serialize())
		})
	}
}

func TestParseJSONMaxNestingDepth(t *testing.T) {
	src := ""
	for i := 0; i < 5; i++ {
		src += "["
	}
	src += "1"
	for i := 0; i < 5; i++ {
		src += "]"
	}
	_, err := ParseJSON(src, WithMaxNestingDepth(2))
	require.Error(t, err)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
}
