package jsonquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func TestParseSelector(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		expected *Program
		err      string
	}{
		{
			name:     "any",
			src:      `.`,
			expected: &Program{Chains: []Chain{{Steps: []Step{{Kind: StepAny}}}}},
		},
		{
			name: "three any chains",
			src:  `.,.,.`,
			expected: &Program{Chains: []Chain{
				{Steps: []Step{{Kind: StepAny}}},
				{Steps: []Step{{Kind: StepAny}}},
				{Steps: []Step{{Kind: StepAny}}},
			}},
		},
		{
			name:     "key",
			src:      `"foo"`,
			expected: &Program{Chains: []Chain{{Steps: []Step{{Kind: StepKey, Key: "foo"}}}}},
		},
		{
			name: "optional dot between steps",
			src:  `."foo"."bar"`,
			expected: &Program{Chains: []Chain{{Steps: []Step{
				{Kind: StepKey, Key: "foo"},
				{Kind: StepKey, Key: "bar"},
			}}}},
		},
		{
			name: "dot not required between steps",
			src:  `"foo""bar"`,
			expected: &Program{Chains: []Chain{{Steps: []Step{
				{Kind: StepKey, Key: "foo"},
				{Kind: StepKey, Key: "bar"},
			}}}},
		},
		{
			name:     "index",
			src:      `[3]`,
			expected: &Program{Chains: []Chain{{Steps: []Step{{Kind: StepIndex, Index: 3}}}}},
		},
		{
			name:     "negative index",
			src:      `[-1]`,
			expected: &Program{Chains: []Chain{{Steps: []Step{{Kind: StepIndex, Index: -1}}}}},
		},
		{
			name:     "open range",
			src:      `[]`,
			expected: &Program{Chains: []Chain{{Steps: []Step{{Kind: StepRange}}}}},
		},
		{
			name:     "bounded range",
			src:      `[1:3]`,
			expected: &Program{Chains: []Chain{{Steps: []Step{{Kind: StepRange, Start: intp(1), End: intp(3)}}}}},
		},
		{
			name:     "half-open range",
			src:      `[1:]`,
			expected: &Program{Chains: []Chain{{Steps: []Step{{Kind: StepRange, Start: intp(1)}}}}},
		},
		{
			name:     "property",
			src:      `{"a","b"}`,
			expected: &Program{Chains: []Chain{{Steps: []Step{{Kind: StepProperty, Props: []string{"a", "b"}}}}}},
		},
		{
			name:     "filter",
			src:      `|"k"`,
			expected: &Program{Chains: []Chain{{Steps: []Step{{Kind: StepFilter, Key: "k"}}}}},
		},
		{
			name:     "truncate",
			src:      `"a"!`,
			expected: &Program{Chains: []Chain{{Steps: []Step{{Kind: StepKey, Key: "a"}, {Kind: StepTruncate}}}}},
		},
		{
			name:     "flatten then key",
			src:      `.."key"`,
			expected: &Program{Chains: []Chain{{Steps: []Step{{Kind: StepFlatten}, {Kind: StepKey, Key: "key"}}}}},
		},
		{
			name:     "truncate not last is rejected at parse time",
			src:      `"a"!"b"`,
			err:      "syntax error",
		},
		{
			name:     "empty chain is rejected",
			src:      ``,
			err:      "syntax error",
		},
		{
			name:     "trailing comma is rejected",
			src:      `"a",`,
			err:      "syntax error",
		},
		{
			name:     "unterminated property is rejected",
			src:      `{"a"`,
			err:      "syntax error",
		},
		{
			name:     "trailing input after a complete chain is rejected",
			src:      `"a"]`,
			err:      "failed to parse",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSelector(tc.src)
			if tc.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

// TestParseSelectorTrailingInputIsParseFailure pins down that trailing
// input after a successfully parsed chain is reported as the distinct
// ParseFailure kind (§7), not SyntaxError, matching the specification's
// "trailing input after successful match" case.
func TestParseSelectorTrailingInputIsParseFailure(t *testing.T) {
	_, err := ParseSelector(`"a"]`)
	require.Error(t, err)
	var pf *ParseFailure
	require.ErrorAs(t, err, &pf)
	_, isSyntaxError := err.(*SyntaxError)
	assert.False(t, isSyntaxError)
}
