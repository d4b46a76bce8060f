package cli

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestCliRun(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		input    string
		expected string
		exitCode int
	}{
		{
			name:     "any",
			args:     []string{"."},
			input:    `{"foo":128}`,
			expected: "{\"foo\":128}\n",
			exitCode: exitCodeOK,
		},
		{
			name:     "key",
			args:     []string{`"foo"`},
			input:    `{"foo":128}`,
			expected: "128\n",
			exitCode: exitCodeOK,
		},
		{
			name:     "missing selector is a usage error",
			args:     []string{},
			exitCode: exitCodeUsageErr,
		},
		{
			name:     "invalid selector is a compile error",
			args:     []string{"{"},
			exitCode: exitCodeCompileErr,
		},
		{
			name:     "invalid json is a data error",
			args:     []string{"."},
			input:    `{`,
			exitCode: exitCodeDataErr,
		},
		{
			name:     "key not found is an apply error",
			args:     []string{`"missing"`},
			input:    `{}`,
			exitCode: exitCodeApplyErr,
		},
		{
			name:     "only-parse skips reading input",
			args:     []string{"-p", "."},
			exitCode: exitCodeOK,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var outStream, errStream strings.Builder
			c := cli{
				inStream:  strings.NewReader(tc.input),
				outStream: &outStream,
				errStream: &errStream,
			}
			code := c.run(tc.args)
			assert.Equal(t, tc.exitCode, code)
			if tc.exitCode == exitCodeOK && tc.expected != "" {
				assert.Equal(t, tc.expected, outStream.String())
			}
		})
	}
}
