package jsonquery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// documentComparer lets go-cmp diff Documents by their public accessors
// instead of panicking on the unexported kind-dependent fields, the way the
// teacher's cli/run_test.go diffs CLI output with cmp.Diff.
var documentComparer = cmp.Comparer(func(a, b Document) bool { return a.Equal(b) })

func TestNewObjectFirstWins(t *testing.T) {
	obj := NewObject([]Pair{
		{Key: "a", Value: NewNumber("1")},
		{Key: "b", Value: NewNumber("2")},
		{Key: "a", Value: NewNumber("3")},
	})
	assert.Equal(t, 2, obj.Len())
	v, ok := obj.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v.Lexeme())
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
}

func TestDocumentEqual(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Document
		expected bool
	}{
		{
			name:     "equal numbers by lexeme",
			a:        NewNumber("1.0"),
			b:        NewNumber("1.0"),
			expected: true,
		},
		{
			name:     "numbers differ by lexeme even if mathematically equal",
			a:        NewNumber("1.0"),
			b:        NewNumber("1.00"),
			expected: false,
		},
		{
			name:     "arrays compare elementwise in order",
			a:        NewArray([]Document{NewNumber("1"), NewNumber("2")}),
			b:        NewArray([]Document{NewNumber("2"), NewNumber("1")}),
			expected: false,
		},
		{
			name: "objects compare by association set regardless of order",
			a: NewObject([]Pair{
				{Key: "a", Value: NewNumber("1")},
				{Key: "b", Value: NewNumber("2")},
			}),
			b: NewObject([]Pair{
				{Key: "b", Value: NewNumber("2")},
				{Key: "a", Value: NewNumber("1")},
			}),
			expected: true,
		},
		{
			name:     "null equals null",
			a:        Null,
			b:        Null,
			expected: true,
		},
		{
			name:     "different kinds never equal",
			a:        NewString("1"),
			b:        NewNumber("1"),
			expected: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Equal(tc.b))
		})
	}
}

func TestDocumentEqualViaCmpComparer(t *testing.T) {
	a := NewObject([]Pair{
		{Key: "a", Value: NewArray([]Document{NewNumber("1"), NewNumber("2")})},
		{Key: "b", Value: Null},
	})
	b := NewObject([]Pair{
		{Key: "b", Value: Null},
		{Key: "a", Value: NewArray([]Document{NewNumber("1"), NewNumber("2")})},
	})
	if diff := cmp.Diff(a, b, documentComparer); diff != "" {
		t.Errorf("documents should compare equal regardless of key order (-a +b):\n%s", diff)
	}
}

func TestDocumentSerialize(t *testing.T) {
	doc := NewObject([]Pair{
		{Key: "a", Value: NewArray([]Document{NewNumber("1"), Null, NewBool(true)})},
		{Key: "b", Value: NewString(`hello\n`)},
	})
	assert.Equal(t, `{"a":[1,null,true],"b":"hello\n"}`, doc.Serialize())
}
