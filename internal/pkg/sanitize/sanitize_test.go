package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringEscapesHTMLCharacters(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"angle brackets", `<script>alert(1)</script>`, "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"double quotes", `say "hi"`, "say &quot;hi&quot;"},
		{"single quotes", "O'Neal", "O&#x27;Neal"},
		{"plain text untouched", "LeBron James", "LeBron James"},
		{"whitespace trimmed", "  Pat Riley  ", "Pat Riley"},
		{"ampersand untouched", "Smith & Sons", "Smith & Sons"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.in))
		})
	}
}

func TestStringTruncatesLongInput(t *testing.T) {
	long := strings.Repeat("a", 5000)
	assert.Len(t, String(long), 1000)
}

func TestStringIsIdempotent(t *testing.T) {
	inputs := []string{
		`<b>"bold"</b>`,
		"O'Neal",
		"plain",
		"  padded  ",
	}
	for _, in := range inputs {
		once := String(in)
		assert.Equal(t, once, String(once), "sanitizing twice must not double-escape %q", in)
	}
}

func TestValueWalksNestedStructures(t *testing.T) {
	in := map[string]any{
		"name": "<Pat>",
		"age":  45.0,
		"ok":   true,
		"none": nil,
		"history": []any{
			"'Heat'",
			map[string]any{"team": `"Lakers"`},
		},
	}

	got := Value(in).(map[string]any)

	assert.Equal(t, "&lt;Pat&gt;", got["name"])
	assert.Equal(t, 45.0, got["age"])
	assert.Equal(t, true, got["ok"])
	assert.Nil(t, got["none"])

	history := got["history"].([]any)
	assert.Equal(t, "&#x27;Heat&#x27;", history[0])
	assert.Equal(t, "&quot;Lakers&quot;", history[1].(map[string]any)["team"])
}

func TestValueLeavesScalarsAlone(t *testing.T) {
	assert.Equal(t, 42.0, Value(42.0))
	assert.Equal(t, false, Value(false))
	assert.Nil(t, Value(nil))
}

func TestStringsSanitizesEachElement(t *testing.T) {
	assert.Equal(t, []string{"&lt;a&gt;", "b"}, Strings([]string{"<a>", " b "}))
	assert.Nil(t, Strings(nil))
}
