package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty input", input: "", want: ""},
		{name: "unparseable input returned unchanged", input: "not-a-date", want: "not-a-date"},
		{name: "rfc3339 timestamp", input: "2024-03-15T00:00:00Z", want: "March 2024"},
		{name: "timestamp with millis", input: "2024-03-15T10:30:00.000Z", want: "March 2024"},
		{name: "plain date metafield", input: "2022-11-01", want: "November 2022"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.input))
		})
	}
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "January 2020 - March 2022", FormatDateRange("2020-01-15", "2022-03-01"))
	assert.Equal(t, "January 2020 - Present", FormatDateRange("2020-01-15", ""))
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLength int
		want      string
	}{
		{name: "within limit unchanged", text: "short", maxLength: 10, want: "short"},
		{name: "exactly at limit unchanged", text: "abcde", maxLength: 5, want: "abcde"},
		{name: "hard cut with ellipsis", text: "abcdefghij", maxLength: 5, want: "abcde..."},
		{name: "trailing space trimmed before ellipsis", text: "abcd efghij", maxLength: 5, want: "abcd..."},
		{name: "cuts mid-word not at boundary", text: "hello world", maxLength: 8, want: "hello wo..."},
		{name: "empty text", text: "", maxLength: 5, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateText(tt.text, tt.maxLength))
		})
	}
}

func TestTruncateTextLength(t *testing.T) {
	// n runes plus the three-dot ellipsis when nothing needs trimming
	got := TruncateText("abcdefghijklmnop", 10)
	assert.Len(t, got, 13)
}

func TestCalculateYearsFromDate(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "full years elapsed", start: "2020-01-15", end: "2024-01-15", want: 4},
		{name: "anniversary not yet reached", start: "2020-06-15", end: "2024-03-01", want: 3},
		{name: "same month earlier day", start: "2020-06-15", end: "2024-06-10", want: 3},
		{name: "same month later day", start: "2020-06-15", end: "2024-06-20", want: 4},
		{name: "unparseable start", start: "nope", end: "2024-01-01", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateYearsFromDate(tt.start, tt.end))
		})
	}
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Hello", CapitalizeFirst("hello"))
	assert.Equal(t, "Hello", CapitalizeFirst("Hello"))
	assert.Equal(t, "", CapitalizeFirst(""))
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "My Portfolio Site", want: "my-portfolio-site"},
		{input: "Go + React (v2)!", want: "go-react-v2"},
		{input: "  spaced   out  ", want: "spaced-out"},
		{input: "already-slugged", want: "already-slugged"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.input))
	}
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "", ImageURL("", "", ""))
	assert.Equal(t, "https://imgix.test/a.jpg?auto=format,compress",
		ImageURL("https://cdn.test/a.jpg", "https://imgix.test/a.jpg", ""))
	assert.Equal(t, "https://cdn.test/a.jpg?w=400&h=200&fit=crop&auto=format,compress",
		ImageURL("https://cdn.test/a.jpg", "", "w=400&h=200&fit=crop"))
}

func TestValidateURL(t *testing.T) {
	assert.True(t, ValidateURL("https://example.com/path"))
	assert.False(t, ValidateURL("example.com"))
	assert.False(t, ValidateURL(""))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.False(t, IsValidEmail("user@example"))
	assert.False(t, IsValidEmail("not an email"))
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-03-15T10:30:00Z")
	require.True(t, ok)
	assert.Equal(t, 2024, got.Year())

	_, ok = ParseDate("15/03/2024")
	assert.False(t, ok)
}
