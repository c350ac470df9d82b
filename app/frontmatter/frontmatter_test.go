package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMeta map[string]string
		wantBody string
	}{
		{
			name:  "title and date header",
			input: "%% title: Hello\n%% date: 2020-01-01\nBody text.\n",
			wantMeta: map[string]string{
				"title": "Hello",
				"date":  "2020-01-01",
			},
			wantBody: "Body text.\n",
		},
		{
			name:     "no header block",
			input:    "just text\n%% title: sneaky\n",
			wantMeta: map[string]string{},
			wantBody: "just text\n%% title: sneaky\n",
		},
		{
			name:     "empty input",
			input:    "",
			wantMeta: map[string]string{},
			wantBody: "",
		},
		{
			name:     "redeclared key keeps last value",
			input:    "%% title: One\n%% title: Two\nbody",
			wantMeta: map[string]string{"title": "Two"},
			wantBody: "body",
		},
		{
			name:     "whitespace around key and value",
			input:    "%%  title : Spaced Out  \nrest",
			wantMeta: map[string]string{"title": "Spaced Out"},
			wantBody: "rest",
		},
		{
			name:     "header only, no trailing newline",
			input:    "%% title: Lone",
			wantMeta: map[string]string{"title": "Lone"},
			wantBody: "",
		},
		{
			name:     "non-contiguous header line stays in body",
			input:    "%% title: A\n\n%% date: 2020-01-01\n",
			wantMeta: map[string]string{"title": "A"},
			wantBody: "\n%% date: 2020-01-01\n",
		},
		{
			name:     "whitespace-only value records empty string",
			input:    "%% title:   \n%% date: 2020-01-01\nbody",
			wantMeta: map[string]string{"title": "", "date": "2020-01-01"},
			wantBody: "body",
		},
		{
			name:     "bare colon with no value halts extraction",
			input:    "%% title:\nbody",
			wantMeta: map[string]string{},
			wantBody: "%% title:\nbody",
		},
		{
			name:     "missing colon halts extraction",
			input:    "%% title Hello\nbody",
			wantMeta: map[string]string{},
			wantBody: "%% title Hello\nbody",
		},
		{
			name:     "carriage returns tolerated",
			input:    "%% title: Win\r\nbody\r\n",
			wantMeta: map[string]string{"title": "Win"},
			wantBody: "body\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body := Parse(tt.input)
			assert.Equal(t, tt.wantMeta, meta)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestParseStopsAtFirstNonMatch(t *testing.T) {
	// A later line that matches the pattern must never be extracted once a
	// non-matching line has been seen.
	meta, body := Parse("plain opener\n%% title: Hidden\n")
	assert.Empty(t, meta)
	assert.Contains(t, body, "%% title: Hidden")
}
