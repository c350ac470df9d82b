package frontmatter

import (
	"regexp"
	"strings"
)

// linePattern matches one front-matter line: a %% prefix, a word key
// optionally surrounded by whitespace, a colon, and one or more characters as
// the value. The value is trimmed of surrounding whitespace afterwards, so a
// whitespace-only value records an empty string rather than halting the
// header block.
var linePattern = regexp.MustCompile(`^%%\s*(\w+)\s*:(.+)$`)

// Parse strips well-formed front-matter lines from the start of raw and
// returns the collected metadata together with the remaining body.
//
// Extraction is anchored: each iteration matches only the first line of the
// remaining text, and the first non-matching line ends the header block with
// everything from it onward kept as body verbatim. A line deeper in the body
// that happens to look like front matter is never extracted. Re-declared keys
// keep the last value. A text with no header block is not an error; it parses
// to empty metadata and the full text as body.
func Parse(raw string) (map[string]string, string) {
	meta := make(map[string]string)
	rest := raw
	for rest != "" {
		line, remainder, found := strings.Cut(rest, "\n")
		m := linePattern.FindStringSubmatch(strings.TrimSuffix(line, "\r"))
		if m == nil {
			break
		}
		meta[m[1]] = strings.TrimSpace(m[2])
		if !found {
			rest = ""
			break
		}
		rest = remainder
	}
	return meta, rest
}
