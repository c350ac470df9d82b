package models

import "html/template"

// Post is a single markdown post loaded from disk. Meta holds the parsed
// front-matter pairs and Body is the raw markdown after the header block.
type Post struct {
	Slug string
	Meta map[string]string
	Body string
}

// PostSummary is the per-request listing view of a post. Content carries the
// abridged body already rendered to HTML.
type PostSummary struct {
	Name    string
	Title   string
	Date    string
	Link    string
	Content template.HTML
}
