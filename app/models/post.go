package models

// Title returns the title front-matter value, empty when absent.
func (p *Post) Title() string {
	return p.Meta["title"]
}

// Date returns the date front-matter value, empty when absent.
func (p *Post) Date() string {
	return p.Meta["date"]
}
