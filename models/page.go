package models

import "strings"

// Page is a news article extracted from HTML.
type Page struct {
	Source  string         `json:"source"`
	Title   string         `json:"title"`
	Byline  string         `json:"byline,omitempty"`
	Content []ContentBlock `json:"content"`
}

// ContentBlock represents a semantic block of text on a page.
type ContentBlock struct {
	Type string `json:"type"` // e.g., "h1", "h2", "p", "li", "blockquote"
	Text string `json:"text"`
}

// ToPlainText joins the title and every block with newlines. Each heading or
// paragraph stays on its own line so sentence punctuation is preserved.
func (p *Page) ToPlainText() string {
	var sb strings.Builder

	if p.Title != "" {
		sb.WriteString(p.Title)
		sb.WriteString("\n")
	}
	for _, block := range p.Content {
		if block.Text == "" {
			continue
		}
		sb.WriteString(block.Text)
		sb.WriteString("\n")
	}

	return sb.String()
}
