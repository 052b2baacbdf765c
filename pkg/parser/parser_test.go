package parser

import (
	"strings"
	"testing"
)

const articleHTML = `<html>
<head><title>Council approves budget</title></head>
<body>
  <nav><a href="/">Home</a></nav>
  <h1>Council approves
      budget</h1>
  <p>The city council approved the budget on Monday.</p>
  <blockquote><p>This is a good day for the city.</p></blockquote>
  <ul><li>Schools get more funding.</li><li>   </li></ul>
</body>
</html>`

func TestParseBlocks(t *testing.T) {
	p := &Parser{}
	page, err := p.ParseBlocks("article.html", articleHTML)
	if err != nil {
		t.Fatalf("ParseBlocks() error = %v", err)
	}

	if page.Title != "Council approves budget" {
		t.Errorf("Title = %q", page.Title)
	}

	wantTypes := []string{"h1", "p", "blockquote", "li"}
	if len(page.Content) != len(wantTypes) {
		t.Fatalf("got %d blocks, want %d: %+v", len(page.Content), len(wantTypes), page.Content)
	}
	for i, typ := range wantTypes {
		if page.Content[i].Type != typ {
			t.Errorf("block %d type = %q, want %q", i, page.Content[i].Type, typ)
		}
	}
	if page.Content[0].Text != "Council approves budget" {
		t.Errorf("heading text = %q", page.Content[0].Text)
	}
}

func TestPageToPlainText(t *testing.T) {
	p := &Parser{}
	page, err := p.ParseBlocks("article.html", articleHTML)
	if err != nil {
		t.Fatalf("ParseBlocks() error = %v", err)
	}

	text := page.ToPlainText()
	for _, want := range []string{
		"The city council approved the budget on Monday.",
		"This is a good day for the city.",
		"Schools get more funding.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("plain text missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Home") {
		t.Errorf("plain text includes navigation:\n%s", text)
	}
}

func TestParse_FallsBackToBlocks(t *testing.T) {
	p := &Parser{}
	page, err := p.Parse("https://news.example.com/a", "<p>Short note.</p>")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !strings.Contains(page.ToPlainText(), "Short note.") {
		t.Errorf("ToPlainText() = %q", page.ToPlainText())
	}
}

func TestParse_ReadabilityArticle(t *testing.T) {
	var body strings.Builder
	body.WriteString(`<html><head><title>Senate passes budget</title></head><body>`)
	body.WriteString(`<nav><a href="/">Home</a> <a href="/world">World</a></nav><article>`)
	for i := 0; i < 6; i++ {
		body.WriteString(`<p>Senate officials reported on Tuesday that the annual budget passed after a long debate, `)
		body.WriteString(`with lawmakers from both parties agreeing to fund schools, roads and public health programs.</p>`)
	}
	body.WriteString(`</article><footer>Copyright</footer></body></html>`)

	p := &Parser{}
	page, err := p.Parse("https://news.example.com/budget", body.String())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	text := page.ToPlainText()
	if !strings.Contains(text, "Senate officials reported on Tuesday") {
		t.Errorf("article text missing:\n%s", text)
	}
	if len(page.Content) == 0 {
		t.Error("expected content blocks")
	}
}

func TestNormalizeText(t *testing.T) {
	got := normalizeText("  line one \n\n   line two  \n")
	if got != "line one line two" {
		t.Errorf("normalizeText() = %q", got)
	}
}
