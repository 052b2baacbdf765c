// Package parser turns an HTML news page into plain article text before it is
// submitted for classification.
package parser

import (
	"bufio"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/fake-news-detector/models"
	"github.com/go-shiori/go-readability"
)

// blockSelector lists the tags that carry article prose.
const blockSelector = "h1,h2,h3,h4,p,li,blockquote"

type Parser struct{}

// Parse extracts the main article from html. source is a URL or file path used
// to resolve relative links. When readability finds no article the whole
// document body is scanned instead.
func (p *Parser) Parse(source, html string) (*models.Page, error) {
	pageURL, err := sourceURL(source)
	if err != nil {
		return nil, err
	}

	rp := readability.NewParser()
	article, err := rp.Parse(strings.NewReader(html), pageURL)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		page, err := p.ParseBlocks(source, article.Content)
		if err != nil {
			return nil, err
		}
		page.Title = normalizeText(article.Title)
		page.Byline = normalizeText(article.Byline)
		if len(page.Content) > 0 {
			return page, nil
		}
	}

	return p.ParseBlocks(source, html)
}

// ParseBlocks collects prose blocks from html in document order. Nested
// matches (a p inside a blockquote) are kept once, at the outermost block.
func (p *Parser) ParseBlocks(source, html string) (*models.Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	var content []models.ContentBlock
	doc.Find(blockSelector).Each(func(i int, s *goquery.Selection) {
		if s.ParentsFiltered(blockSelector).Length() > 0 {
			return
		}
		text := normalizeText(s.Text())
		if text == "" {
			return
		}
		content = append(content, models.ContentBlock{
			Type: goquery.NodeName(s),
			Text: text,
		})
	})

	return &models.Page{
		Source:  source,
		Title:   normalizeText(doc.Find("title").First().Text()),
		Content: content,
	}, nil
}

func sourceURL(source string) (*url.URL, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		u, err := url.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("invalid source url: %w", err)
		}
		return u, nil
	}
	abs, err := filepath.Abs(source)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", source, err)
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}, nil
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
