// Package corpus loads training text from plain-text or HTML files.
package corpus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// NamedText pairs a source path with its loaded text.
type NamedText struct {
	Name string
	Text string
}

// ReadFile returns the text content of path. HTML files are reduced to
// their visible text first.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read corpus: %w", err)
	}
	text := string(data)
	if !isHTML(path, text) {
		return text, nil
	}
	extracted, err := ExtractText(strings.NewReader(text))
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}
	return extracted, nil
}

func isHTML(path, text string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	head := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

// ExtractText parses HTML and returns its visible text with scripts,
// styles, and the document head dropped and whitespace collapsed.
func ExtractText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	doc.Find("script, style, noscript, head").Remove()

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Selection.Nodes {
		walk(n)
	}
	return strings.Join(strings.Fields(b.String()), " "), nil
}

// ReadDir loads every regular file in dir carrying the extension (empty
// ext loads everything), in name order.
func ReadDir(dir, ext string) ([]NamedText, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}
	var out []NamedText
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext != "" && !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		text, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, NamedText{Name: path, Text: text})
	}
	return out, nil
}
