// Package ir implements a small term-frequency information retrieval
// system: index documents as raw token lists, then rank them against
// literal-word queries.
package ir

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/statext/gram/internal/corpus"
	"github.com/statext/gram/internal/textutil"
)

// Document holds the metadata kept for one indexed document. The first
// line of the text is kept as the title.
type Document struct {
	Title    string
	URL      string
	NumWords int
}

// Result is one query hit.
type Result struct {
	Score float64
	DocID int
}

// System is an inverted index of word counts per document.
type System struct {
	index     map[string]map[int]int
	stopwords map[string]bool
	docs      []Document
}

// New creates an empty system. stopwords is a space-separated list of
// words excluded from both indexing and queries.
func New(stopwords string) *System {
	s := &System{
		index:     make(map[string]map[int]int),
		stopwords: make(map[string]bool),
	}
	for _, w := range textutil.Words(stopwords) {
		s.stopwords[w] = true
	}
	return s
}

// IndexDocument adds the text of one document under the given url.
func (s *System) IndexDocument(text, url string) {
	title := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		title = text[:i]
	}

	docwords := textutil.Words(text)
	docID := len(s.docs)
	s.docs = append(s.docs, Document{
		Title:    strings.TrimSpace(title),
		URL:      url,
		NumWords: len(docwords),
	})
	for _, w := range docwords {
		if s.stopwords[w] {
			continue
		}
		m := s.index[w]
		if m == nil {
			m = make(map[int]int)
			s.index[w] = m
		}
		m[docID]++
	}
}

// IndexCollection indexes a whole collection of files.
func (s *System) IndexCollection(paths []string) error {
	for _, path := range paths {
		text, err := corpus.ReadFile(path)
		if err != nil {
			return fmt.Errorf("ir: %w", err)
		}
		s.IndexDocument(text, path)
	}
	return nil
}

// Len returns the number of indexed documents.
func (s *System) Len() int {
	return len(s.docs)
}

// Document returns the metadata for a query hit.
func (s *System) Document(docID int) Document {
	return s.docs[docID]
}

// Query returns up to n documents matching the query words, best
// first. Stopwords in the query are ignored; a query of nothing but
// stopwords matches nothing.
func (s *System) Query(query string, n int) []Result {
	var qwords []string
	for _, w := range textutil.Words(query) {
		if !s.stopwords[w] {
			qwords = append(qwords, w)
		}
	}
	if len(qwords) == 0 {
		return nil
	}

	// Candidate documents come from the postings of the rarest query
	// word; the other words only contribute to the score.
	rarest := qwords[0]
	for _, w := range qwords[1:] {
		if len(s.index[w]) < len(s.index[rarest]) {
			rarest = w
		}
	}

	results := make([]Result, 0, len(s.index[rarest]))
	for docID := range s.index[rarest] {
		score := 0.0
		for _, w := range qwords {
			score += s.score(w, docID)
		}
		results = append(results, Result{Score: score, DocID: docID})
	}
	slices.SortFunc(results, func(a, b Result) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return b.DocID - a.DocID
	})
	if n < len(results) {
		results = results[:n]
	}
	return results
}

// score rates one word against one document: log-damped term frequency
// normalized by document length.
func (s *System) score(word string, docID int) float64 {
	return math.Log(1+float64(s.index[word][docID])) /
		math.Log(1+float64(s.docs[docID].NumWords))
}
