// Package textutil provides the tokenization helpers shared by the
// text models, the decoders, and the retrieval system.
package textutil

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`[a-z0-9]+`)

// Words returns the lowercase alphanumeric tokens of text, in order,
// ignoring punctuation.
func Words(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// Canonicalize reduces text to lowercase words separated by single
// spaces.
func Canonicalize(text string) string {
	return strings.Join(Words(text), " ")
}

// Letters splits s into single-rune tokens, spaces included.
func Letters(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// TokenBigrams returns all overlapping pairs of consecutive tokens.
func TokenBigrams(tokens []string) [][2]string {
	if len(tokens) < 2 {
		return nil
	}
	out := make([][2]string, 0, len(tokens)-1)
	for i := 0; i+2 <= len(tokens); i++ {
		out = append(out, [2]string{tokens[i], tokens[i+1]})
	}
	return out
}
