// Package cipher implements alphabet substitution ciphers and two
// decoders that break them by scoring candidate decodings with trained
// language models.
package cipher

import (
	"fmt"
	"strings"
)

// Alphabet is the lowercase alphabet every Cipher permutes.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Cipher is the image of the alphabet under a substitution: Cipher[i]
// is the letter that replaces Alphabet[i].
type Cipher string

// Shift returns the cipher that maps each letter to the one n positions
// later in the alphabet, wrapping around. Negative n shifts backward.
func Shift(n int) Cipher {
	n %= 26
	if n < 0 {
		n += 26
	}
	return Cipher(Alphabet[n:] + Alphabet[:n])
}

// Permutation builds a cipher from an explicit letter-to-letter mapping
// and rejects anything that is not a bijection over the full alphabet.
func Permutation(mapping map[byte]byte) (Cipher, error) {
	if len(mapping) != len(Alphabet) {
		return "", fmt.Errorf("cipher: mapping covers %d letters, want %d", len(mapping), len(Alphabet))
	}
	var img [26]byte
	var seen [26]bool
	for from, to := range mapping {
		if from < 'a' || from > 'z' || to < 'a' || to > 'z' {
			return "", fmt.Errorf("cipher: mapping %c -> %c outside a-z", from, to)
		}
		if seen[to-'a'] {
			return "", fmt.Errorf("cipher: letter %c mapped to twice", to)
		}
		seen[to-'a'] = true
		img[from-'a'] = to
	}
	return Cipher(img[:]), nil
}

// Inverse returns the cipher that undoes c.
func (c Cipher) Inverse() Cipher {
	var inv [26]byte
	for i := range 26 {
		inv[c[i]-'a'] = byte('a' + i)
	}
	return Cipher(inv[:])
}

// Encode applies the substitution case-preservingly. Digits,
// punctuation, and whitespace pass through unchanged.
func Encode(text string, c Cipher) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return rune(c[r-'a'])
		case r >= 'A' && r <= 'Z':
			return rune(c[r-'A'] - 'a' + 'A')
		}
		return r
	}, text)
}

// Rot13 rotates letters 13 positions. Applying it twice is the
// identity.
func Rot13(text string) string {
	return Encode(text, Shift(13))
}

// Bigrams returns all overlapping length-2 windows of s. The token
// form lives in textutil.TokenBigrams.
func Bigrams(s string) []string {
	runes := []rune(s)
	if len(runes) < 2 {
		return nil
	}
	out := make([]string, 0, len(runes)-1)
	for i := 0; i+2 <= len(runes); i++ {
		out = append(out, string(runes[i:i+2]))
	}
	return out
}
