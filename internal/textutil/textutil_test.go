package textutil

import (
	"reflect"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"``EGAD!'' Edgar cried.", []string{"egad", "edgar", "cried"}},
		{"hello world", []string{"hello", "world"}},
		{"room 101", []string{"room", "101"}},
		{"", nil},
		{"...", nil},
		{"don't", []string{"don", "t"}},
	}
	for _, tt := range tests {
		got := Words(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Words(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"``EGAD!'' Edgar cried.", "egad edgar cried"},
		{"Hello,\n  World!", "hello world"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Canonicalize(tt.input); got != tt.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLetters(t *testing.T) {
	got := Letters("ab c")
	want := []string{"a", "b", " ", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Letters = %v, want %v", got, want)
	}
	if got := Letters(""); len(got) != 0 {
		t.Errorf("Letters(\"\") = %v, want empty", got)
	}
}

func TestTokenBigrams(t *testing.T) {
	got := TokenBigrams([]string{"this", "is", "a", "test"})
	want := [][2]string{{"this", "is"}, {"is", "a"}, {"a", "test"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenBigrams = %v, want %v", got, want)
	}
	if got := TokenBigrams([]string{"one"}); got != nil {
		t.Errorf("TokenBigrams of one token = %v, want nil", got)
	}
}
