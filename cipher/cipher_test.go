package cipher

import (
	"reflect"
	"testing"
)

func TestShiftEncode(t *testing.T) {
	tests := []struct {
		text  string
		shift int
		want  string
	}{
		{"abc z", 1, "bcd a"},
		{"This is a secret message.", 17, "Kyzj zj r jvtivk dvjjrxv."},
		{"hello", 0, "hello"},
		{"xyz", 3, "abc"},
	}
	for _, tt := range tests {
		if got := Encode(tt.text, Shift(tt.shift)); got != tt.want {
			t.Errorf("Encode(%q, Shift(%d)) = %q, want %q", tt.text, tt.shift, got, tt.want)
		}
	}
}

func TestShiftNormalization(t *testing.T) {
	if Shift(-1) != Shift(25) {
		t.Errorf("Shift(-1) = %q, want %q", Shift(-1), Shift(25))
	}
	if Shift(26) != Shift(0) {
		t.Errorf("Shift(26) = %q, want %q", Shift(26), Shift(0))
	}
}

func TestRot13(t *testing.T) {
	if got := Rot13("hello"); got != "uryyb" {
		t.Errorf("Rot13(hello) = %q, want uryyb", got)
	}

	inputs := []string{
		"hello",
		"Hello, World!",
		"Mixed 123 digits & punctuation?!",
		"",
	}
	for _, in := range inputs {
		if got := Rot13(Rot13(in)); got != in {
			t.Errorf("Rot13(Rot13(%q)) = %q", in, got)
		}
	}
}

func TestEncodePreservesNonLetters(t *testing.T) {
	got := Encode("a1b2 c3!", Shift(1))
	if want := "b1c2 d3!"; got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncodePreservesCase(t *testing.T) {
	got := Encode("AbC", Shift(2))
	if want := "CdE"; got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestInverse(t *testing.T) {
	for _, n := range []int{1, 5, 13, 25} {
		c := Shift(n)
		text := "The five boxing wizards jump quickly."
		if got := Encode(Encode(text, c), c.Inverse()); got != text {
			t.Errorf("Inverse of Shift(%d) failed: %q", n, got)
		}
	}
}

func TestPermutation(t *testing.T) {
	identity := make(map[byte]byte)
	for i := 0; i < 26; i++ {
		identity[byte('a'+i)] = byte('a' + i)
	}
	c, err := Permutation(identity)
	if err != nil {
		t.Fatal(err)
	}
	if got := Encode("hello", c); got != "hello" {
		t.Errorf("identity permutation changed text: %q", got)
	}

	// Not a bijection: two letters map to a.
	bad := make(map[byte]byte)
	for i := 0; i < 26; i++ {
		bad[byte('a'+i)] = byte('a' + i)
	}
	bad['b'] = 'a'
	if _, err := Permutation(bad); err == nil {
		t.Error("duplicate target accepted")
	}

	// Incomplete mapping.
	if _, err := Permutation(map[byte]byte{'a': 'b'}); err == nil {
		t.Error("incomplete mapping accepted")
	}
}

func TestBigrams(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"this", []string{"th", "hi", "is"}},
		{"ab", []string{"ab"}},
		{"a", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := Bigrams(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Bigrams(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
