package cipher

import "testing"

// trainingText stands in for a book-sized corpus in decoder tests. It
// only needs enough natural English for letter-pair statistics to
// separate real text from rotated gibberish.
const trainingText = `
The small town lay under a wide morning sky, and the people there went
about their work in the usual way. A letter arrived at the post office,
and the clerk read the name on the front and set it aside for the
carrier. Down the road the school bell rang, and children walked in
twos and threes along the path by the river. In the evening the lamps
were lit one by one, and the sound of voices drifted from the open
doors of the houses. It is easy to read words without spaces when you
have seen the words many times before. This is a secret message that no
one in the town would ever think to send. The best stories are the ones
told slowly, with care, and with a good ear for the way people really
speak, and the teller keeps the listener close until the very end.
`

func TestShiftDecoderRecoversAllShifts(t *testing.T) {
	d := NewShiftDecoder(trainingText)
	msg := "This is a secret message."

	for n := range 26 {
		ciphertext := Encode(msg, Shift(n))
		if got := d.Decode(ciphertext); got != msg {
			t.Errorf("shift %d: Decode(%q) = %q, want %q", n, ciphertext, got, msg)
		}
	}
}

func TestShiftDecoderRot13(t *testing.T) {
	d := NewShiftDecoder(trainingText)
	if got := d.Decode(Rot13("Hello, world!")); got != "Hello, world!" {
		t.Errorf("Decode = %q, want %q", got, "Hello, world!")
	}
}

func TestShiftDecoderEmpty(t *testing.T) {
	d := NewShiftDecoder(trainingText)
	if got := d.Decode(""); got != "" {
		t.Errorf("Decode(\"\") = %q, want empty", got)
	}
}

func TestShiftDecoderNoLetters(t *testing.T) {
	d := NewShiftDecoder(trainingText)
	// All 26 candidates are identical; the lowest shift wins the tie.
	if got := d.Decode("123 !?"); got != "123 !?" {
		t.Errorf("Decode = %q, want unchanged", got)
	}
}

func TestShiftDecoderScoreSmoothed(t *testing.T) {
	d := NewShiftDecoder(trainingText)
	// Add-one smoothing keeps even never-seen pairs above zero.
	if s := d.Score("xqxq"); s <= 0 {
		t.Errorf("Score(xqxq) = %v, want > 0", s)
	}
	common := d.Score("the the the")
	rare := d.Score("xqj qjx jxq")
	if common <= rare {
		t.Errorf("Score(common) = %v not above Score(rare) = %v", common, rare)
	}
}
