package classify

import (
	"bytes"
	"testing"
)

func TestIsBinary(t *testing.T) {
	text := bytes.Repeat([]byte("a"), 9000)

	withNulAt := func(off int) []byte {
		b := bytes.Clone(text)
		b[off] = 0
		return b
	}

	tests := []struct {
		name string
		buf  []byte
		want bool
	}{
		{"empty", nil, false},
		{"ascii 9000", text, false},
		{"nul at 0", withNulAt(0), true},
		{"nul at 100", withNulAt(100), true},
		{"nul at last window byte", withNulAt(SniffWindow - 1), true},
		{"nul just past window", withNulAt(SniffWindow), false},
		{"nul at 8500", withNulAt(8500), false},
		{"utf8 text", []byte("héllo wörld ✓"), false},
		{"high bytes no nul", []byte{0xff, 0xfe, 0x80, 0x01}, false},
		{"single nul", []byte{0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinary(tt.buf); got != tt.want {
				t.Errorf("IsBinary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsBinaryDoesNotModifyInput(t *testing.T) {
	buf := []byte("abc\x00def")
	orig := bytes.Clone(buf)
	IsBinary(buf)
	if !bytes.Equal(buf, orig) {
		t.Fatalf("input modified: %q", buf)
	}
}
