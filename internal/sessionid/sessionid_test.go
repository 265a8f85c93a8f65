package sessionid

import (
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	id := New()
	if len(id) != 26 {
		t.Errorf("expected 26 characters, got %d", len(id))
	}
	if err := Validate(id); err != nil {
		t.Errorf("generated ID failed validation: %v", err)
	}
}

func TestNewUnique(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New()
		if ids[id] {
			t.Errorf("duplicate ID generated: %s", id)
		}
		ids[id] = true
	}
}

func TestNewTimeSorted(t *testing.T) {
	var ids []string
	for i := 0; i < 10; i++ {
		ids = append(ids, New())
		time.Sleep(2 * time.Millisecond)
	}

	// UUIDv7 leads with the timestamp, so later IDs sort later.
	for i := 1; i < len(ids); i++ {
		if strings.Compare(ids[i-1], ids[i]) >= 0 {
			t.Errorf("IDs not sorted: %s >= %s", ids[i-1], ids[i])
		}
	}
}

type fixedSource struct{ v int }

func (f fixedSource) Intn(n int) int { return f.v % n }

func TestNewWithSource(t *testing.T) {
	id := NewWithSource(fixedSource{v: 17})
	if err := Validate(id); err != nil {
		t.Errorf("source-backed ID failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "01h5n0et5q6mt3v7ms1234abcd", false},
		{"too short", "01h5n0et5q6mt3v7ms123", true},
		{"too long", "01h5n0et5q6mt3v7ms1234abcdef", true},
		{"first char too high", "81h5n0et5q6mt3v7ms1234abcd", true},
		{"excluded letter", "01h5n0et5q6mt3v7ms1234abci", true},
		{"uppercase rejected", "01H5N0ET5Q6MT3V7MS1234ABCD", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestAlphabet(t *testing.T) {
	if len(alphabet) != 32 {
		t.Fatalf("alphabet should have 32 characters, got %d", len(alphabet))
	}
	seen := make(map[rune]bool)
	for _, c := range alphabet {
		if seen[c] {
			t.Errorf("duplicate character in alphabet: %c", c)
		}
		seen[c] = true
	}
	for _, c := range "ilou" {
		if strings.ContainsRune(alphabet, c) {
			t.Errorf("alphabet must exclude %c", c)
		}
	}
}

func TestEncodeKnownValue(t *testing.T) {
	// All zero bits encode to all-zero characters.
	if got := encode([16]byte{}); got != strings.Repeat("0", 26) {
		t.Errorf("encode(zero) = %q", got)
	}
	// All one bits fill every 5-bit group except the right-padded tail.
	var ones [16]byte
	for i := range ones {
		ones[i] = 0xff
	}
	if got := encode(ones); got != strings.Repeat("z", 25)+"w" {
		t.Errorf("encode(ones) = %q", got)
	}
}
