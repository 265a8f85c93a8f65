package handlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lox/pokerhands/internal/fileutil"
)

// Encode writes the session header followed by one [hunt_N] table per
// completed hunt, in completion order. Tables are numbered from 1.
func Encode(w io.Writer, s *Session) error {
	if s == nil {
		return fmt.Errorf("session is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	for i, hunt := range s.Hunts {
		if _, err := fmt.Fprintf(w, "\n[hunt_%d]\n", i+1); err != nil {
			return err
		}

		// The tally table needs a dotted header to stay inside the hunt
		// table, so it is written separately below.
		bare := hunt
		bare.Tally = nil

		enc := toml.NewEncoder(w)
		enc.Indent = "\t"
		if err := enc.Encode(bare); err != nil {
			return fmt.Errorf("encode hunt %d: %w", i+1, err)
		}

		if len(hunt.Tally) > 0 {
			if _, err := fmt.Fprintf(w, "\n[hunt_%d.tally]\n", i+1); err != nil {
				return err
			}
			enc := toml.NewEncoder(w)
			enc.Indent = "\t"
			if err := enc.Encode(hunt.Tally); err != nil {
				return fmt.Errorf("encode hunt %d tally: %w", i+1, err)
			}
		}
	}

	return nil
}

// EncodeToString encodes the session to a TOML document.
func EncodeToString(s *Session) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, s); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write encodes the session and writes it atomically, creating parent
// directories as needed.
func Write(path string, s *Session) error {
	doc, err := EncodeToString(s)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}
	return fileutil.WriteFileAtomic(path, []byte(doc), 0o644)
}

// Read loads a session file written by Write.
func Read(path string) (*Session, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return Decode(string(data))
}

// Decode parses a session document, restoring hunts in section order.
func Decode(doc string) (*Session, error) {
	var s Session
	if _, err := toml.Decode(doc, &s); err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}

	// Hunt tables decode as primitives first so the header scalars at the
	// top level can be skipped.
	var raw map[string]toml.Primitive
	md, err := toml.Decode(doc, &raw)
	if err != nil {
		return nil, fmt.Errorf("decode sections: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		if strings.HasPrefix(key, "hunt_") {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return compareHuntKeys(keys[i], keys[j]) < 0
	})

	for _, key := range keys {
		var h Hunt
		if err := md.PrimitiveDecode(raw[key], &h); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		s.Hunts = append(s.Hunts, h)
	}

	return &s, nil
}

// compareHuntKeys orders hunt_N section keys numerically, falling back to
// string order when a suffix is not a number.
func compareHuntKeys(a, b string) int {
	an, aerr := strconv.Atoi(strings.TrimPrefix(a, "hunt_"))
	bn, berr := strconv.Atoi(strings.TrimPrefix(b, "hunt_"))
	if aerr == nil && berr == nil {
		return an - bn
	}
	return strings.Compare(a, b)
}
