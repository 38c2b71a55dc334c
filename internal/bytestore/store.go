package bytestore

import (
	"encoding/binary"
	"fmt"
	"os"
)

// LoadError reports a file that could not be read into a Store.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not read '%s': %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Store owns the loaded bytes. It is never mutated after construction.
type Store struct {
	path  string
	data  []byte
	words WordView
}

// Load reads the whole file at path.
func Load(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	s := fromOwned(b)
	s.path = path
	return s, nil
}

// New copies b into a new Store.
func New(b []byte) *Store {
	owned := make([]byte, len(b))
	copy(owned, b)
	return fromOwned(owned)
}

func fromOwned(b []byte) *Store {
	return &Store{data: b, words: pack(b)}
}

func (s *Store) Path() string { return s.path }

func (s *Store) Len() int { return len(s.data) }

// Byte returns the byte at offset i, ok is false past the end.
func (s *Store) Byte(i int) (byte, bool) {
	if i < 0 || i >= len(s.data) {
		return 0, false
	}
	return s.data[i], true
}

// Words returns the read-only word view used by the renderer.
func (s *Store) Words() WordView { return s.words }

// WordView is the buffer seen as little-endian 32-bit words. A trailing
// partial word is zero padded; ByteLen keeps the real length.
type WordView struct {
	words   []uint32
	byteLen int
}

// pack groups b into little-endian words so byte 4k+j lands in bits 8j..8j+7
// of word k.
func pack(b []byte) WordView {
	n := (len(b) + 3) / 4
	words := make([]uint32, n)
	full := len(b) / 4
	for i := 0; i < full; i++ {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	if rem := len(b) - full*4; rem > 0 {
		var tail [4]byte
		copy(tail[:], b[full*4:])
		words[full] = binary.LittleEndian.Uint32(tail[:])
	}
	return WordView{words: words, byteLen: len(b)}
}

// NewWordView packs b without wrapping it in a Store.
func NewWordView(b []byte) WordView { return pack(b) }

func (v WordView) Len() int { return len(v.words) }

func (v WordView) ByteLen() int { return v.byteLen }

// Word returns word i, ok is false when i is out of range.
func (v WordView) Word(i int) (uint32, bool) {
	if i < 0 || i >= len(v.words) {
		return 0, false
	}
	return v.words[i], true
}
