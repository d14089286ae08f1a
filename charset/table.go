/*
Copyright (c) 2019-2021 Andreas T Jonsson

This software is provided 'as-is', without any express or implied
warranty. In no event will the authors be held liable for any damages
arising from the use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
   claim that you wrote the original software. If you use this software
   in a product, an acknowledgment in the product documentation would be
   appreciated but is not required.
2. Altered source versions must be plainly marked as such, and must not be
   misrepresented as being the original software.
3. This notice may not be removed or altered from any source distribution.
*/

// Package charset maps extended Latin, box drawing and math characters to
// the single byte codepage 437 layout used by character LCD font ROMs.
package charset

import (
	"fmt"
	"sync"
	"unicode/utf8"
)

// Entry is a single character to byte mapping.
type Entry struct {
	Char rune
	Byte byte
}

// Table is an immutable character to byte mapping. It is safe for
// concurrent use.
type Table struct {
	bytes map[rune]byte
	runes [256]rune
	valid [256]bool
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process wide table. It is built on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = New()
	})
	return defaultTable
}

// New builds a table from the fixed font layout.
func New() *Table {
	t := &Table{bytes: make(map[rune]byte, len(entries))}
	for _, e := range entries {
		if _, ok := t.bytes[e.Char]; ok {
			panic(fmt.Sprintf("charset: duplicate character %q", e.Char))
		}
		if t.valid[e.Byte] {
			panic(fmt.Sprintf("charset: duplicate byte 0x%02X", e.Byte))
		}
		t.bytes[e.Char] = e.Byte
		t.runes[e.Byte] = e.Char
		t.valid[e.Byte] = true
	}
	return t
}

// Lookup returns the encoded byte for ch as a one byte string.
// It returns false if ch is not exactly one mapped character. Keys match
// exactly; callers that want canonical equivalence normalize first.
func (t *Table) Lookup(ch string) (string, bool) {
	r, ok := single(ch)
	if !ok {
		return "", false
	}
	b, ok := t.bytes[r]
	if !ok {
		return "", false
	}
	return string([]byte{b}), true
}

// LookupRune returns the encoded byte for r.
func (t *Table) LookupRune(r rune) (byte, bool) {
	b, ok := t.bytes[r]
	return b, ok
}

// Char returns the character encoded as b.
func (t *Table) Char(b byte) (rune, bool) {
	return t.runes[b], t.valid[b]
}

// Entries returns a copy of all entries ordered by byte value.
func (t *Table) Entries() []Entry {
	list := make([]Entry, 0, len(t.bytes))
	for i := 0; i < 256; i++ {
		if t.valid[i] {
			list = append(list, Entry{t.runes[i], byte(i)})
		}
	}
	return list
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.bytes)
}

func single(ch string) (rune, bool) {
	if ch == "" {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(ch)
	if r == utf8.RuneError && size <= 1 {
		return 0, false
	}
	return r, size == len(ch)
}
