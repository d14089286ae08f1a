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

package charset

import (
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestTable(t *testing.T) {
	tab := New()

	t.Run("Size", func(t *testing.T) {
		assert.Equal(t, 128, tab.Len())
		assert.Len(t, tab.Entries(), 128)
	})

	t.Run("CodePage437", func(t *testing.T) {
		for i := 0x80; i < 0xFF; i++ {
			r := charmap.CodePage437.DecodeByte(byte(i))
			s, ok := tab.Lookup(string(r))
			if assert.True(t, ok, "U+%04X", r) {
				assert.Equal(t, string([]byte{byte(i)}), s, "U+%04X", r)
			}
		}
	})

	t.Run("Known", func(t *testing.T) {
		known := []struct {
			ch string
			b  byte
		}{
			{"Ç", 0x80},
			{"ü", 0x81},
			{"₧", 0x9E},
			{"░", 0xB0},
			{"╬", 0xCE},
			{"ß", 0xE1},
			{"µ", 0xE6},
			{"±", 0xF1},
			{"∙", 0xF9},
			{"·", 0xFA},
			{"√", 0xFB},
			{"■", 0xFE},
			{" ", 0xFF},
		}
		for _, k := range known {
			s, ok := tab.Lookup(k.ch)
			require.True(t, ok, k.ch)
			require.Len(t, s, 1)
			assert.Equal(t, k.b, s[0], k.ch)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		for _, ch := range []string{"A", "0", "", "\u00a0", "€", "Çü", "\xff", "\xc3"} {
			s, ok := tab.Lookup(ch)
			assert.False(t, ok, "%q", ch)
			assert.Empty(t, s, "%q", ch)
		}
	})

	t.Run("Exact", func(t *testing.T) {
		for _, ch := range []string{"e\u0301", "\u2126", "\u212b", "\u0387"} {
			s, ok := tab.Lookup(ch)
			assert.False(t, ok, "%+q", ch)
			assert.Empty(t, s, "%+q", ch)
		}
	})

	t.Run("Duplicates", func(t *testing.T) {
		seen := make(map[byte]rune)
		for _, e := range tab.Entries() {
			r, dup := seen[e.Byte]
			assert.False(t, dup, "0x%02X used by %q and %q", e.Byte, r, e.Char)
			seen[e.Byte] = e.Char
		}
	})

	t.Run("Range", func(t *testing.T) {
		for i, e := range tab.Entries() {
			assert.Equal(t, 0x80+i, int(e.Byte))
			assert.True(t, utf8.ValidRune(e.Char))
		}
	})

	t.Run("Reverse", func(t *testing.T) {
		for _, e := range tab.Entries() {
			r, ok := tab.Char(e.Byte)
			assert.True(t, ok)
			assert.Equal(t, e.Char, r)

			b, ok := tab.LookupRune(e.Char)
			assert.True(t, ok)
			assert.Equal(t, e.Byte, b)
		}
		_, ok := tab.Char('A')
		assert.False(t, ok)
	})

	t.Run("Idempotent", func(t *testing.T) {
		a, aok := tab.Lookup("√")
		b, bok := tab.Lookup("√")
		assert.Equal(t, aok, bok)
		assert.Equal(t, a, b)
	})

	t.Run("Deterministic", func(t *testing.T) {
		other := New()
		assert.NotSame(t, tab, other)
		assert.Equal(t, tab.Entries(), other.Entries())
		for r := rune(0); r < 0x3000; r++ {
			a, aok := tab.LookupRune(r)
			b, bok := other.LookupRune(r)
			if aok != bok || a != b {
				t.Errorf("tables differ at U+%04X", r)
			}
		}
	})

	t.Run("EntriesCopy", func(t *testing.T) {
		list := tab.Entries()
		list[0].Byte = 0
		s, _ := tab.Lookup("Ç")
		assert.Equal(t, "\x80", s)
	})
}

func TestDefault(t *testing.T) {
	var wg sync.WaitGroup
	tables := make([]*Table, 8)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i] = Default()
			if s, ok := tables[i].Lookup("■"); !ok || s != "\xfe" {
				t.Errorf("unexpected lookup %q %v", s, ok)
			}
		}(i)
	}
	wg.Wait()

	for _, tab := range tables {
		assert.Same(t, tables[0], tab)
	}
}
