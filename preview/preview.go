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

// Package preview draws encoded LCD text on a terminal the way the
// display font ROM would show it.
package preview

import (
	"github.com/andreas-jonsson/lcdencode/charset"
	"github.com/gdamore/tcell"
)

// Control bytes show as the classic codepage 437 graphics.
var controlGlyphs = [32]rune{
	0x0020, // NULL
	0x263A, // ☺
	0x263B, // ☻
	0x2665, // ♥
	0x2666, // ♦
	0x2663, // ♣
	0x2660, // ♠
	0x2022, // •
	0x25D8, // ◘
	0x25CB, // ○
	0x25D9, // ◙
	0x2642, // ♂
	0x2640, // ♀
	0x266A, // ♪
	0x266B, // ♫
	0x263C, // ☼
	0x25BA, // ►
	0x25C4, // ◄
	0x2195, // ↕
	0x203C, // ‼
	0x00B6, // ¶
	0x00A7, // §
	0x25AC, // ▬
	0x21A8, // ↨
	0x2191, // ↑
	0x2193, // ↓
	0x2192, // →
	0x2190, // ←
	0x221F, // ∟
	0x2194, // ↔
	0x25B2, // ▲
	0x25BC, // ▼
}

const house = 0x2302 // ⌂

// Page lays out encoded bytes in rows of a fixed width.
type Page struct {
	Style tcell.Style

	table *charset.Table
	cols  int
}

// New returns a page with cols columns that decodes through t.
func New(t *charset.Table, cols int) *Page {
	if t == nil {
		t = charset.Default()
	}
	if cols < 1 {
		cols = 1
	}
	return &Page{Style: tcell.StyleDefault, table: t, cols: cols}
}

// Glyph returns the rune the display font shows for b.
func (p *Page) Glyph(b byte) rune {
	switch {
	case b < 0x20:
		return controlGlyphs[b]
	case b == 0x7F:
		return house
	case b < 0x80:
		return rune(b)
	}
	if r, ok := p.table.Char(b); ok {
		return r
	}
	return ' '
}

// Render clears s and draws data on it. Newline starts a new row and
// drawing stops at the bottom of the screen.
func (p *Page) Render(s tcell.Screen, data []byte) {
	s.Clear()
	_, h := s.Size()

	var x, y int
	for _, b := range data {
		if b == '\n' {
			x, y = 0, y+1
			continue
		}
		if x >= p.cols {
			x, y = 0, y+1
		}
		if y >= h {
			break
		}
		s.SetContent(x, y, p.Glyph(b), nil, p.Style)
		x++
	}
	s.Show()
}

// Show renders data on the terminal and blocks until a key is pressed.
func (p *Page) Show(data []byte) error {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	return p.run(s, data)
}

func (p *Page) run(s tcell.Screen, data []byte) error {
	s.HideCursor()
	s.DisableMouse()
	p.Render(s, data)

	for {
		switch s.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			s.Sync()
			p.Render(s, data)
		case nil:
			return nil
		}
	}
}
