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
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrUnmapped is matched by errors.Is for every *UnmappedError.
var ErrUnmapped = errors.New("unmapped character")

// UnmappedError is returned by an encoder using MissError. Offset is the
// byte offset of Char in the normalized input.
type UnmappedError struct {
	Char   rune
	Offset int
}

func (e *UnmappedError) Error() string {
	return fmt.Sprintf("charset: unmapped character %q (U+%04X) at offset %d", e.Char, e.Char, e.Offset)
}

func (e *UnmappedError) Is(target error) bool {
	return target == ErrUnmapped
}

// MissPolicy selects how an encoder treats characters that are neither
// in the table nor 7-bit ASCII. Invalid UTF-8 is never copied through;
// MissKeep substitutes it.
type MissPolicy int

const (
	MissKeep MissPolicy = iota
	MissSkip
	MissSubstitute
	MissError
)

var missPolicyNames = [...]string{
	MissKeep:       "keep",
	MissSkip:       "skip",
	MissSubstitute: "sub",
	MissError:      "error",
}

func (p MissPolicy) String() string {
	if p < 0 || int(p) >= len(missPolicyNames) {
		return fmt.Sprintf("MissPolicy(%d)", int(p))
	}
	return missPolicyNames[p]
}

// ParseMissPolicy converts the name printed by String back to a policy.
func ParseMissPolicy(s string) (MissPolicy, error) {
	for i, name := range missPolicyNames {
		if name == s {
			return MissPolicy(i), nil
		}
	}
	return MissKeep, fmt.Errorf("charset: unknown miss policy %q", s)
}

// Encoding converts between UTF-8 and the table's single byte layout.
type Encoding struct {
	table  *Table
	policy MissPolicy
}

var _ encoding.Encoding = (*Encoding)(nil)

// NewEncoding returns an encoding backed by t. A nil table selects Default.
func NewEncoding(t *Table, p MissPolicy) *Encoding {
	if t == nil {
		t = Default()
	}
	return &Encoding{table: t, policy: p}
}

func (e *Encoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decoder{table: e.table}}
}

func (e *Encoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: transform.Chain(norm.NFC, &encoder{table: e.table, policy: e.policy})}
}

// String encodes s.
func (e *Encoding) String(s string) (string, error) {
	res, _, err := transform.String(e.NewEncoder(), s)
	if err != nil {
		return "", err
	}
	return res, nil
}

// Bytes encodes b.
func (e *Encoding) Bytes(b []byte) ([]byte, error) {
	res, _, err := transform.Bytes(e.NewEncoder(), b)
	if err != nil {
		return nil, err
	}
	return res, nil
}

type encoder struct {
	table  *Table
	policy MissPolicy
	pos    int
}

func (e *encoder) Reset() {
	e.pos = 0
}

func (e *encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	defer func() { e.pos += nSrc }()

	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}

		if b, ok := e.table.LookupRune(r); ok {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = b
			nDst++
		} else if r < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = byte(r)
			nDst++
		} else {
			invalid := r == utf8.RuneError && size == 1
			switch {
			case e.policy == MissSkip:
			case e.policy == MissError:
				return nDst, nSrc, &UnmappedError{Char: r, Offset: e.pos + nSrc}
			case e.policy == MissSubstitute, invalid:
				if nDst >= len(dst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				dst[nDst] = encoding.ASCIISub
				nDst++
			default:
				if nDst+size > len(dst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
			}
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}

type decoder struct {
	transform.NopResetter
	table *Table
}

func (d *decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for ; nSrc < len(src); nSrc++ {
		c := src[nSrc]
		if c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			continue
		}

		r, ok := d.table.Char(c)
		if !ok {
			r = utf8.RuneError
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
	}
	return nDst, nSrc, nil
}
