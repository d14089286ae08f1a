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

// entries lists the display font layout from 0x80 upwards.
// The last slot reuses space as 0xFF.
var entries = [...]Entry{
	{'Ç', 0x80}, // U+00C7
	{'ü', 0x81}, // U+00FC
	{'é', 0x82}, // U+00E9
	{'â', 0x83}, // U+00E2
	{'ä', 0x84}, // U+00E4
	{'à', 0x85}, // U+00E0
	{'å', 0x86}, // U+00E5
	{'ç', 0x87}, // U+00E7
	{'ê', 0x88}, // U+00EA
	{'ë', 0x89}, // U+00EB
	{'è', 0x8A}, // U+00E8
	{'ï', 0x8B}, // U+00EF
	{'î', 0x8C}, // U+00EE
	{'ì', 0x8D}, // U+00EC
	{'Ä', 0x8E}, // U+00C4
	{'Å', 0x8F}, // U+00C5
	{'É', 0x90}, // U+00C9
	{'æ', 0x91}, // U+00E6
	{'Æ', 0x92}, // U+00C6
	{'ô', 0x93}, // U+00F4
	{'ö', 0x94}, // U+00F6
	{'ò', 0x95}, // U+00F2
	{'û', 0x96}, // U+00FB
	{'ù', 0x97}, // U+00F9
	{'ÿ', 0x98}, // U+00FF
	{'Ö', 0x99}, // U+00D6
	{'Ü', 0x9A}, // U+00DC
	{'¢', 0x9B}, // U+00A2
	{'£', 0x9C}, // U+00A3
	{'¥', 0x9D}, // U+00A5
	{'₧', 0x9E}, // U+20A7
	{'ƒ', 0x9F}, // U+0192
	{'á', 0xA0}, // U+00E1
	{'í', 0xA1}, // U+00ED
	{'ó', 0xA2}, // U+00F3
	{'ú', 0xA3}, // U+00FA
	{'ñ', 0xA4}, // U+00F1
	{'Ñ', 0xA5}, // U+00D1
	{'ª', 0xA6}, // U+00AA
	{'º', 0xA7}, // U+00BA
	{'¿', 0xA8}, // U+00BF
	{'⌐', 0xA9}, // U+2310
	{'¬', 0xAA}, // U+00AC
	{'½', 0xAB}, // U+00BD
	{'¼', 0xAC}, // U+00BC
	{'¡', 0xAD}, // U+00A1
	{'«', 0xAE}, // U+00AB
	{'»', 0xAF}, // U+00BB
	{'░', 0xB0}, // U+2591
	{'▒', 0xB1}, // U+2592
	{'▓', 0xB2}, // U+2593
	{'│', 0xB3}, // U+2502
	{'┤', 0xB4}, // U+2524
	{'╡', 0xB5}, // U+2561
	{'╢', 0xB6}, // U+2562
	{'╖', 0xB7}, // U+2556
	{'╕', 0xB8}, // U+2555
	{'╣', 0xB9}, // U+2563
	{'║', 0xBA}, // U+2551
	{'╗', 0xBB}, // U+2557
	{'╝', 0xBC}, // U+255D
	{'╜', 0xBD}, // U+255C
	{'╛', 0xBE}, // U+255B
	{'┐', 0xBF}, // U+2510
	{'└', 0xC0}, // U+2514
	{'┴', 0xC1}, // U+2534
	{'┬', 0xC2}, // U+252C
	{'├', 0xC3}, // U+251C
	{'─', 0xC4}, // U+2500
	{'┼', 0xC5}, // U+253C
	{'╞', 0xC6}, // U+255E
	{'╟', 0xC7}, // U+255F
	{'╚', 0xC8}, // U+255A
	{'╔', 0xC9}, // U+2554
	{'╩', 0xCA}, // U+2569
	{'╦', 0xCB}, // U+2566
	{'╠', 0xCC}, // U+2560
	{'═', 0xCD}, // U+2550
	{'╬', 0xCE}, // U+256C
	{'╧', 0xCF}, // U+2567
	{'╨', 0xD0}, // U+2568
	{'╤', 0xD1}, // U+2564
	{'╥', 0xD2}, // U+2565
	{'╙', 0xD3}, // U+2559
	{'╘', 0xD4}, // U+2558
	{'╒', 0xD5}, // U+2552
	{'╓', 0xD6}, // U+2553
	{'╫', 0xD7}, // U+256B
	{'╪', 0xD8}, // U+256A
	{'┘', 0xD9}, // U+2518
	{'┌', 0xDA}, // U+250C
	{'█', 0xDB}, // U+2588
	{'▄', 0xDC}, // U+2584
	{'▌', 0xDD}, // U+258C
	{'▐', 0xDE}, // U+2590
	{'▀', 0xDF}, // U+2580
	{'α', 0xE0}, // U+03B1
	{'ß', 0xE1}, // U+00DF
	{'Γ', 0xE2}, // U+0393
	{'π', 0xE3}, // U+03C0
	{'Σ', 0xE4}, // U+03A3
	{'σ', 0xE5}, // U+03C3
	{'µ', 0xE6}, // U+00B5
	{'τ', 0xE7}, // U+03C4
	{'Φ', 0xE8}, // U+03A6
	{'Θ', 0xE9}, // U+0398
	{'Ω', 0xEA}, // U+03A9
	{'δ', 0xEB}, // U+03B4
	{'∞', 0xEC}, // U+221E
	{'φ', 0xED}, // U+03C6
	{'ε', 0xEE}, // U+03B5
	{'∩', 0xEF}, // U+2229
	{'≡', 0xF0}, // U+2261
	{'±', 0xF1}, // U+00B1
	{'≥', 0xF2}, // U+2265
	{'≤', 0xF3}, // U+2264
	{'⌠', 0xF4}, // U+2320
	{'⌡', 0xF5}, // U+2321
	{'÷', 0xF6}, // U+00F7
	{'≈', 0xF7}, // U+2248
	{'°', 0xF8}, // U+00B0
	{'∙', 0xF9}, // U+2219
	{'·', 0xFA}, // U+00B7
	{'√', 0xFB}, // U+221A
	{'ⁿ', 0xFC}, // U+207F
	{'²', 0xFD}, // U+00B2
	{'■', 0xFE}, // U+25A0
	{' ', 0xFF},
}
