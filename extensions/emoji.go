///////////////////////////////////////////////////////////////////////////////////////////////////
//                                                                                               //
//                              Copyright (C) 2024  Wyatt Sheffield                              //
//                                                                                               //
//                 This program is free software: you can redistribute it and/or                 //
//                 modify it under the terms of the GNU General Public License as                //
//                 published by the Free Software Foundation, either version 3 of                //
//                      the License, or (at your option) any later version.                      //
//                                                                                               //
//                This program is distributed in the hope that it will be useful,                //
//                 but WITHOUT ANY WARRANTY; without even the implied warranty of                //
//                 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the                 //
//                          GNU General Public License for more details.                         //
//                                                                                               //
//                   You should have received a copy of the GNU General Public                   //
//                         License along with this program.  If not, see                         //
//                                <https://www.gnu.org/licenses/>.                               //
//                                                                                               //
//                                                                                               //
///////////////////////////////////////////////////////////////////////////////////////////////////


package extensions

import (
	"strings"

	"github.com/yuin/goldmark-emoji/definition"
)

// ReplaceEmoji expands :shortcode: sequences in s using emojis. Each ':'
// toggles shortcode mode. Unknown codes are written back with their colons and
// an unterminated code is written back with its opening colon only.
func ReplaceEmoji(s string, emojis definition.Emojis) string {
	if !strings.Contains(s, ":") {
		return s
	}
	var out, code strings.Builder
	out.Grow(len(s))
	inside := false
	for _, r := range s {
		if r != ':' {
			if inside {
				code.WriteRune(r)
			} else {
				out.WriteRune(r)
			}
			continue
		}
		if !inside {
			inside = true
			continue
		}
		if glyph, ok := lookupEmoji(emojis, code.String()); ok {
			out.WriteString(glyph)
		} else {
			out.WriteByte(':')
			out.WriteString(code.String())
			out.WriteByte(':')
		}
		code.Reset()
		inside = false
	}
	if inside {
		out.WriteByte(':')
		out.WriteString(code.String())
	}
	return out.String()
}

func lookupEmoji(emojis definition.Emojis, name string) (string, bool) {
	if emojis == nil || name == "" {
		return "", false
	}
	e, ok := emojis.Get(name)
	if !ok || !e.IsUnicode() {
		return "", false
	}
	return string(e.Unicode), true
}
