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
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"

	"inkmark.site/inkmark/metadata"
)

var (
	collectorKey   = parser.NewContextKey()
	inlineLinksKey = parser.NewContextKey()
)

// Collector holds what one parse found. It lives in the parser.Context of
// that parse and nowhere else.
type Collector struct {
	Headings []metadata.Heading
	Links    []metadata.Link
}

// Collected returns the Collector stored in pc, creating it on first use.
func Collected(pc parser.Context) *Collector {
	if v := pc.Get(collectorKey); v != nil {
		return v.(*Collector)
	}
	c := &Collector{
		Headings: make([]metadata.Heading, 0),
		Links:    make([]metadata.Link, 0),
	}
	pc.Set(collectorKey, c)
	return c
}

func markInline(pc parser.Context, link *ast.Link) {
	marks, _ := pc.Get(inlineLinksKey).(map[*ast.Link]struct{})
	if marks == nil {
		marks = make(map[*ast.Link]struct{})
		pc.Set(inlineLinksKey, marks)
	}
	marks[link] = struct{}{}
}

// IsInline reports whether link was written with a literal destination, as
// opposed to a reference or shortcut link.
func IsInline(pc parser.Context, link *ast.Link) bool {
	marks, _ := pc.Get(inlineLinksKey).(map[*ast.Link]struct{})
	_, ok := marks[link]
	return ok
}
