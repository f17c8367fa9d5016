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


package inkmark

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// NewPolicy returns the sanitization policy applied to every rendered
// document: bluemonday's user generated content policy, with heading ids, code
// classes and mermaid containers allowed, and no rel attributes on links.
func NewPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.AllowAttrs("id").OnElements(headingTags...)
	p.AllowAttrs("class").OnElements("code")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^mermaid$`)).OnElements("div")
	return p
}

// Sanitize runs html through the document policy. It is idempotent.
func Sanitize(html string) string {
	return defaultPolicy.Sanitize(html)
}

var defaultPolicy = NewPolicy()
