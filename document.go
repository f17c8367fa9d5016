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
	"encoding/json"
	"maps"
	"slices"

	"inkmark.site/inkmark/metadata"
)

// Document is the result of one conversion. It is not modified after
// conversion returns; accessors hand out copies.
type Document struct {
	html     string
	headings []metadata.Heading
	links    []metadata.Link
	outline  []OutlineItem
	meta     map[string]any
}

// HTML returns the sanitized HTML.
func (d Document) HTML() string {
	return d.html
}

// Headings returns the document's headings in source order.
func (d Document) Headings() []metadata.Heading {
	return slices.Clone(d.headings)
}

// Links returns the document's inline links in source order.
func (d Document) Links() []metadata.Link {
	return slices.Clone(d.links)
}

// Meta returns the front matter, or nil when front matter is disabled or
// absent.
func (d Document) Meta() map[string]any {
	return maps.Clone(d.meta)
}

type documentJSON struct {
	HTML     string             `json:"html"`
	Headings []metadata.Heading `json:"headings"`
	Links    []metadata.Link    `json:"links"`
	Meta     map[string]any     `json:"meta,omitempty"`
}

func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(documentJSON{
		HTML:     d.html,
		Headings: d.headings,
		Links:    d.links,
		Meta:     d.meta,
	})
}
