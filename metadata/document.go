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


package metadata

import (
	"encoding/json"
	"fmt"
)

// Heading is one entry of a document outline.
type Heading struct {
	Title  string `json:"title" yaml:"title"`
	Anchor string `json:"anchor" yaml:"anchor"`
	Level  int    `json:"level" yaml:"level"`
}

// Link is an inline link found in a document.
type Link struct {
	Title string `json:"title" yaml:"title"`
	URL   URL    `json:"url" yaml:"url"`
}

type URLKind int

const (
	KindLocal URLKind = iota
	KindRemote
)

func (k URLKind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindRemote:
		return "remote"
	}
	return fmt.Sprintf("URLKind(%d)", int(k))
}

// URL is either a path on the current site (Local) or an absolute URL with a
// host (Remote).
type URL struct {
	Kind  URLKind
	Value string
}

func Local(path string) URL {
	return URL{Kind: KindLocal, Value: path}
}

func Remote(u string) URL {
	return URL{Kind: KindRemote, Value: u}
}

func (u URL) IsLocal() bool  { return u.Kind == KindLocal }
func (u URL) IsRemote() bool { return u.Kind == KindRemote }

func (u URL) String() string {
	return u.Value
}

type urlJSON struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

func (u URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(urlJSON{Type: u.Kind.String(), URL: u.Value})
}

func (u *URL) UnmarshalJSON(data []byte) error {
	var raw urlJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case "local":
		*u = Local(raw.URL)
	case "remote":
		*u = Remote(raw.URL)
	default:
		return fmt.Errorf("unknown url type %q", raw.Type)
	}
	return nil
}
