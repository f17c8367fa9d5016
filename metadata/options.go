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
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultURLRoot = "/"

// Options configures a single conversion. A conversion only reads its Options.
type Options struct {
	// URLRoot is prepended to every root-relative link or image path.
	URLRoot string `yaml:"url_root,omitempty"`
	// LinkRewriteRules swaps a whole URL for another on exact match.
	LinkRewriteRules map[string]string `yaml:"link_rewrite_rules,omitempty"`
	// URLParams are appended as a query string to links on the local domain.
	URLParams map[string]string `yaml:"url_params,omitempty"`
}

// DefaultOptions has the root at "/" and no rules or params.
func DefaultOptions() Options {
	return Options{
		URLRoot:          DefaultURLRoot,
		LinkRewriteRules: map[string]string{},
		URLParams:        map[string]string{},
	}
}

// Clone returns a deep copy so the caller may keep mutating its own maps.
func (o Options) Clone() Options {
	out := Options{
		URLRoot:          o.URLRoot,
		LinkRewriteRules: maps.Clone(o.LinkRewriteRules),
		URLParams:        maps.Clone(o.URLParams),
	}
	if out.LinkRewriteRules == nil {
		out.LinkRewriteRules = map[string]string{}
	}
	if out.URLParams == nil {
		out.URLParams = map[string]string{}
	}
	if out.URLRoot == "" {
		out.URLRoot = DefaultURLRoot
	}
	return out
}

// ParseOptions reads Options from YAML. Absent keys keep their defaults.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parsing options: %w", err)
	}
	return opts.Clone(), nil
}

// LoadOptions reads Options from the YAML file at path.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading options %s: %w", path, err)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}
