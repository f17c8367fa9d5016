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


package util

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"inkmark.site/inkmark/metadata"
)

// RFC 3986 scheme followed by its colon.
var schemeRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)

// ErrUnparsableURL is returned by ClassifyURL for URLs that carry a scheme but
// cannot be parsed.
var ErrUnparsableURL = errors.New("unparsable url")

// ClassifyURL decides whether raw points at the local domain or at a remote
// host. A URL without a scheme, or with a scheme but no host, is local.
func ClassifyURL(raw string) (metadata.URL, error) {
	if !schemeRegex.MatchString(raw) {
		return metadata.Local(raw), nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return metadata.URL{}, fmt.Errorf("%w: %w", ErrUnparsableURL, err)
	}
	if u.Host == "" {
		return metadata.Local(raw), nil
	}
	return metadata.Remote(raw), nil
}

// IsRootRelative reports whether u starts with a single path separator.
// Protocol-relative URLs ("//host/path") name a host and are not rebased.
func IsRootRelative(u string) bool {
	return strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//")
}

// RebaseRoot joins root with a root-relative u minus its leading separator.
func RebaseRoot(u, root string) string {
	rest := strings.TrimPrefix(u, "/")
	if root == "" {
		root = metadata.DefaultURLRoot
	}
	if strings.HasSuffix(root, "/") {
		return root + rest
	}
	return root + "/" + rest
}

// ResolveURL applies the rewrite rules, then root-rebasing. Anything else is
// returned unchanged.
func ResolveURL(u string, opts *metadata.Options) string {
	if rewritten, ok := opts.LinkRewriteRules[u]; ok {
		return rewritten
	}
	if IsRootRelative(u) {
		return RebaseRoot(u, opts.URLRoot)
	}
	return u
}

// AppendQuery adds params to u as a query string, keys sorted. An existing
// query is extended and a fragment stays last. Fragment-only and empty URLs
// are returned unchanged.
func AppendQuery(u string, params map[string]string) string {
	if len(params) == 0 {
		return u
	}
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	base, fragment, hasFragment := strings.Cut(u, "#")
	if base == "" {
		// an in-page jump stays one
		return u
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "&") {
			sep = ""
		}
	}
	out := base + sep + values.Encode()
	if hasFragment {
		out += "#" + fragment
	}
	return out
}
