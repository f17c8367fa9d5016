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
	"log/slog"

	"github.com/yuin/goldmark/ast"
	"go.abhg.dev/goldmark/toc"

	"inkmark.site/inkmark/html"
	"inkmark.site/inkmark/metadata"
)

// OutlineItem is a heading together with the headings nested below it.
type OutlineItem struct {
	Heading  metadata.Heading `json:"heading"`
	Children []OutlineItem    `json:"children,omitempty"`
}

// buildOutline nests headings by level. Heading ids must already be set on
// the AST.
func buildOutline(doc ast.Node, source []byte, headings []metadata.Heading, logger *slog.Logger) []OutlineItem {
	if len(headings) == 0 {
		return nil
	}
	tree, err := toc.Inspect(doc, source, toc.MinDepth(1), toc.MaxDepth(6), toc.Compact(true))
	if err != nil {
		logger.Debug("Error generating table of contents", slog.String("error", err.Error()))
		return nil
	}
	byAnchor := make(map[string]metadata.Heading, len(headings))
	for _, h := range headings {
		byAnchor[h.Anchor] = h
	}
	return outlineItems(tree.Items, byAnchor)
}

func outlineItems(items toc.Items, byAnchor map[string]metadata.Heading) []OutlineItem {
	out := make([]OutlineItem, 0, len(items))
	for _, item := range items {
		children := outlineItems(item.Items, byAnchor)
		h, ok := byAnchor[string(item.ID)]
		if !ok {
			// placeholder for a skipped level
			out = append(out, children...)
			continue
		}
		out = append(out, OutlineItem{Heading: h, Children: children})
	}
	return out
}

// Outline returns the headings nested by level.
func (d Document) Outline() []OutlineItem {
	return cloneOutline(d.outline)
}

func cloneOutline(items []OutlineItem) []OutlineItem {
	if items == nil {
		return nil
	}
	out := make([]OutlineItem, len(items))
	for i, item := range items {
		out[i] = OutlineItem{Heading: item.Heading, Children: cloneOutline(item.Children)}
	}
	return out
}

func outlineRecurse(items []OutlineItem, parent *html.HTMLElement) {
	for _, item := range items {
		child := parent.AppendNew("li")
		child.AppendNew("a", html.Href("#"+item.Heading.Anchor)).AppendText(item.Heading.Title)
		if len(item.Children) > 0 {
			outlineRecurse(item.Children, child.AppendNew("ul"))
		}
	}
}

// OutlineHTML renders the outline as a navigation block linking to each
// heading anchor. It returns "" for a document without headings.
func (d Document) OutlineHTML() string {
	if len(d.outline) == 0 {
		return ""
	}
	elem := html.NewHTMLElement("nav", html.Class("nav-toc"))
	ul := elem.AppendNew("div", html.Class("toc")).AppendNew("ul")
	outlineRecurse(d.outline, ul)
	return elem.String()
}
