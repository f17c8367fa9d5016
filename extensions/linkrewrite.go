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
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	gmutil "github.com/yuin/goldmark/util"

	"inkmark.site/inkmark/metadata"
	"inkmark.site/inkmark/util"
)

// inlineLinkParser wraps goldmark's link parser and remembers which links had
// a literal "(destination)". goldmark turns reference and shortcut links into
// the same *ast.Link, so this is the only place the difference is visible.
type inlineLinkParser struct {
	base parser.InlineParser
}

func NewInlineLinkParser() parser.InlineParser {
	return &inlineLinkParser{base: parser.NewLinkParser()}
}

func (p *inlineLinkParser) Trigger() []byte {
	return p.base.Trigger()
}

func (p *inlineLinkParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	startLine, startPos := block.Position()
	node := p.base.Parse(parent, block, pc)
	link, ok := node.(*ast.Link)
	if !ok || len(line) < 2 || line[0] != ']' || line[1] != '(' {
		return node
	}
	// A failed "(...)" falls back to a shortcut reference, leaving the reader
	// just past the ']'.
	endLine, endPos := block.Position()
	if endLine != startLine || endPos.Start > startPos.Start+1 {
		markInline(pc, link)
	}
	return node
}

func (p *inlineLinkParser) CloseBlock(parent ast.Node, block text.Reader, pc parser.Context) {
	if cb, ok := p.base.(parser.CloseBlocker); ok {
		cb.CloseBlock(parent, block, pc)
	}
}

// InlineParsers returns goldmark's default inline parsers with the link
// parser swapped for one that tracks inline links. Use it to build the parser
// given to goldmark.WithParser; adding the wrapper next to the default link
// parser would run both on the same brackets.
func InlineParsers() []gmutil.PrioritizedValue {
	out := make([]gmutil.PrioritizedValue, 0, len(parser.DefaultInlineParsers()))
	for _, v := range parser.DefaultInlineParsers() {
		if v.Value == parser.NewLinkParser() {
			continue
		}
		out = append(out, v)
	}
	return append(out, gmutil.Prioritized(NewInlineLinkParser(), priorityInlineLinkParser))
}

type linkRewriteTransformer struct {
	opts   *metadata.Options
	logger *slog.Logger
}

type autoLinkRewrite struct {
	node *ast.AutoLink
	dest string
}

func (r linkRewriteTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	autoLinks := make([]autoLinkRewrite, 0)
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Link:
			n.Destination = []byte(r.resolve(string(n.Destination), true))
		case *ast.Image:
			n.Destination = []byte(r.resolve(string(n.Destination), false))
		case *ast.AutoLink:
			url := autoLinkURL(n, source)
			if dest := r.resolve(url, true); dest != url {
				autoLinks = append(autoLinks, autoLinkRewrite{n, dest})
			}
		}
		return ast.WalkContinue, nil
	})
	for _, a := range autoLinks {
		replaceAutoLink(a.node, a.dest, source)
	}
}

// autoLinkURL is the href goldmark would render for n.
func autoLinkURL(n *ast.AutoLink, source []byte) string {
	url := string(n.URL(source))
	if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(url), "mailto:") {
		url = "mailto:" + url
	}
	return url
}

// replaceAutoLink swaps n for a plain link to dest that keeps n's label. The
// label is escaped up front and rendered raw, as goldmark does for autolinks.
func replaceAutoLink(n *ast.AutoLink, dest string, source []byte) {
	parent := n.Parent()
	if parent == nil {
		return
	}
	link := ast.NewLink()
	link.Destination = []byte(dest)
	label := ast.NewString(gmutil.EscapeHTML(n.Label(source)))
	label.SetRaw(true)
	link.AppendChild(link, label)
	parent.ReplaceChild(parent, n, link)
}

func (r linkRewriteTransformer) resolve(dest string, isLink bool) string {
	out := util.ResolveURL(dest, r.opts)
	if !isLink || len(r.opts.URLParams) == 0 {
		return out
	}
	u, err := util.ClassifyURL(out)
	if err != nil {
		r.logger.Debug("Not adding url params", slog.String("url", out), slog.String("error", err.Error()))
		return out
	}
	if u.IsLocal() {
		out = util.AppendQuery(out, r.opts.URLParams)
	}
	return out
}

type linkRewrite struct {
	opts   metadata.Options
	logger *slog.Logger
}

func (e *linkRewrite) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(
			gmutil.Prioritized(linkRewriteTransformer{&e.opts, e.logger}, priorityLinkRewriteTransformer),
		),
	)
}

// LinkRewrite rewrites link, image and autolink destinations: exact rewrite
// rules first, then root-rebasing, then url params on local links. An
// autolink whose target changes becomes a plain link with the same label.
func LinkRewrite(opts metadata.Options, logger *slog.Logger) goldmark.Extender {
	if logger == nil {
		logger = slog.Default()
	}
	return &linkRewrite{opts.Clone(), logger}
}
