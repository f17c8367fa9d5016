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
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark-emoji/definition"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	gmutil "github.com/yuin/goldmark/util"

	"inkmark.site/inkmark/metadata"
	"inkmark.site/inkmark/util"
)

type textReplacement struct {
	node  *ast.Text
	value []byte
}

// outlineState is the per-parse state of the outline transformer.
type outlineState struct {
	source    []byte
	pc        parser.Context
	emojis    definition.Emojis
	logger    *slog.Logger
	collector *Collector

	// index of the next heading, shared by all levels
	index   int
	heading *ast.Heading
	link    *metadata.Link

	replacements []textReplacement
}

func (s *outlineState) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := n.(type) {
	case *ast.Heading:
		if entering {
			s.heading = n
		} else if s.heading == n {
			// no text run inside, e.g. a heading made of a code span
			s.claimHeading(plainText(n, s.source))
		}
	case *ast.Link:
		if entering {
			s.openLink(n)
		} else if s.link != nil {
			s.collector.Links = append(s.collector.Links, *s.link)
			s.link = nil
		}
	case *ast.CodeSpan:
		return ast.WalkSkipChildren, nil
	case *ast.Text:
		if entering {
			s.visitText(n)
		}
	}
	return ast.WalkContinue, nil
}

func (s *outlineState) openLink(n *ast.Link) {
	if !IsInline(s.pc, n) {
		return
	}
	u, err := util.ClassifyURL(string(n.Destination))
	if err != nil {
		s.logger.Debug("Dropping link from link list",
			slog.String("url", string(n.Destination)),
			slog.String("error", err.Error()))
		return
	}
	s.link = &metadata.Link{URL: u}
}

func (s *outlineState) visitText(n *ast.Text) {
	raw := n.Segment.Value(s.source)
	value := ReplaceEmoji(string(raw), s.emojis)
	if value != string(raw) {
		s.replacements = append(s.replacements, textReplacement{n, []byte(value)})
	}
	if !n.IsRaw() {
		value = unescape(value)
	}
	if s.heading != nil {
		s.claimHeading(value)
	}
	if s.link != nil {
		s.link.Title += value
	}
}

func (s *outlineState) claimHeading(title string) {
	anchor := util.Slugify(title) + "-" + strconv.Itoa(s.index)
	s.heading.SetAttributeString("id", []byte(anchor))
	s.collector.Headings = append(s.collector.Headings, metadata.Heading{
		Title:  title,
		Anchor: anchor,
		Level:  s.heading.Level,
	})
	s.heading = nil
	s.index++
}

// apply swaps substituted text runs for String nodes. The line break a Text
// carried moves to an empty Text placed right after it.
func (s *outlineState) apply() {
	for _, r := range s.replacements {
		parent := r.node.Parent()
		if parent == nil {
			continue
		}
		str := ast.NewString(r.value)
		str.SetRaw(r.node.IsRaw())
		parent.ReplaceChild(parent, r.node, str)
		if r.node.SoftLineBreak() || r.node.HardLineBreak() {
			stop := r.node.Segment.Stop
			br := ast.NewTextSegment(text.NewSegment(stop, stop))
			br.SetSoftLineBreak(r.node.SoftLineBreak())
			br.SetHardLineBreak(r.node.HardLineBreak())
			parent.InsertAfter(parent, str, br)
		}
	}
}

// mergeTextRuns joins sibling text runs that goldmark split at a delimiter it
// later left unmatched, such as the '_' in ":heart_eyes:". Runs split by
// emphasis, code spans, links or line breaks stay apart.
func mergeTextRuns(doc ast.Node, source []byte) {
	parents := make([]ast.Node, 0)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := n.(*ast.CodeSpan); ok {
			return ast.WalkSkipChildren, nil
		}
		if n.ChildCount() > 1 {
			parents = append(parents, n)
		}
		return ast.WalkContinue, nil
	})
	for _, parent := range parents {
		for c := parent.FirstChild(); c != nil; {
			next := c.NextSibling()
			prev, ok := c.(*ast.Text)
			if !ok || next == nil || prev.Segment.IsEmpty() || prev.SoftLineBreak() || prev.HardLineBreak() {
				c = next
				continue
			}
			if prev.Merge(next, source) {
				parent.RemoveChild(parent, next)
				continue
			}
			c = next
		}
	}
}

func unescape(s string) string {
	b := gmutil.UnescapePunctuations([]byte(s))
	b = gmutil.ResolveNumericReferences(b)
	b = gmutil.ResolveEntityNames(b)
	return string(b)
}

func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
		case *ast.String:
			b.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return unescape(b.String())
}

type outlineTransformer struct {
	emojis definition.Emojis
	logger *slog.Logger
}

func (t outlineTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	s := &outlineState{
		source:    reader.Source(),
		pc:        pc,
		emojis:    t.emojis,
		logger:    t.logger,
		collector: Collected(pc),
		index:     1,
	}
	mergeTextRuns(node, s.source)
	_ = ast.Walk(node, s.visit)
	s.apply()
}

type outline struct {
	emojis definition.Emojis
	logger *slog.Logger
}

func (e *outline) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(
			gmutil.Prioritized(outlineTransformer{e.emojis, e.logger}, priorityOutlineTransformer),
		),
	)
}

// Outline gives every heading an id and records it, records inline links with
// their text, and expands emoji shortcodes in text. Results are read back with
// Collected. A nil emojis disables shortcode expansion.
func Outline(emojis definition.Emojis, logger *slog.Logger) goldmark.Extender {
	if logger == nil {
		logger = slog.Default()
	}
	return &outline{emojis, logger}
}
