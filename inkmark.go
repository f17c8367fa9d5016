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


// Package inkmark converts Markdown into sanitized HTML and, in the same
// pass, collects the document's headings (with unique anchors) and its inline
// links (with their text and a local/remote classified URL).
package inkmark

import (
	"bytes"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark-emoji/definition"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"inkmark.site/inkmark/extensions"
	"inkmark.site/inkmark/metadata"
	"inkmark.site/inkmark/util"
)

type config struct {
	logger      *slog.Logger
	emojis      definition.Emojis
	frontMatter bool
}

// Option configures a Converter.
type Option func(*config)

// WithLogger sets the logger used for debug output about degraded input.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEmojis replaces the GitHub emoji set used for :shortcode: expansion.
// Passing nil turns expansion off.
func WithEmojis(emojis definition.Emojis) Option {
	return func(c *config) {
		c.emojis = emojis
	}
}

// WithFrontMatter strips a leading YAML front matter block and exposes it
// through Document.Meta.
func WithFrontMatter() Option {
	return func(c *config) {
		c.frontMatter = true
	}
}

// Converter turns Markdown into a Document. It only holds read-only state and
// is safe for concurrent use.
type Converter struct {
	opts   metadata.Options
	cfg    config
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New builds a Converter for opts. opts is copied.
func New(opts metadata.Options, options ...Option) *Converter {
	cfg := config{
		logger: slog.Default(),
		emojis: definition.Github(),
	}
	for _, opt := range options {
		opt(&cfg)
	}
	opts = opts.Clone()
	exts := []goldmark.Extender{
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
		extensions.Mermaid(),
		extensions.LinkRewrite(opts, cfg.logger),
		extensions.Outline(cfg.emojis, cfg.logger),
	}
	if cfg.frontMatter {
		exts = append(exts, meta.Meta)
	}
	md := goldmark.New(
		goldmark.WithParser(parser.NewParser(
			parser.WithBlockParsers(parser.DefaultBlockParsers()...),
			parser.WithInlineParsers(extensions.InlineParsers()...),
			parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
		)),
		goldmark.WithExtensions(exts...),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// raw HTML is kept here and filtered by the sanitizer
			html.WithUnsafe(),
		),
	)
	return &Converter{
		opts:   opts,
		cfg:    cfg,
		md:     md,
		policy: NewPolicy(),
	}
}

// Options returns a copy of the options the converter was built with.
func (c *Converter) Options() metadata.Options {
	return c.opts.Clone()
}

// Convert renders source. It never fails: anything it cannot make sense of
// is passed through, dropped from the link list, or removed by the sanitizer.
func (c *Converter) Convert(source []byte) Document {
	defer util.Timer(c.cfg.logger, "convert")()
	pc := parser.NewContext()
	doc := c.md.Parser().Parse(text.NewReader(source), parser.WithContext(pc))

	var buf bytes.Buffer
	if err := c.md.Renderer().Render(&buf, source, doc); err != nil {
		c.cfg.logger.Error("Rendering markdown failed", slog.String("error", err.Error()))
	}

	collected := extensions.Collected(pc)
	out := Document{
		html:     c.policy.Sanitize(buf.String()),
		headings: collected.Headings,
		links:    collected.Links,
		outline:  buildOutline(doc, source, collected.Headings, c.cfg.logger),
	}
	if c.cfg.frontMatter {
		m, err := frontMatter(pc)
		if err != nil {
			c.cfg.logger.Debug("Ignoring front matter", slog.String("error", err.Error()))
		}
		out.meta = m
	}
	return out
}

// Parse converts input with opts, or with DefaultOptions when opts is nil.
func Parse(input string, opts *metadata.Options) Document {
	o := metadata.DefaultOptions()
	if opts != nil {
		o = *opts
	}
	return New(o).Convert([]byte(input))
}
