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


package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"inkmark.site/inkmark"
	"inkmark.site/inkmark/metadata"
)

// CLI definition & global flags.
type CLI struct {
	Config  string `short:"c" help:"Options file (YAML)" default:"inkmark.yaml" type:"path"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Render RenderCmd `cmd:"" default:"withargs" help:"Render a markdown file to sanitized HTML"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	URLRoot     string            `name:"url-root" help:"Prefix for root-relative links and images"`
	Rewrite     map[string]string `help:"Replace a link target on exact match (FROM=TO)" placeholder:"FROM=TO"`
	Param       map[string]string `help:"Query parameter added to local links (K=V)" placeholder:"K=V"`
	FrontMatter bool              `name:"front-matter" help:"Strip a leading YAML block and report it as metadata"`
	Format      string            `short:"f" enum:"html,json,outline" default:"html" help:"Output format (html, json, outline)"`

	File string `arg:"" optional:"" default:"-" help:"Markdown file, or - for stdin"`
}

func (r *RenderCmd) Run(root *CLI) error {
	opts, err := loadOptions(root.Config)
	if err != nil {
		return err
	}
	r.apply(&opts)

	source, err := readSource(r.File)
	if err != nil {
		return err
	}

	options := []inkmark.Option{inkmark.WithLogger(slog.Default())}
	if r.FrontMatter {
		options = append(options, inkmark.WithFrontMatter())
	}
	doc := inkmark.New(opts, options...).Convert(source)

	slog.Debug("Rendered document",
		"file", r.File,
		"headings", len(doc.Headings()),
		"links", len(doc.Links()))

	return write(os.Stdout, doc, r.Format)
}

// apply lets flags override values from the options file.
func (r *RenderCmd) apply(opts *metadata.Options) {
	if r.URLRoot != "" {
		opts.URLRoot = r.URLRoot
	}
	for from, to := range r.Rewrite {
		opts.LinkRewriteRules[from] = to
	}
	for k, v := range r.Param {
		opts.URLParams[k] = v
	}
}

// loadOptions reads path if it exists. A missing file means defaults.
func loadOptions(path string) (metadata.Options, error) {
	if path == "" {
		return metadata.DefaultOptions(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No options file, using defaults", "path", path)
		return metadata.DefaultOptions(), nil
	}
	return metadata.LoadOptions(path)
}

func readSource(file string) ([]byte, error) {
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	return data, nil
}

func write(w io.Writer, doc inkmark.Document, format string) error {
	var buf bytes.Buffer
	switch format {
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding document: %w", err)
		}
	case "outline":
		buf.WriteString(doc.OutlineHTML())
	default:
		buf.WriteString(doc.HTML())
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("inkmark"),
		kong.Description("Convert markdown to sanitized HTML with an outline and link inventory."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&cli); err != nil {
		slog.Error("Render failed", "error", err)
		os.Exit(1)
	}
}
