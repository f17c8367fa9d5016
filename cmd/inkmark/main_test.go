package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"inkmark.site/inkmark"
	"inkmark.site/inkmark/metadata"
)

func TestParseFlags(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("inkmark"))
	require.NoError(t, err)

	_, err = parser.Parse([]string{
		"render",
		"--url-root", "/docs",
		"--rewrite", "/a=/b",
		"--param", "k=v",
		"--param", "z=1",
		"--format", "json",
		"doc.md",
	})
	require.NoError(t, err)
	require.Equal(t, "/docs", cli.Render.URLRoot)
	require.Equal(t, map[string]string{"/a": "/b"}, cli.Render.Rewrite)
	require.Equal(t, map[string]string{"k": "v", "z": "1"}, cli.Render.Param)
	require.Equal(t, "json", cli.Render.Format)
	require.Equal(t, "doc.md", cli.Render.File)
}

func TestFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkmark.yaml")
	require.NoError(t, os.WriteFile(path, []byte("url_root: /file\nurl_params:\n  a: \"1\"\n"), 0o644))

	opts, err := loadOptions(path)
	require.NoError(t, err)

	cmd := RenderCmd{URLRoot: "/flag", Param: map[string]string{"b": "2"}}
	cmd.apply(&opts)
	require.Equal(t, "/flag", opts.URLRoot)
	require.Equal(t, map[string]string{"a": "1", "b": "2"}, opts.URLParams)
}

func TestMissingOptionsFile(t *testing.T) {
	opts, err := loadOptions(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, metadata.DefaultOptions(), opts)
}

func TestWriteFormats(t *testing.T) {
	doc := inkmark.Parse("# Hi\n\n[a](/b)", nil)

	var html bytes.Buffer
	require.NoError(t, write(&html, doc, "html"))
	require.Equal(t, doc.HTML(), html.String())

	var outline bytes.Buffer
	require.NoError(t, write(&outline, doc, "outline"))
	require.Contains(t, outline.String(), `<a href="#hi-1">Hi</a>`)

	var data bytes.Buffer
	require.NoError(t, write(&data, doc, "json"))
	var decoded struct {
		Headings []metadata.Heading `json:"headings"`
		Links    []metadata.Link    `json:"links"`
	}
	require.NoError(t, json.Unmarshal(data.Bytes(), &decoded))
	require.Equal(t, doc.Headings(), decoded.Headings)
	require.Equal(t, doc.Links(), decoded.Links)
}
