package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Options
	}{
		{
			name:     "empty",
			input:    "",
			expected: DefaultOptions(),
		},
		{
			name: "all keys",
			input: `
url_root: /docs
link_rewrite_rules:
  /old: /new
url_params:
  base: "123"
`,
			expected: Options{
				URLRoot:          "/docs",
				LinkRewriteRules: map[string]string{"/old": "/new"},
				URLParams:        map[string]string{"base": "123"},
			},
		},
		{
			name:     "missing root keeps default",
			input:    "url_params:\n  a: b\n",
			expected: Options{
				URLRoot:          "/",
				LinkRewriteRules: map[string]string{},
				URLParams:        map[string]string{"a": "b"},
			},
		},
		{
			name:     "empty root falls back to default",
			input:    "url_root: \"\"\n",
			expected: DefaultOptions(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseOptions([]byte(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.expected, opts)
		})
	}
}

func TestParseOptionsInvalid(t *testing.T) {
	_, err := ParseOptions([]byte("url_params: [not, a, map]"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing options")
}

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkmark.yaml")
	require.NoError(t, os.WriteFile(path, []byte("url_root: /site\n"), 0o644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	require.Equal(t, "/site", opts.URLRoot)
	require.NotNil(t, opts.URLParams)

	_, err = LoadOptions(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestClone(t *testing.T) {
	opts := Options{
		URLRoot:          "/r",
		LinkRewriteRules: map[string]string{"a": "b"},
		URLParams:        map[string]string{"k": "v"},
	}
	clone := opts.Clone()
	opts.LinkRewriteRules["c"] = "d"
	opts.URLParams["k"] = "changed"

	require.Equal(t, map[string]string{"a": "b"}, clone.LinkRewriteRules)
	require.Equal(t, map[string]string{"k": "v"}, clone.URLParams)

	var zero Options
	require.Equal(t, DefaultOptions(), zero.Clone())
}
