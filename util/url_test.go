package util

import (
	"testing"

	"github.com/stretchr/testify/require"

	"inkmark.site/inkmark/metadata"
)

func TestClassifyURL(t *testing.T) {
	tests := []struct {
		input    string
		expected metadata.URL
	}{
		{"relative/link", metadata.Local("relative/link")},
		{"/root/path", metadata.Local("/root/path")},
		{"#fragment", metadata.Local("#fragment")},
		{"", metadata.Local("")},
		{"//cdn.example.com/x", metadata.Local("//cdn.example.com/x")},
		{"https://x.com/y", metadata.Remote("https://x.com/y")},
		{"http://www.example.com/", metadata.Remote("http://www.example.com/")},
		{"mailto:someone@example.com", metadata.Local("mailto:someone@example.com")},
		{"file:///etc/hosts", metadata.Local("file:///etc/hosts")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ClassifyURL(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestClassifyURLUnparsable(t *testing.T) {
	for _, input := range []string{"http://%zz/", "https://[::1/x"} {
		_, err := ClassifyURL(input)
		require.ErrorIs(t, err, ErrUnparsableURL, input)
	}
}

func TestResolveURL(t *testing.T) {
	opts := &metadata.Options{
		URLRoot: "/docs",
		LinkRewriteRules: map[string]string{
			"/foo":            "https://other.com/foo",
			"https://x.com/a": "/local",
		},
	}
	tests := []struct {
		input    string
		expected string
	}{
		{"/foo", "https://other.com/foo"},
		{"https://x.com/a", "/local"},
		{"/foo/bar", "/docs/foo/bar"},
		{"/", "/docs/"},
		{"relative/link", "relative/link"},
		{"https://x.com/y", "https://x.com/y"},
		{"//host/x", "//host/x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, ResolveURL(tt.input, opts))
		})
	}
}

func TestRebaseRoot(t *testing.T) {
	require.Equal(t, "/docs/a", RebaseRoot("/a", "/docs"))
	require.Equal(t, "/docs/a", RebaseRoot("/a", "/docs/"))
	require.Equal(t, "/a", RebaseRoot("/a", "/"))
	require.Equal(t, "/a", RebaseRoot("/a", ""))
	require.Equal(t, "https://cdn.example.com/site/a", RebaseRoot("/a", "https://cdn.example.com/site"))
}

func TestAppendQuery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		params   map[string]string
		expected string
	}{
		{"no params", "page", nil, "page"},
		{"one", "page", map[string]string{"base": "123"}, "page?base=123"},
		{"sorted", "page", map[string]string{"b": "2", "a": "1"}, "page?a=1&b=2"},
		{"escaped", "page", map[string]string{"q": "a b&c"}, "page?q=a+b%26c"},
		{"existing query", "page?x=1", map[string]string{"a": "1"}, "page?x=1&a=1"},
		{"trailing question mark", "page?", map[string]string{"a": "1"}, "page?a=1"},
		{"fragment", "page#top", map[string]string{"a": "1"}, "page?a=1#top"},
		{"query and fragment", "page?x=1#top", map[string]string{"a": "1"}, "page?x=1&a=1#top"},
		{"fragment only", "#top", map[string]string{"a": "1"}, "#top"},
		{"empty", "", map[string]string{"a": "1"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, AppendQuery(tt.input, tt.params))
		})
	}
}
