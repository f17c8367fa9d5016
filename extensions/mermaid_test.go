package extensions

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark/ast"
)

func TestMermaid(t *testing.T) {
	md := newMarkdown(Mermaid())
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "mermaid fence",
			input:    "```mermaid\ngraph TD;\n    A-->B;\n```\n",
			expected: "<div class=\"mermaid\">graph TD;\n    A--&gt;B;\n</div>\n",
		},
		{
			name:     "other language",
			input:    "```ruby\n1 + 1\n```\n",
			expected: "<pre><code class=\"language-ruby\">1 + 1\n</code></pre>\n",
		},
		{
			name:     "no language",
			input:    "```\nplain\n```\n",
			expected: "<pre><code>plain\n</code></pre>\n",
		},
		{
			name:     "language prefix only",
			input:    "```mermaidjs\nx\n```\n",
			expected: "<pre><code class=\"language-mermaidjs\">x\n</code></pre>\n",
		},
		{
			name:     "two fences in a row",
			input:    "```mermaid\na\n```\n```mermaid\nb\n```\n",
			expected: "<div class=\"mermaid\">a\n</div>\n<div class=\"mermaid\">b\n</div>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, render(t, md, tt.input))
		})
	}
}

func TestMermaidInsideList(t *testing.T) {
	md := newMarkdown(Mermaid())
	doc, _ := parse(t, md, "- item\n\n  ```mermaid\n  a\n  ```\n")

	kinds := make([]ast.NodeKind, 0)
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			kinds = append(kinds, n.Kind())
		}
		return ast.WalkContinue, nil
	})
	require.Contains(t, kinds, KindMermaid)
	require.NotContains(t, kinds, ast.KindFencedCodeBlock)
}
