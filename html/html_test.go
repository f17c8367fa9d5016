package html

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	nav := NewHTMLElement("nav", Class("nav-toc"))
	ul := nav.AppendNew("ul")
	ul.AppendNew("li").AppendNew("a", Href("#a-1")).AppendText("A & B")

	expected := "<nav class=\"nav-toc\">\n" +
		"    <ul>\n" +
		"        <li>\n" +
		"            <a href=\"#a-1\">A &amp; B</a>\n" +
		"        </li>\n" +
		"    </ul>\n" +
		"</nav>\n"
	require.Equal(t, expected, nav.String())
}

func TestAttributesSortedAndMerged(t *testing.T) {
	elem := NewHTMLElement("div", map[string]string{"id": "main"}, Class("one"), Class("two"), map[string]string{"data-x": `"q"`})
	require.Equal(t, "<div class=\"one two\" data-x=\"&#34;q&#34;\" id=\"main\"></div>\n", elem.String())
}

func TestVoidElement(t *testing.T) {
	p := NewHTMLElement("p")
	p.AppendNew("br")
	p.AppendText("a longer line of text that is not short")
	require.Equal(t, "<p>\n    <br>\n    a longer line of text that is not short\n</p>\n", p.String())
}
