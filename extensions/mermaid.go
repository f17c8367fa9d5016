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
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const mermaidLanguage = "mermaid"

type mermaidBlock struct {
	ast.BaseBlock
}

var KindMermaid = ast.NewNodeKind("Mermaid")

func (n *mermaidBlock) Kind() ast.NodeKind {
	return KindMermaid
}

func (n *mermaidBlock) IsRaw() bool {
	return true
}

// Dump implements Node.Dump.
func (n *mermaidBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

func newMermaidBlock(fence *ast.FencedCodeBlock) *mermaidBlock {
	n := &mermaidBlock{}
	n.SetLines(fence.Lines())
	return n
}

// fenceLanguage is the first whitespace-delimited word of the info string.
func fenceLanguage(fence *ast.FencedCodeBlock, source []byte) string {
	if fence.Info == nil {
		return ""
	}
	fields := strings.Fields(string(fence.Info.Segment.Value(source)))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

type mermaidTransformer struct{}

func (t mermaidTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	fences := make([]*ast.FencedCodeBlock, 0)
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if fence, ok := n.(*ast.FencedCodeBlock); ok && entering {
			if fenceLanguage(fence, source) == mermaidLanguage {
				fences = append(fences, fence)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	// Swapping nodes inside Walk would cut the sibling iteration short.
	for _, fence := range fences {
		fence.Parent().ReplaceChild(fence.Parent(), fence, newMermaidBlock(fence))
	}
}

// MermaidHTMLRenderer writes mermaid fences as <div class="mermaid"> so the
// mermaid script can pick them up. The diagram source stays escaped.
type MermaidHTMLRenderer struct{}

func NewMermaidHTMLRenderer() renderer.NodeRenderer {
	return &MermaidHTMLRenderer{}
}

func (r *MermaidHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindMermaid, r.renderMermaid)
}

func (r *MermaidHTMLRenderer) renderMermaid(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString(`<div class="mermaid">`)
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		_, _ = w.Write(util.EscapeHTML(line.Value(source)))
	}
	_, _ = w.WriteString("</div>\n")
	return ast.WalkSkipChildren, nil
}

type mermaidExtension struct{}

func (e *mermaidExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(
			util.Prioritized(mermaidTransformer{}, priorityMermaidTransformer),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(NewMermaidHTMLRenderer(), priorityMermaidHTMLRenderer),
		),
	)
}

// Mermaid renders mermaid fences as diagram containers.
func Mermaid() goldmark.Extender {
	return &mermaidExtension{}
}
