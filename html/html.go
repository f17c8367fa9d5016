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


package html

import (
	"bytes"
	stdhtml "html"
	"maps"
	"slices"
)

var voidElements = []string{
	"area",
	"base",
	"br",
	"col",
	"embed",
	"hr",
	"img",
	"input",
	"link",
	"meta",
	"param", //Deprecated
	"source",
	"track",
	"wbr",
}

// HTMLElement is a small element tree used for generated markup such as the
// table of contents. Text children are escaped when rendered.
type HTMLElement struct {
	Tag        string
	Content    string
	Attributes map[string]string
	Children   []*HTMLElement
}

func NewHTMLElement(tag string, attr ...map[string]string) *HTMLElement {
	attributes := make(map[string]string)
	for _, attributeList := range attr {
		for key, value := range attributeList {
			if prev, ok := attributes[key]; ok {
				attributes[key] = prev + " " + value
			} else {
				attributes[key] = value
			}
		}
	}
	return &HTMLElement{
		Tag:        tag,
		Attributes: attributes,
		Children:   make([]*HTMLElement, 0),
	}
}

// Convienience function to quickly make a class attribute
func Class(cls string) map[string]string {
	return map[string]string{"class": cls}
}

// Convienience function to quickly make an href attribute
func Href(url string) map[string]string {
	return map[string]string{"href": url}
}

func (e *HTMLElement) AppendNew(tag string, attr ...map[string]string) *HTMLElement {
	elem := NewHTMLElement(tag, attr...)
	e.Children = append(e.Children, elem)
	return elem
}

func (e *HTMLElement) AppendText(text string) *HTMLElement {
	elem := &HTMLElement{Content: text}
	e.Children = append(e.Children, elem)
	return elem
}

func isShort(elem *HTMLElement) bool {
	switch len(elem.Children) {
	case 0:
		return true
	case 1:
		return elem.Children[0].Tag == "" && len(elem.Children[0].Content) < 32
	}
	return false
}

func indent(out *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		out.WriteString("    ")
	}
}

func openTag(elem *HTMLElement, depth int, out *bytes.Buffer) {
	indent(out, depth)
	out.WriteByte('<')
	out.WriteString(elem.Tag)
	// sorted so the same tree always renders the same bytes
	for _, key := range slices.Sorted(maps.Keys(elem.Attributes)) {
		value := elem.Attributes[key]
		out.WriteByte(' ')
		out.WriteString(key)
		if value != "" {
			out.WriteString(`="`)
			out.WriteString(stdhtml.EscapeString(value))
			out.WriteByte('"')
		}
	}
	out.WriteByte('>')
	if slices.Contains(voidElements, elem.Tag) || !isShort(elem) {
		out.WriteByte('\n')
	}
}

func closeTag(elem *HTMLElement, depth int, out *bytes.Buffer) {
	if !isShort(elem) {
		indent(out, depth)
	}
	out.WriteString("</")
	out.WriteString(elem.Tag)
	out.WriteString(">\n")
}

// RenderHTML writes root and its children to text, indenting four spaces per
// level.
func RenderHTML(root *HTMLElement, text *bytes.Buffer, optDepth ...int) {
	if root == nil {
		return
	}
	var depth int
	if len(optDepth) > 0 {
		depth = optDepth[0]
	}
	if root.Tag == "" {
		text.WriteString(stdhtml.EscapeString(root.Content))
		return
	}
	openTag(root, depth, text)
	short := isShort(root)
	for _, elem := range root.Children {
		switch {
		case elem.Tag != "":
			RenderHTML(elem, text, depth+1)
		case short:
			text.WriteString(stdhtml.EscapeString(elem.Content))
		default:
			indent(text, depth+1)
			text.WriteString(stdhtml.EscapeString(elem.Content))
			text.WriteByte('\n')
		}
	}
	// void elements should not have a closing tag!
	if !slices.Contains(voidElements, root.Tag) {
		closeTag(root, depth, text)
	}
}

func (e *HTMLElement) String() string {
	var buf bytes.Buffer
	RenderHTML(e, &buf)
	return buf.String()
}
