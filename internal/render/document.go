package render

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is the output of one render call: a display-ready tree that
// an export collaborator can turn into HTML, PDF or an image.
type Document struct {
	Template TemplateID `json:"template"`
	Title    string     `json:"title"`
	Styles   string     `json:"styles,omitempty"`
	Root     *Node      `json:"root"`
}

// Find returns every node carrying the given data-field
func (d *Document) Find(name string) []*Node {
	if d == nil || d.Root == nil {
		return nil
	}
	return d.Root.FindField(name)
}

// Value returns the text of the first node carrying the given data-field
func (d *Document) Value(name string) string {
	nodes := d.Find(name)
	if len(nodes) == 0 {
		return ""
	}
	return nodes[0].TextContent()
}

// WriteHTML writes the document as a standalone HTML page
func (d *Document) WriteHTML(w io.Writer) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return html.Render(w, d.htmlTree())
}

// HTML returns the document as a standalone HTML page
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := d.WriteHTML(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (d *Document) htmlTree() *html.Node {
	root := element("html", html.Attribute{Key: "lang", Val: "en"})

	head := element("head")
	head.AppendChild(element("meta", html.Attribute{Key: "charset", Val: "utf-8"}))
	title := element("title")
	title.AppendChild(&html.Node{Type: html.TextNode, Data: d.Title})
	head.AppendChild(title)
	if d.Styles != "" {
		css := element("style")
		css.AppendChild(&html.Node{Type: html.TextNode, Data: d.Styles})
		head.AppendChild(css)
	}
	root.AppendChild(head)

	body := element("body")
	if d.Root != nil {
		body.AppendChild(toHTML(d.Root))
	}
	root.AppendChild(body)

	return root
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func toHTML(n *Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	out := element(n.Tag)
	for _, a := range n.Attrs {
		out.Attr = append(out.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	for _, c := range n.Children {
		out.AppendChild(toHTML(c))
	}
	return out
}
