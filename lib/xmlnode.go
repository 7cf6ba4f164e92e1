package lib

import (
	"encoding/xml"
	"io"
	"strings"
)

/*
	Generic mutable XML element. QET project files carry arbitrary
	vendor content that must survive a read-modify-write cycle, so the
	tree is kept as-is instead of being forced into typed structs.
*/
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Chardata string     `xml:",chardata"`
	Children []*Node    `xml:",any"`
}

func (n *Node) Name() string {
	return n.XMLName.Local
}

func (n *Node) Attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}

	return ""
}

func (n *Node) HasAttr(name string) bool {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return true
		}
	}

	return false
}

func (n *Node) SetAttr(name, value string) {
	for i, a := range n.Attrs {
		if a.Name.Local == name {
			n.Attrs[i].Value = value
			return
		}
	}

	n.Attrs = append(n.Attrs, xml.Attr{
		Name:  xml.Name{Local: name},
		Value: value,
	})
}

func (n *Node) Text() string {
	return strings.TrimSpace(n.Chardata)
}

func (n *Node) SetText(text string) {
	n.Chardata = text
}

/*
	Find returns the first direct child with the given name.
*/
func (n *Node) Find(name string) *Node {
	for _, c := range n.Children {
		if c.XMLName.Local == name {
			return c
		}
	}

	return nil
}

/*
	FindAll returns all direct children with the given name.
*/
func (n *Node) FindAll(name string) []*Node {
	nodes := []*Node{}
	for _, c := range n.Children {
		if c.XMLName.Local == name {
			nodes = append(nodes, c)
		}
	}

	return nodes
}

/*
	Descendants returns every node below n with the given name, in
	document order.
*/
func (n *Node) Descendants(name string) []*Node {
	nodes := []*Node{}
	for _, c := range n.Children {
		if c.XMLName.Local == name {
			nodes = append(nodes, c)
		}
		nodes = append(nodes, c.Descendants(name)...)
	}

	return nodes
}

func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return true
		}
	}

	return false
}

func (n *Node) InsertChild(i int, child *Node) {
	if i < 0 || i > len(n.Children) {
		i = len(n.Children)
	}

	n.Children = append(n.Children, nil)
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = child
}

func (n *Node) AppendChild(child *Node) {
	n.Children = append(n.Children, child)
}

/*
	NewChild appends and returns a child element, with attributes given
	as name/value pairs.
*/
func (n *Node) NewChild(name string, attrs ...string) *Node {
	child := &Node{XMLName: xml.Name{Local: name}}
	for i := 0; i+1 < len(attrs); i += 2 {
		child.SetAttr(attrs[i], attrs[i+1])
	}

	n.AppendChild(child)
	return child
}

func ParseXML(r io.Reader) (*Node, error) {
	root := &Node{}
	if err := xml.NewDecoder(r).Decode(root); err != nil {
		return nil, err
	}

	return root, nil
}

func WriteXML(w io.Writer, n *Node) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	if err := enc.Encode(n); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}
