package lib

import (
	"bytes"
	"strings"
	"testing"
)

const sampleXML = `<root version="1">
    <items kind="a">
        <item id="1">first</item>
        <item id="2">second</item>
        <nested>
            <item id="3">third</item>
        </nested>
    </items>
</root>`

func parseSample(t *testing.T) *Node {
	t.Helper()

	root, err := ParseXML(strings.NewReader(sampleXML))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	return root
}

func TestNodeFind(t *testing.T) {
	root := parseSample(t)

	items := root.Find("items")
	if items == nil {
		t.Fatal("items not found")
	}
	if items.Attr("kind") != "a" {
		t.Errorf("expected kind a, got %s", items.Attr("kind"))
	}

	if len(items.FindAll("item")) != 2 {
		t.Errorf("expected 2 direct items, got %d", len(items.FindAll("item")))
	}
	if len(root.Descendants("item")) != 3 {
		t.Errorf("expected 3 descendant items, got %d", len(root.Descendants("item")))
	}

	if root.Find("missing") != nil {
		t.Error("expected nil for missing child")
	}
}

func TestNodeText(t *testing.T) {
	root := parseSample(t)

	item := root.Descendants("item")[0]
	if item.Text() != "first" {
		t.Errorf("expected first, got %q", item.Text())
	}

	item.SetText("changed")
	if item.Text() != "changed" {
		t.Errorf("expected changed, got %q", item.Text())
	}
}

func TestNodeAttrs(t *testing.T) {
	root := parseSample(t)

	if !root.HasAttr("version") {
		t.Error("expected version attr")
	}

	root.SetAttr("version", "2")
	if root.Attr("version") != "2" {
		t.Errorf("expected version 2, got %s", root.Attr("version"))
	}

	root.SetAttr("fresh", "yes")
	if root.Attr("fresh") != "yes" {
		t.Errorf("expected fresh yes, got %s", root.Attr("fresh"))
	}
}

func TestNodeChildren(t *testing.T) {
	root := parseSample(t)
	items := root.Find("items")

	extra := items.NewChild("item", "id", "4")
	extra.SetText("fourth")
	if len(items.FindAll("item")) != 3 {
		t.Errorf("expected 3 items after append, got %d", len(items.FindAll("item")))
	}

	if !items.RemoveChild(extra) {
		t.Error("expected removal to succeed")
	}
	if items.RemoveChild(extra) {
		t.Error("expected second removal to fail")
	}

	items.InsertChild(0, extra)
	if items.Children[0] != extra {
		t.Error("expected inserted child first")
	}
}

func TestXMLRoundTrip(t *testing.T) {
	root := parseSample(t)

	buf := &bytes.Buffer{}
	if err := WriteXML(buf, root); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	reparsed, err := ParseXML(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to reparse: %v", err)
	}

	if reparsed.Attr("version") != "1" {
		t.Errorf("lost root attr, got %s", reparsed.Attr("version"))
	}
	if len(reparsed.Descendants("item")) != 3 {
		t.Errorf("lost items, got %d", len(reparsed.Descendants("item")))
	}
	if reparsed.Descendants("item")[2].Text() != "third" {
		t.Errorf("lost text: %q", reparsed.Descendants("item")[2].Text())
	}

	if !strings.HasPrefix(buf.String(), "<?xml") {
		t.Error("expected xml header")
	}
}
