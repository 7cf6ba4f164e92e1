package lib

import "encoding/xml"

/*
	Typed model of a generated QET element definition. Only the subset
	the block renderer emits is covered; parsed project trees stay in
	the generic Node form.
*/

type Element struct {
	XMLName    xml.Name    `xml:"element"`
	Name       string      `xml:"name,attr"`
	Definition *Definition `xml:"definition"`
}

type Definition struct {
	Height       string           `xml:"height,attr"`
	Width        string           `xml:"width,attr"`
	HotspotX     string           `xml:"hotspot_x,attr"`
	HotspotY     string           `xml:"hotspot_y,attr"`
	LinkType     string           `xml:"link_type,attr"`
	Orientation  string           `xml:"orientation,attr"`
	Version      string           `xml:"version,attr"`
	Type         string           `xml:"type,attr"`
	UUID         *ElementUUID     `xml:"uuid"`
	Names        []*LocalizedName `xml:"names>name"`
	Label        *DynamicText     `xml:"dynamic_text"`
	Informations string           `xml:"informations"`
	Description  *Description     `xml:"description"`
}

type ElementUUID struct {
	UUID string `xml:"uuid,attr"`
}

type LocalizedName struct {
	Lang string `xml:"lang,attr"`
	Name string `xml:",chardata"`
}

type Description struct {
	Rects     []*Rect        `xml:"rect"`
	Lines     []*Line        `xml:"line"`
	Circles   []*Circle      `xml:"circle"`
	Texts     []*DynamicText `xml:"dynamic_text"`
	Terminals []*TerminalPin `xml:"terminal"`
}

type Rect struct {
	X         string `xml:"x,attr"`
	Y         string `xml:"y,attr"`
	Width     string `xml:"width,attr"`
	Height    string `xml:"height,attr"`
	Antialias string `xml:"antialias,attr"`
	Style     string `xml:"style,attr"`
}

type Line struct {
	X1        string `xml:"x1,attr"`
	X2        string `xml:"x2,attr"`
	Y1        string `xml:"y1,attr"`
	Y2        string `xml:"y2,attr"`
	Length1   string `xml:"length1,attr"`
	Length2   string `xml:"length2,attr"`
	End1      string `xml:"end1,attr"`
	End2      string `xml:"end2,attr"`
	Antialias string `xml:"antialias,attr"`
	Style     string `xml:"style,attr"`
}

type Circle struct {
	X         string `xml:"x,attr"`
	Y         string `xml:"y,attr"`
	Diameter  string `xml:"diameter,attr"`
	Antialias string `xml:"antialias,attr"`
	Style     string `xml:"style,attr"`
}

type DynamicText struct {
	X         string `xml:"x,attr"`
	Y         string `xml:"y,attr"`
	Z         string `xml:"z,attr"`
	TextFrom  string `xml:"text_from,attr"`
	TextWidth string `xml:"text_width,attr,omitempty"`
	UUID      string `xml:"uuid,attr"`
	FontSize  string `xml:"font_size,attr"`
	Frame     string `xml:"frame,attr"`
	Rotation  string `xml:"rotation,attr,omitempty"`
	Text      string `xml:"text"`
	InfoName  string `xml:"info_name,omitempty"`
	Color     string `xml:"color,omitempty"`
}

/*
	TerminalPin is a QET connection point on the generated symbol.
*/
type TerminalPin struct {
	X           string `xml:"x,attr"`
	Y           string `xml:"y,attr"`
	Orientation string `xml:"orientation,attr"`
}

/*
	Node converts the typed element to the generic tree form used for
	insertion into a project.
*/
func (e *Element) Node() (*Node, error) {
	data, err := xml.Marshal(e)
	if err != nil {
		return nil, err
	}

	node := &Node{}
	if err := xml.Unmarshal(data, node); err != nil {
		return nil, err
	}

	return node, nil
}
