package lib

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

/*
	Fixed drawing offsets shared by every block, independent of the
	configurable layout.
*/
const (
	fuseLogoHeight  = 36
	groundLogoWidth = 15
	yOffsetBaseText = 22
	xOffsetCableTxt = 4

	drawStyle = "line-style:normal;line-weight:normal;filling:none;color:black"
)

/*
	Block renders the terminals of one terminal block (or one segment
	of a split block) into a QET element definition.
*/
type Block struct {
	Name      string
	Terminals []*Terminal
	Layout    Layout
}

func NewBlock(name string, terminals []*Terminal, layout Layout) *Block {
	return &Block{
		Name:      name,
		Terminals: terminals,
		Layout:    layout,
	}
}

func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func qetUUID() string {
	return "{" + uuid.New().String() + "}"
}

/*
	roundUpTen forces the next multiple of ten, one past the given
	value, so generated elements always land on the QET grid.
*/
func roundUpTen(v int) int {
	v++
	for v%10 != 0 {
		v++
	}

	return v
}

var blockNameLangs = []LocalizedName{
	{Lang: "de", Name: "Terminalblock "},
	{Lang: "ru", Name: "Терминальный блок "},
	{Lang: "pt", Name: "Bloco terminal "},
	{Lang: "en", Name: "Terminal block "},
	{Lang: "it", Name: "Terminal block "},
	{Lang: "fr", Name: "Bornier "},
	{Lang: "pl", Name: "Blok zacisków "},
	{Lang: "es", Name: "Bornero "},
	{Lang: "nl", Name: "Eindblok "},
	{Lang: "cs", Name: "Terminálový blok "},
}

func localizedNames(name string) []*LocalizedName {
	names := []*LocalizedName{}
	for _, l := range blockNameLangs {
		names = append(names, &LocalizedName{Lang: l.Lang, Name: l.Name + name})
	}

	return names
}

/*
	Draw produces the element node for the block, ready for insertion
	into a project collection. Coordinate (0,0) is the upper left
	corner of the head.
*/
func (b *Block) Draw() (*Node, error) {
	if len(b.Terminals) == 0 {
		return nil, fmt.Errorf("block %s has no terminals", b.Name)
	}

	cfg := b.Layout
	n := len(b.Terminals)
	name := "TB_" + b.Name

	totalWidth := roundUpTen(cfg.HeadWidth + cfg.UnionWidth + n*cfg.TerminalWidth)
	totalHeight := roundUpTen(cfg.ConductorLength + cfg.TerminalHeight +
		cfg.HoseConductorStart + cfg.HoseLength + cfg.HoseConductorEnd)

	desc := &Description{}
	element := &Element{
		Name: name + ".elmt",
		Definition: &Definition{
			Height:      strconv.Itoa(totalHeight),
			Width:       strconv.Itoa(totalWidth),
			HotspotX:    "5",
			HotspotY:    "24",
			LinkType:    "simple",
			Orientation: "dyyy",
			Version:     "0.4",
			Type:        "element",
			UUID:        &ElementUUID{UUID: qetUUID()},
			Names:       localizedNames(name),
			Label: &DynamicText{
				X:         strconv.Itoa(cfg.HeadWidth + 5),
				Y:         strconv.Itoa(cfg.HeadHeight + 5),
				Z:         "2",
				TextFrom:  "ElementInfo",
				TextWidth: "-1",
				UUID:      qetUUID(),
				FontSize:  "10",
				Frame:     "false",
				Text:      b.Terminals[0].Block,
				InfoName:  "label",
			},
			Informations: "Terminal block",
			Description:  desc,
		},
	}

	cursor := 0.0
	termW := float64(cfg.TerminalWidth)
	termH := float64(cfg.TerminalHeight)
	condLen := float64(cfg.ConductorLength)
	hoseStart := float64(cfg.HoseConductorStart)
	hoseLen := float64(cfg.HoseLength)
	yTermCenter := condLen + termH/2

	/*
		Head and union.
	*/
	b.rect(desc, cursor, yTermCenter-float64(cfg.HeadHeight)/2,
		float64(cfg.HeadWidth), float64(cfg.HeadHeight))
	b.headerLabel(desc, yTermCenter, b.Name)

	cursor += float64(cfg.HeadWidth)
	b.rect(desc, cursor, yTermCenter-float64(cfg.UnionHeight)/2,
		float64(cfg.UnionWidth), float64(cfg.UnionHeight))
	cursor += float64(cfg.UnionWidth)

	/*
		Bottom cable labels run upwards, so they are aligned on the
		longest cable name.
	*/
	maxCableLen := 0
	for _, t := range b.Terminals {
		if len([]rune(t.Cable)) > maxCableLen {
			maxCableLen = len([]rune(t.Cable))
		}
	}
	condFont := float64(cfg.ConductorFont)

	lastHose := ""
	lastCableX := cursor
	for i, trmnl := range b.Terminals {
		xTermCenter := cursor + termW/2

		b.rect(desc, cursor, yTermCenter-termH/2, termW, termH)
		b.termLabel(desc,
			xTermCenter-float64(cfg.TerminalFont),
			yTermCenter+termH/2-yOffsetBaseText,
			trmnl.Name)
		b.xrefLabel(desc,
			xTermCenter-float64(cfg.TerminalFont),
			yTermCenter-yOffsetBaseText,
			trmnl.XRef)
		b.typeLogo(desc, xTermCenter, yTermCenter, trmnl.Type)

		if trmnl.HasBridge() {
			b.line(desc, xTermCenter, xTermCenter+termW, yTermCenter, yTermCenter)
		}

		/*
			North conductor.
		*/
		b.line(desc, xTermCenter, xTermCenter, 0, condLen)
		b.condLabel(desc,
			xTermCenter-condFont-xOffsetCableTxt,
			condLen-yOffsetBaseText+3,
			trmnl.Cable)
		b.pin(desc, cursor, 0, "n")

		/*
			South conductor: part of a hose, or independent.
		*/
		if trmnl.Hose != "" {
			b.line(desc, xTermCenter, xTermCenter,
				condLen+termH, condLen+termH+hoseStart)
			b.condLabel(desc,
				xTermCenter-condFont-xOffsetCableTxt,
				condLen+termH+yOffsetBaseText+float64(maxCableLen)*condFont,
				trmnl.Cable)
			b.condLabel(desc,
				xTermCenter-condFont-xOffsetCableTxt,
				condLen+termH+hoseStart,
				trmnl.Conductor)
			b.line(desc,
				cursor+termW/2-2, cursor+termW/2+2,
				condLen+termH+hoseStart-10-2, condLen+termH+hoseStart-10+2)

			y1 := condLen + termH + hoseStart + hoseLen
			y2 := y1 + float64(cfg.HoseConductorEnd)
			b.line(desc, xTermCenter, xTermCenter, y1, y2)
			endLabelY := y1 + yOffsetBaseText + float64(maxCableLen)*condFont
			b.condLabel(desc,
				xTermCenter-condFont-xOffsetCableTxt,
				endLabelY,
				trmnl.Conductor)
			b.line(desc,
				cursor+termW/2-2, cursor+termW/2+2,
				endLabelY-10-2, endLabelY-10+2)
			b.pin(desc, cursor, y2, "s")
		} else {
			b.line(desc, xTermCenter, xTermCenter,
				condLen+termH, condLen+termH+condLen)
			b.condLabel(desc,
				xTermCenter-condFont-3,
				condLen+termH+yOffsetBaseText+float64(maxCableLen)*condFont,
				trmnl.Cable)
			b.pin(desc, cursor, 2*condLen+termH, "s")
		}

		/*
			Hose rails: drawn when the hose changes and at the last
			terminal, spanning the conductors collected since the hose
			began, with the hose name on the vertical drop.
		*/
		y1 := condLen + termH + hoseStart
		y2 := y1 + hoseLen
		last := i == len(b.Terminals)-1
		if (trmnl.Hose != lastHose && lastHose != "") || (lastHose != "" && last) {
			x1 := lastCableX + termW/2
			x2 := cursor - termW/2
			if last && trmnl.Hose == lastHose {
				x2 += termW
			}

			b.line(desc, x1, x2, y1, y1)
			b.line(desc, x1, x2, y2, y2)
			b.line(desc, (x1+x2)/2, (x1+x2)/2, y1, y2)
			b.condLabel(desc,
				(x1+x2)/2-termW+10,
				y1+(y2-y1)/2+float64(len([]rune(lastHose)))*3,
				lastHose)

			/*
				A hose starting on the very last terminal gets its own
				drop, one slot to the right.
			*/
			if last && trmnl.Hose != lastHose && trmnl.Hose != "" {
				x2 += termW
				b.line(desc, x2, x2, y1, y2)
				b.condLabel(desc,
					x2-10,
					y1+(y2-y1)/2+float64(len([]rune(lastHose)))*3,
					trmnl.Hose)
			}
		}

		if trmnl.Hose != lastHose {
			lastCableX = cursor
		}

		cursor += termW
		lastHose = trmnl.Hose
	}

	return element.Node()
}

func (b *Block) rect(desc *Description, x, y, width, height float64) {
	desc.Rects = append(desc.Rects, &Rect{
		X:         fnum(x),
		Y:         fnum(y),
		Width:     fnum(width),
		Height:    fnum(height),
		Antialias: "false",
		Style:     drawStyle,
	})
}

func (b *Block) line(desc *Description, x1, x2, y1, y2 float64) {
	desc.Lines = append(desc.Lines, &Line{
		X1:        fnum(x1),
		X2:        fnum(x2),
		Y1:        fnum(y1),
		Y2:        fnum(y2),
		Length1:   "1.5",
		Length2:   "1.5",
		End1:      "none",
		End2:      "none",
		Antialias: "false",
		Style:     drawStyle,
	})
}

func (b *Block) circle(desc *Description, x, y, diameter float64) {
	desc.Circles = append(desc.Circles, &Circle{
		X:         fnum(x),
		Y:         fnum(y),
		Diameter:  fnum(diameter),
		Antialias: "false",
		Style:     drawStyle,
	})
}

/*
	pin places a QET connection point centered on a terminal column.
*/
func (b *Block) pin(desc *Description, x, y float64, orientation string) {
	desc.Terminals = append(desc.Terminals, &TerminalPin{
		X:           fnum(x + float64(b.Layout.TerminalWidth)/2),
		Y:           fnum(y),
		Orientation: orientation,
	})
}

func (b *Block) text(desc *Description, x, y float64, size int, text, color string) {
	desc.Texts = append(desc.Texts, &DynamicText{
		X:        fnum(x),
		Y:        fnum(y),
		Z:        "3",
		TextFrom: "UserText",
		UUID:     qetUUID(),
		FontSize: strconv.Itoa(size),
		Frame:    "false",
		Rotation: "270",
		Text:     text,
		Color:    color,
	})
}

/*
	Conductor labels run along the vertical conductor lines.
*/
func (b *Block) condLabel(desc *Description, x, y float64, text string) {
	size := b.Layout.ConductorFont
	b.text(desc, x-float64(size)+1, y, size, text, "")
}

func (b *Block) headerLabel(desc *Description, y float64, text string) {
	size := b.Layout.HeadFont
	x := float64(b.Layout.HeadWidth)/2 - float64(size)
	y += float64(len([]rune(text))) / 2 * float64(size)
	b.text(desc, x, y, size, text, "#777777")
}

func (b *Block) termLabel(desc *Description, x, y float64, text string) {
	size := b.Layout.TerminalFont
	x1 := x + float64(b.Layout.HeadWidth)/2 - float64(b.Layout.TerminalWidth) - float64(size) + 6
	b.text(desc, x1, y+y*0.10, size, text, "#555555")
}

func (b *Block) xrefLabel(desc *Description, x, y float64, text string) {
	size := b.Layout.XRefFont
	x1 := x + float64(b.Layout.HeadWidth)/2 - float64(b.Layout.TerminalWidth) - float64(size) + 5
	b.text(desc, x1, y-y*0.10, size, text, "")
}

/*
	typeLogo draws the symbol for the terminal type, centered on the
	terminal: a small circle for standard terminals, earth bars for
	ground, a fuse body for fuses.
*/
func (b *Block) typeLogo(desc *Description, x, y float64, typ string) {
	switch strings.ToUpper(typ) {
	case TypeGround:
		b.line(desc, x, x, y-10, y)

		x1 := x - groundLogoWidth/2.0
		x2 := x + groundLogoWidth/2.0
		b.line(desc, x1, x2, y, y)
		b.line(desc, x1+2, x2-2, y+2, y+2)
		b.line(desc, x1+4, x2-4, y+4, y+4)
		b.line(desc, x1+6, x2-6, y+6, y+6)

	case TypeFuse:
		termW := float64(b.Layout.TerminalWidth)
		y1 := y - fuseLogoHeight/2.0
		y2 := y + fuseLogoHeight/2.0
		b.line(desc, x-termW/2, x+termW/2, y1, y1)
		b.line(desc, x-termW/2, x+termW/2, y2, y2)

		/*
			Fuse body with the wire through it.
		*/
		x1, x2 := x-3, x+3
		y1, y2 = y1+6, y2-6
		b.line(desc, x1, x2, y1, y1)
		b.line(desc, x1, x2, y2, y2)
		b.line(desc, x1, x1, y1, y2)
		b.line(desc, x2, x2, y1, y2)
		b.line(desc, x, x, y1-3, y2+3)

	default:
		b.circle(desc, x-2, y-2, 4)
	}
}

/*
	RenderedBlock is one generated element, named after the block with
	a segment suffix when the block was split.
*/
type RenderedBlock struct {
	Name string
	Node *Node
}

/*
	RenderBlocks renders every block found in the terminal list,
	expanding reserves and splitting blocks longer than the split size
	into TB_<name>_<i> segments.
*/
func RenderBlocks(terminals []*Terminal, layout Layout, fillGaps bool) ([]RenderedBlock, error) {
	rendered := []RenderedBlock{}

	for _, name := range BlockNames(terminals) {
		block := ExpandReserves(BlockTerminals(terminals, name))
		if fillGaps {
			block = FillGaps(block)
		}

		split := layout.SplitSize
		for _, t := range block {
			if t.SplitSize != 0 && t.SplitSize != DefaultSplitSize {
				split = t.SplitSize
				break
			}
		}
		if split <= 0 {
			split = DefaultSplitSize
		}

		segments := [][]*Terminal{}
		for start := 0; start < len(block); start += split {
			end := start + split
			if end > len(block) {
				end = len(block)
			}
			segments = append(segments, block[start:end])
		}

		for i, segment := range segments {
			segName := name
			if len(segments) > 1 {
				segName = name + "_" + strconv.Itoa(i+1)
			}

			node, err := NewBlock(segName, segment, layout).Draw()
			if err != nil {
				return nil, err
			}

			rendered = append(rendered, RenderedBlock{Name: segName, Node: node})
		}
	}

	return rendered, nil
}
