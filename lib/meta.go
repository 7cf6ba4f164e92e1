package lib

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/cast"
)

/*
	Terminal metadata is packed into the "function" element information
	of a QET terminal element as a run of %-tagged fields, e.g.

		%p3%tFUSE%hW1%n1.5mm2%bx%

	Tags: %p sort position, %t terminal type, %h hose name, %n conductor
	name, %b bridge marker, %r reserve count, %z reserve positions,
	%s terminals per generated block.
*/

const (
	TypeStandard = "STANDARD"
	TypeGround   = "GROUND"
	TypeFuse     = "FUSE"
)

/*
	Default number of terminals per generated block before splitting.
*/
const DefaultSplitSize = 30

var (
	metaPos       = regexp.MustCompile(`%p(\d+)(%|$)`)
	metaType      = regexp.MustCompile(`%t([^%]*)(%|$)`)
	metaHose      = regexp.MustCompile(`%h([^%]*)(%|$)`)
	metaConductor = regexp.MustCompile(`%n([^%]*)(%|$)`)
	metaBridge    = regexp.MustCompile(`%b([^%]*)(%|$)`)
	metaReserve   = regexp.MustCompile(`%r(\d+)(%|$)`)
	metaResPos    = regexp.MustCompile(`%z([^%]*)(%|$)`)
	metaSplit     = regexp.MustCompile(`%s(\d+)(%|$)`)
)

type Meta struct {
	Pos              string
	Type             string
	Hose             string
	Conductor        string
	Bridge           string
	NumReserve       int
	ReservePositions string
	SplitSize        int
}

func metaField(re *regexp.Regexp, meta string) string {
	m := re.FindStringSubmatch(meta)
	if m == nil {
		return ""
	}

	return m[1]
}

/*
	ParseMeta decodes a packed function string. Missing or empty fields
	fall back to their defaults, so an element with no metadata at all
	still yields a usable record.
*/
func ParseMeta(meta string) Meta {
	m := Meta{
		Pos:              metaField(metaPos, meta),
		Type:             metaField(metaType, meta),
		Hose:             metaField(metaHose, meta),
		Conductor:        metaField(metaConductor, meta),
		Bridge:           metaField(metaBridge, meta),
		NumReserve:       cast.ToInt(metaField(metaReserve, meta)),
		ReservePositions: metaField(metaResPos, meta),
		SplitSize:        cast.ToInt(metaField(metaSplit, meta)),
	}

	if m.Type == "" {
		m.Type = TypeStandard
	}
	if m.SplitSize == 0 {
		m.SplitSize = DefaultSplitSize
	}

	return m
}

/*
	Encode packs the editable fields back into the function string
	format written by the plugin. Reserve and split fields are only
	emitted when they differ from the defaults, so untouched elements
	keep the short form.
*/
func (m Meta) Encode() string {
	s := fmt.Sprintf("%%p%s%%t%s%%h%s%%n%s%%b%s",
		m.Pos, m.Type, m.Hose, m.Conductor, m.Bridge)

	if m.NumReserve > 0 {
		s += "%r" + strconv.Itoa(m.NumReserve)
	}
	if m.ReservePositions != "" {
		s += "%z" + m.ReservePositions
	}
	if m.SplitSize != 0 && m.SplitSize != DefaultSplitSize {
		s += "%s" + strconv.Itoa(m.SplitSize)
	}

	return s + "%"
}

func (m Meta) HasBridge() bool {
	return m.Bridge != ""
}
