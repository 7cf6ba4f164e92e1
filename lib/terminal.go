package lib

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

/*
	A Terminal is one terminal element found on a diagram page, keyed by
	the element uuid. Block and Name come from the element label "X1:1";
	the remaining fields come from the packed function metadata and the
	diagram itself.
*/
type Terminal struct {
	UUID      string
	Block     string
	Name      string
	Pos       string
	XRef      string
	Cable     string
	Hose      string
	Conductor string
	Type      string
	Bridge    string

	/*
		Block-wide settings, carried on every terminal of the block.
	*/
	NumReserve       int
	ReservePositions string
	SplitSize        int
}

func (t *Terminal) Meta() Meta {
	return Meta{
		Pos:              t.Pos,
		Type:             t.Type,
		Hose:             t.Hose,
		Conductor:        t.Conductor,
		Bridge:           t.Bridge,
		NumReserve:       t.NumReserve,
		ReservePositions: t.ReservePositions,
		SplitSize:        t.SplitSize,
	}
}

func (t *Terminal) Label() string {
	return t.Block + ":" + t.Name
}

func (t *Terminal) HasBridge() bool {
	return t.Bridge != ""
}

/*
	Positions are compared numerically where possible, so that "10"
	sorts after "2" rather than before it.
*/
var posCollator = collate.New(language.Und, collate.Numeric)

/*
	SortTerminals orders terminals by block name descending, then by
	position ascending, and renumbers positions 1..n within each block.
*/
func SortTerminals(terminals []*Terminal) {
	sort.SliceStable(terminals, func(i, j int) bool {
		return posCollator.CompareString(terminals[i].Pos, terminals[j].Pos) < 0
	})
	sort.SliceStable(terminals, func(i, j int) bool {
		return terminals[i].Block > terminals[j].Block
	})

	memo, seq := "", 1
	for _, t := range terminals {
		if t.Block != memo {
			seq = 1
		}
		t.Pos = strconv.Itoa(seq)
		memo = t.Block
		seq++
	}
}

/*
	BlockNames returns the block names in the order they appear in the
	sorted terminal list, without duplicates.
*/
func BlockNames(terminals []*Terminal) []string {
	names := []string{}
	seen := map[string]bool{}
	for _, t := range terminals {
		if !seen[t.Block] {
			names = append(names, t.Block)
			seen[t.Block] = true
		}
	}

	return names
}

func BlockTerminals(terminals []*Terminal, block string) []*Terminal {
	matched := []*Terminal{}
	for _, t := range terminals {
		if t.Block == block {
			matched = append(matched, t)
		}
	}

	return matched
}

/*
	MaxBlockLength returns the terminal count of the largest block.
*/
func MaxBlockLength(terminals []*Terminal) int {
	counts := map[string]int{}
	max := 0
	for _, t := range terminals {
		counts[t.Block]++
		if counts[t.Block] > max {
			max = counts[t.Block]
		}
	}

	return max
}

func reserveTerminal(block, name string) *Terminal {
	return &Terminal{
		Block: block,
		Name:  name,
		Pos:   name,
		Type:  TypeStandard,
	}
}

/*
	ExpandReserves appends the reserve terminals configured for a block.
	Positions listed in ReservePositions are used as names when they are
	free; the remainder continue after the highest numeric name. The
	input must contain terminals of one block only.
*/
func ExpandReserves(terminals []*Terminal) []*Terminal {
	if len(terminals) == 0 {
		return terminals
	}

	block := terminals[0].Block
	count := 0
	positions := ""
	for _, t := range terminals {
		if t.NumReserve > count {
			count = t.NumReserve
		}
		if t.ReservePositions != "" {
			positions = t.ReservePositions
		}
	}
	if count == 0 {
		return terminals
	}

	used := map[string]bool{}
	next := 0
	for _, t := range terminals {
		used[t.Name] = true
		if n, err := strconv.Atoi(t.Name); err == nil && n > next {
			next = n
		}
	}

	expanded := terminals
	for _, p := range strings.Split(positions, ",") {
		if count == 0 {
			break
		}

		p = strings.TrimSpace(p)
		if p == "" || used[p] {
			continue
		}

		expanded = append(expanded, reserveTerminal(block, p))
		used[p] = true
		count--
	}

	for ; count > 0; count-- {
		next++
		expanded = append(expanded, reserveTerminal(block, strconv.Itoa(next)))
	}

	return sortByName(expanded)
}

/*
	Reserve expansion names terminals numerically, so the block is
	reordered by name once reserves are added.
*/
func sortByName(terminals []*Terminal) []*Terminal {
	sort.SliceStable(terminals, func(i, j int) bool {
		return posCollator.CompareString(terminals[i].Name, terminals[j].Name) < 0
	})

	return terminals
}

/*
	FillGaps inserts reserve terminals for missing numeric names, so a
	block numbered 1,2,5 gains reserves 3 and 4. Names that are not
	plain numbers are left alone. The input must contain terminals of
	one block only.
*/
func FillGaps(terminals []*Terminal) []*Terminal {
	if len(terminals) == 0 {
		return terminals
	}

	block := terminals[0].Block
	used := map[int]bool{}
	max := 0
	for _, t := range terminals {
		n, err := strconv.Atoi(t.Name)
		if err != nil {
			continue
		}

		used[n] = true
		if n > max {
			max = n
		}
	}

	filled := terminals
	for i := 1; i < max; i++ {
		if !used[i] {
			filled = append(filled, reserveTerminal(block, strconv.Itoa(i)))
		}
	}

	return sortByName(filled)
}
