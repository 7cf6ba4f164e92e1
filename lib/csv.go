package lib

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/spf13/cast"
)

/*
	Column layout shared by the CSV and spreadsheet forms of the
	terminal table. The uuid column ties an edited row back to its
	diagram element and must not be changed by hand.
*/
var TableHeader = []string{
	"uuid", "block", "terminal", "position", "xref", "cable",
	"hose", "conductor", "type", "bridge",
	"reserve", "reserve_positions", "split_size",
}

func terminalRow(t *Terminal) []string {
	return []string{
		t.UUID, t.Block, t.Name, t.Pos, t.XRef, t.Cable,
		t.Hose, t.Conductor, t.Type, t.Bridge,
		strconv.Itoa(t.NumReserve), t.ReservePositions, strconv.Itoa(t.SplitSize),
	}
}

func rowTerminal(row []string) *Terminal {
	col := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	return &Terminal{
		UUID:             col(0),
		Block:            col(1),
		Name:             col(2),
		Pos:              col(3),
		XRef:             col(4),
		Cable:            col(5),
		Hose:             col(6),
		Conductor:        col(7),
		Type:             col(8),
		Bridge:           col(9),
		NumReserve:       cast.ToInt(col(10)),
		ReservePositions: col(11),
		SplitSize:        cast.ToInt(col(12)),
	}
}

func WriteTerminalsCSV(dst string, terminals []*Terminal) error {
	fp, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer fp.Close()

	writer := csv.NewWriter(fp)
	writer.Write(TableHeader)
	for _, t := range terminals {
		writer.Write(terminalRow(t))
	}

	writer.Flush()
	return writer.Error()
}

func ReadTerminalsCSV(src string) ([]*Terminal, error) {
	fp, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	reader := csv.NewReader(fp)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	terminals := []*Terminal{}
	for i, row := range records {
		if i == 0 && len(row) > 0 && row[0] == "uuid" {
			continue
		}
		if len(row) == 0 || row[0] == "" {
			continue
		}

		terminals = append(terminals, rowTerminal(row))
	}

	return terminals, nil
}

/*
	ApplyEdits copies the editable fields of edited rows onto the
	project's terminal records, matched by uuid. Returns the number of
	records changed.
*/
func ApplyEdits(terminals, edits []*Terminal) int {
	byUUID := map[string]*Terminal{}
	for _, t := range terminals {
		byUUID[t.UUID] = t
	}

	applied := 0
	for _, e := range edits {
		t, ok := byUUID[e.UUID]
		if !ok {
			continue
		}

		t.Pos = e.Pos
		t.Type = e.Type
		t.Hose = e.Hose
		t.Conductor = e.Conductor
		t.Bridge = e.Bridge
		t.NumReserve = e.NumReserve
		t.ReservePositions = e.ReservePositions
		t.SplitSize = e.SplitSize
		applied++
	}

	return applied
}
