package lib

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const TerminalSheet = "terminals"

/*
	WriteTerminalsXLSX exports the terminal table as a spreadsheet the
	user edits before importing it back.
*/
func WriteTerminalsXLSX(dst string, terminals []*Terminal) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(TerminalSheet); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	header := make([]interface{}, len(TableHeader))
	for i, h := range TableHeader {
		header[i] = h
	}
	f.SetSheetRow(TerminalSheet, "A1", &header)

	for i, t := range terminals {
		row := []interface{}{}
		for _, cell := range terminalRow(t) {
			row = append(row, cell)
		}

		f.SetSheetRow(TerminalSheet, "A"+strconv.Itoa(i+2), &row)
	}

	return f.SaveAs(dst)
}

func ReadTerminalsXLSX(src string) ([]*Terminal, error) {
	f, err := excelize.OpenFile(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := TerminalSheet
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		if len(f.GetSheetList()) == 0 {
			return nil, fmt.Errorf("spreadsheet has no sheets")
		}
		sheet = f.GetSheetList()[0]
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, err
	}

	terminals := []*Terminal{}
	first := true
	for rows.Next() {
		row, err := rows.Columns()
		if err != nil {
			continue
		}

		if first {
			first = false
			if len(row) > 0 && row[0] == "uuid" {
				continue
			}
		}
		if len(row) == 0 || row[0] == "" {
			continue
		}

		terminals = append(terminals, rowTerminal(row))
	}

	return terminals, rows.Close()
}
