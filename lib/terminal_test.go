package lib

import (
	"testing"
)

func term(block, name, pos string) *Terminal {
	return &Terminal{Block: block, Name: name, Pos: pos, Type: TypeStandard}
}

func TestSortTerminals(t *testing.T) {
	terminals := []*Terminal{
		term("X1", "PE", "10"),
		term("X2", "1", "1"),
		term("X1", "L", "2"),
		term("X1", "N", "1"),
	}

	SortTerminals(terminals)

	order := []string{}
	for _, tr := range terminals {
		order = append(order, tr.Label())
	}

	expected := []string{"X2:1", "X1:N", "X1:L", "X1:PE"}
	for i, label := range expected {
		if order[i] != label {
			t.Fatalf("expected order %v, got %v", expected, order)
		}
	}

	/* positions renumber per block */
	if terminals[0].Pos != "1" {
		t.Errorf("expected X2:1 at pos 1, got %s", terminals[0].Pos)
	}
	if terminals[1].Pos != "1" || terminals[2].Pos != "2" || terminals[3].Pos != "3" {
		t.Errorf("expected X1 positions 1,2,3, got %s,%s,%s",
			terminals[1].Pos, terminals[2].Pos, terminals[3].Pos)
	}
}

func TestSortTerminalsNumericPositions(t *testing.T) {
	terminals := []*Terminal{
		term("X1", "a", "10"),
		term("X1", "b", "2"),
		term("X1", "c", "1"),
	}

	SortTerminals(terminals)

	if terminals[0].Name != "c" || terminals[1].Name != "b" || terminals[2].Name != "a" {
		t.Errorf("expected numeric position order c,b,a, got %s,%s,%s",
			terminals[0].Name, terminals[1].Name, terminals[2].Name)
	}
}

func TestBlockNames(t *testing.T) {
	terminals := []*Terminal{
		term("X2", "1", "1"),
		term("X2", "2", "2"),
		term("X1", "1", "1"),
	}

	names := BlockNames(terminals)
	if len(names) != 2 || names[0] != "X2" || names[1] != "X1" {
		t.Errorf("expected [X2 X1], got %v", names)
	}

	if len(BlockTerminals(terminals, "X2")) != 2 {
		t.Errorf("expected 2 terminals in X2")
	}
	if MaxBlockLength(terminals) != 2 {
		t.Errorf("expected max block length 2, got %d", MaxBlockLength(terminals))
	}
}

func TestExpandReserves(t *testing.T) {
	terminals := []*Terminal{
		term("X1", "1", "1"),
		term("X1", "2", "2"),
	}
	terminals[0].NumReserve = 3
	terminals[0].ReservePositions = "5, 2"

	expanded := ExpandReserves(terminals)
	if len(expanded) != 5 {
		t.Fatalf("expected 5 terminals, got %d", len(expanded))
	}

	/* position 2 is taken, so reserves are 5 plus the next free numbers */
	names := []string{}
	for _, tr := range expanded {
		names = append(names, tr.Name)
	}

	expected := []string{"1", "2", "3", "4", "5"}
	for i, name := range expected {
		if names[i] != name {
			t.Fatalf("expected names %v, got %v", expected, names)
		}
	}
}

func TestExpandReservesNoReserves(t *testing.T) {
	terminals := []*Terminal{term("X1", "1", "1")}
	if len(ExpandReserves(terminals)) != 1 {
		t.Error("expected no expansion without reserves")
	}
}

func TestFillGaps(t *testing.T) {
	terminals := []*Terminal{
		term("X1", "1", "1"),
		term("X1", "5", "2"),
		term("X1", "PE", "3"),
	}

	filled := FillGaps(terminals)
	if len(filled) != 6 {
		t.Fatalf("expected 6 terminals, got %d", len(filled))
	}

	names := []string{}
	for _, tr := range filled {
		names = append(names, tr.Name)
	}

	expected := []string{"1", "2", "3", "4", "5", "PE"}
	for i, name := range expected {
		if names[i] != name {
			t.Fatalf("expected names %v, got %v", expected, names)
		}
	}
}
