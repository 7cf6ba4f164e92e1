package lib

import "testing"

func TestParseMeta(t *testing.T) {
	m := ParseMeta("%p3%tFUSE%hW1%n1.5mm2%bx%r2%z4,5%s15%")

	if m.Pos != "3" {
		t.Errorf("expected pos 3, got %s", m.Pos)
	}
	if m.Type != TypeFuse {
		t.Errorf("expected type FUSE, got %s", m.Type)
	}
	if m.Hose != "W1" {
		t.Errorf("expected hose W1, got %s", m.Hose)
	}
	if m.Conductor != "1.5mm2" {
		t.Errorf("expected conductor 1.5mm2, got %s", m.Conductor)
	}
	if !m.HasBridge() {
		t.Error("expected a bridge")
	}
	if m.NumReserve != 2 {
		t.Errorf("expected 2 reserves, got %d", m.NumReserve)
	}
	if m.ReservePositions != "4,5" {
		t.Errorf("expected reserve positions 4,5, got %s", m.ReservePositions)
	}
	if m.SplitSize != 15 {
		t.Errorf("expected split size 15, got %d", m.SplitSize)
	}
}

func TestParseMetaDefaults(t *testing.T) {
	m := ParseMeta("")

	if m.Type != TypeStandard {
		t.Errorf("expected type STANDARD, got %s", m.Type)
	}
	if m.Pos != "" || m.Hose != "" || m.Conductor != "" {
		t.Error("expected empty string fields")
	}
	if m.HasBridge() {
		t.Error("expected no bridge")
	}
	if m.NumReserve != 0 {
		t.Errorf("expected 0 reserves, got %d", m.NumReserve)
	}
	if m.SplitSize != DefaultSplitSize {
		t.Errorf("expected default split size, got %d", m.SplitSize)
	}
}

func TestParseMetaEmptyType(t *testing.T) {
	/*
		An empty %t tag still means STANDARD.
	*/
	m := ParseMeta("%p1%t%h%n%b%")
	if m.Type != TypeStandard {
		t.Errorf("expected type STANDARD, got %s", m.Type)
	}
}

func TestMetaEncode(t *testing.T) {
	m := Meta{
		Pos:       "7",
		Type:      TypeGround,
		Hose:      "W3",
		Conductor: "PE",
		Bridge:    "x",
	}

	encoded := m.Encode()
	if encoded != "%p7%tGROUND%hW3%nPE%bx%" {
		t.Errorf("unexpected encoding: %s", encoded)
	}

	decoded := ParseMeta(encoded)
	if decoded.Pos != m.Pos || decoded.Type != m.Type ||
		decoded.Hose != m.Hose || decoded.Conductor != m.Conductor ||
		decoded.Bridge != m.Bridge {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
}

func TestMetaEncodeReserves(t *testing.T) {
	m := Meta{
		Pos:              "1",
		Type:             TypeStandard,
		NumReserve:       2,
		ReservePositions: "5,6",
		SplitSize:        15,
	}

	encoded := m.Encode()
	if encoded != "%p1%tSTANDARD%h%n%b%r2%z5,6%s15%" {
		t.Errorf("unexpected encoding: %s", encoded)
	}

	decoded := ParseMeta(encoded)
	if decoded.NumReserve != 2 {
		t.Errorf("expected 2 reserves, got %d", decoded.NumReserve)
	}
	if decoded.ReservePositions != "5,6" {
		t.Errorf("expected reserve positions 5,6, got %s", decoded.ReservePositions)
	}
	if decoded.SplitSize != 15 {
		t.Errorf("expected split size 15, got %d", decoded.SplitSize)
	}
}

func TestMetaEncodeDefaultSplitOmitted(t *testing.T) {
	/*
		The default split size stays implicit, so untouched elements
		keep the short function string.
	*/
	m := Meta{Pos: "1", Type: TypeStandard, SplitSize: DefaultSplitSize}
	if encoded := m.Encode(); encoded != "%p1%tSTANDARD%h%n%b%" {
		t.Errorf("unexpected encoding: %s", encoded)
	}
}
