package model

import "testing"

func TestChopList_AppendAssignsSequentialIndexes(t *testing.T) {
	list := NewChopList()

	if list.NextFileName() != "chop_001.wav" {
		t.Fatalf("Expected chop_001.wav, got %s", list.NextFileName())
	}

	first := list.Append("/out/chop_001.wav", 10, 20.5)
	second := list.Append("/out/chop_002.wav", 30, 31)

	if first.SequenceIndex != 1 || second.SequenceIndex != 2 {
		t.Errorf("Expected indexes 1 and 2, got %d and %d", first.SequenceIndex, second.SequenceIndex)
	}
	if first.ID == second.ID {
		t.Error("Expected distinct record IDs")
	}
	if list.Len() != 2 {
		t.Errorf("Expected 2 records, got %d", list.Len())
	}
	if list.NextFileName() != "chop_003.wav" {
		t.Errorf("Expected chop_003.wav next, got %s", list.NextFileName())
	}
	if list.TotalLength() != 11.5 {
		t.Errorf("Expected total length 11.5, got %v", list.TotalLength())
	}

	got, ok := list.At(0)
	if !ok {
		t.Fatal("Expected record at 0")
	}
	if got.Label() != "chop_001.wav (00:00:10:00 - 00:00:20:50)" {
		t.Errorf("Unexpected first label: %s", got.Label())
	}
	if _, ok := list.At(2); ok {
		t.Error("Expected no record at 2")
	}
	if _, ok := list.At(-1); ok {
		t.Error("Expected no record at -1")
	}
}

func TestNewChopListFrom(t *testing.T) {
	if NewChopListFrom(7).NextFileName() != "chop_007.wav" {
		t.Error("Expected numbering to start at 7")
	}
	if NewChopListFrom(0).NextFileName() != "chop_001.wav" {
		t.Error("Expected start below 1 to be raised to 1")
	}
}
