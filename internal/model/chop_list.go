package model

import (
	"time"
)

// ChopList is the append-only sequence of exported chops for one session.
// The next sequence index only advances when a record is appended, so a
// failed export never consumes a number.
type ChopList struct {
	records []ChopRecord
	next    int
}

// NewChopList creates an empty list numbering from 1
func NewChopList() *ChopList {
	return NewChopListFrom(1)
}

// NewChopListFrom creates an empty list numbering from start (minimum 1)
func NewChopListFrom(start int) *ChopList {
	if start < 1 {
		start = 1
	}
	return &ChopList{
		records: make([]ChopRecord, 0),
		next:    start,
	}
}

// NextFileName returns the output file name for the next record
func (l *ChopList) NextFileName() string {
	return ChopFileName(l.next)
}

// Append creates a record with the next sequence index and advances it
func (l *ChopList) Append(outputPath string, begin, end float64) ChopRecord {
	record := ChopRecord{
		ID:            generateChopID(),
		SequenceIndex: l.next,
		OutputPath:    outputPath,
		Begin:         begin,
		End:           end,
		CreatedAt:     time.Now(),
	}
	l.records = append(l.records, record)
	l.next++
	return record
}

// Len returns the number of exported chops
func (l *ChopList) Len() int {
	return len(l.records)
}

// At returns the record at position i
func (l *ChopList) At(i int) (ChopRecord, bool) {
	if i < 0 || i >= len(l.records) {
		return ChopRecord{}, false
	}
	return l.records[i], true
}

// TotalLength returns the summed length of all chops in seconds
func (l *ChopList) TotalLength() float64 {
	var total float64
	for _, r := range l.records {
		total += r.Length()
	}
	return total
}
