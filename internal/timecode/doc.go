package timecode

// Package timecode converts between seconds and the fixed-width hh:mm:ss:cc
// strings shown in the chop controls. Formatting is total; parsing is strict
// and reports a typed ParseError describing why the text was rejected.
