package model

// Package model defines the value entities owned by a chopping session: the
// loaded audio source, the playback state snapshot, the in-progress chop mark
// and the append-only list of exported chops.
