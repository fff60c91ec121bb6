// Package session holds the state of one chopping session: the loaded
// source, the playback tracker and player process, the pending begin/end
// marks and the list of exported chops. All mutations go through Session,
// which is the only user of the toolchain gateway.
package session
