package platform

// Package platform contains OS integration: default folders for sources and
// chops, creating the output folder, and revealing or opening exported chops
// with the system file manager or default player.
