// Package system reads and writes the desktop clipboard through the
// wl-clipboard or xclip command-line tools, which are the only way to see
// every MIME type a Linux clipboard owner advertises.
package system
