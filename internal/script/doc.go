// Package script parses and runs edit scripts against a textedit session.
//
// A script is a list of commands, one per line or separated by ';'.
// Arguments are numbers, bare words or double-quoted Go strings.
// Comments start with '#'.
//
//	text "hello world"
//	cursor 8
//	move wordleft select
//	insert "big "   # replaces the selection
//	print
package script
