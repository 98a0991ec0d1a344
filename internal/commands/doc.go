// Package commands holds the terminal's builtin commands and the dialog
// capability used by msg and prompt.
package commands
