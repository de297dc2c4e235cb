package main

// Exit codes. Everything that goes wrong inside the menu loop is
// reported and recovered, so only startup failures reach ExitError.
const (
	ExitSuccess = 0 // Success, including quitting the menu
	ExitError   = 1 // Startup failure (bad arguments)
)
