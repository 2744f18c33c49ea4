package main

// Exit codes used by all commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (bad config file, missing GIDs)
	ExitDataError   = 3 // Data error (fetch failure, validation failure)
)
