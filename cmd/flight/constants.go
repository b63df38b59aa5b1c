package main

// Default limits for CLI commands.
const (
	DefaultAuditLimit = 20
	MaxAuditLimit     = 1000
)

// REPL commands that end a chat session.
var exitCommands = []string{"exit", "quit", "/exit", "/quit"}
