package main

import "os"

// main is the entry point of adpacer. Subcommands live in this package:
// serve runs the HTTP API together with the routine scheduler, run executes
// single passes, migrate manages the Postgres schema and seed loads demo
// data.
func main() {
	os.Exit(execute())
}
