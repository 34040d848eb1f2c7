// Clearview resolves license clearing decisions from append-only event logs
// and merges agent highlight spans.
//
// Usage:
//
//	clearview resolve --events events.json         # current decision per item
//	clearview history --events events.json --item 3
//	clearview bulk --events events.json             # bulk matches by license
//	clearview flatten --spans spans.json --text file.c
//	clearview append --item 3 --user 1 --type Identified --positive 1,2
//	clearview events --items 1,2,3 | clearview resolve
//	clearview migrate
package main

import (
	"context"
	"os"
	"os/signal"

	"clearview/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
