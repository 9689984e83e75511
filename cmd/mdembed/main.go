package main

import "github.com/roboco-io/mdembed/internal/cli"

// version is overridable at build time via -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
