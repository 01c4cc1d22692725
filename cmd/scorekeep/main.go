package main

import (
	"github.com/scorekeep/scorekeep/internal/cli"
)

func main() {
	cli.Execute()
}
