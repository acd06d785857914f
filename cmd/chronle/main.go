package main

import (
	"github.com/chronle/chronle/internal/cli"
)

func main() {
	cli.Execute()
}
