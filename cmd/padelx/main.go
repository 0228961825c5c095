package main

import (
	"github.com/azzbr/padelx/internal/cli"
)

func main() {
	cli.Execute()
}
