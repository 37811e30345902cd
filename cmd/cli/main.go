package main

import (
	"github.com/relayrank/relayrank/pkg/cli"
)

func main() {
	cli.Execute()
}
