package main

import "github.com/snakearena/server/internal/cli"

func main() {
	cli.Execute()
}
