package main

import "edenlog/internal/cli"

func main() {
	cli.Execute()
}
