package main

import "github.com/mcoot/reversigame/internal/cli"

func main() {
	cli.Execute()
}
