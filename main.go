package main

import "github.com/ytget/wav-chopper/internal/cli"

func main() {
	cli.Main()
}
