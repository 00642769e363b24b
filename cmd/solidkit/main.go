package main

import "github.com/aalvaropc/solidkit/internal/cli"

func main() {
	cli.Execute()
}
