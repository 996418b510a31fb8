package main

import "github.com/aalvaropc/primer/internal/cli"

func main() {
	cli.Execute()
}
