package main

import "github.com/lkklausen/ironmax/internal/cli"

func main() {
	cli.Execute()
}
