package main

import "github.com/tidwall/geodesy/internal/cli"

func main() {
	cli.Execute()
}
