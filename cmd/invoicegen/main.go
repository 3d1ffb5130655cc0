package main

import "invoicegen/internal/adapters/cli"

func main() {
	cli.Execute()
}
