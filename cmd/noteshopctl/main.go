package main

import "noteshop/internal/cli"

func main() {
	cli.Execute()
}
