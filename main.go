package main

import "intellecta-site/pkg/cli"

func main() {
	cli.Execute()
}
