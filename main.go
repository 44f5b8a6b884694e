package main

import "codelens/src/handler/cli"

func main() {
	cli.Run()
}
