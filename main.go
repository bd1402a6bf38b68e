package main

import "github.com/topongo/playing/cmd"

func main() {
	cmd.Execute()
}
