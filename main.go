package main

import "github.com/bookpress/bookpress/cmd"

func main() {
	cmd.Execute()
}
