package main

import "inkwell/cmd"

func main() {
	cmd.Execute()
}
