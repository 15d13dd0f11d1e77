package main

import "edacli/cmd"

func main() {
	cmd.Execute()
}
