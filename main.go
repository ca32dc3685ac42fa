package main

import "roomctl/cmd"

func main() {
	cmd.Execute()
}
