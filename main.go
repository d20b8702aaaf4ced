package main

import "edotone/cmd"

func main() {
	cmd.Execute()
}
