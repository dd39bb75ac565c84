package main

import "github.com/dmcclean/agum/cmd"

func main() {
	cmd.Execute()
}
