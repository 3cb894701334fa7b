package main

import "archviz/cmd"

func main() {
	cmd.Execute()
}
