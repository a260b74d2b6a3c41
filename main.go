package main

import "github.com/viant/kdindex/cmd"

func main() {
	cmd.Execute()
}
