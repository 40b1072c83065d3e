package main

import "github.com/openswoop/fourplan/cmd"

func main() {
	cmd.Execute()
}
