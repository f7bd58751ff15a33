package main

import "github.com/GAMOps/gamops/cmd"

func main() {
	cmd.Execute()
}
