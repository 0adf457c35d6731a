package main

import "github.com/deploymenttheory/go-forwardlist/cmd"

func main() {
	cmd.Execute()
}
