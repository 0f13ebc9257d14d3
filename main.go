package main

import "github.com/deploymenttheory/go-ntfslink/cmd"

func main() {
	cmd.Execute()
}
