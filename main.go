package main

import "github.com/notargets/gomorph/cmd"

func main() {
	cmd.Execute()
}
