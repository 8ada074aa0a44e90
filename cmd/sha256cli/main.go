package main

import "massnet.org/sha256/cmd/sha256cli/cmd"

func main() {
	cmd.Execute()
}
