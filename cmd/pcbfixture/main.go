package main

import "github.com/OpenTraceLab/pcbfixture/cmd/pcbfixture/cmd"

func main() {
	cmd.Execute()
}
