package main

import "github.com/compliport/compliport/cmd"

func main() {
	cmd.Execute()
}
