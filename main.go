package main

import "github.com/okoham/ibeam/cmd"

func main() {
	cmd.Execute()
}
