package main

import "github.com/oshokin/alarm-naming/cmd/alarm-naming/cmd"

func main() {
	cmd.Execute()
}
