package main

import "github.com/jsphweid/ringdex/cmd"

func main() {
	cmd.Execute()
}
