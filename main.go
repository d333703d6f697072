package main

import "github.com/pumicestone/caldesk/cmd"

func main() {
	cmd.Execute()
}
