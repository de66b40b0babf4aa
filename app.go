package main

import "github.com/telemetrics/gitingest/cmd"

func main() {
	cmd.Run()
}
