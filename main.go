package main

import (
	"os"

	"SysMonitor/pkg/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:], os.Stdout, os.Stderr))
}
