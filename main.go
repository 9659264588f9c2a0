package main

import (
	"os"

	"go.withmatt.com/bucket/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
