package main

import (
	"os"

	"go.dot.industries/tomlanywhere/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
