package main

import (
	"os"

	"github.com/mzuhdi/tartil/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
