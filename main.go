package main

import (
	"os"

	"github.com/tesserae/tesserae-web/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
