package main

import (
	"os"

	"github.com/e30n3/freon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
