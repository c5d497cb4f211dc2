// colourname - names colours by their closest match in a colour list
//
// colourname converts hex colours to the nearest named colour from a
// built-in colour set or a custom palette file.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/colourname/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
