package main

import (
	"os"

	"github.com/serranotex/serrano-tex-ims/internal/interfaces/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
