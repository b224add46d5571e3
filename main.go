package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/lifelab/toruslife/pattern"
	"github.com/lifelab/toruslife/utils"
)

func main() {
	// Load configuration - fallback to defaults only if the file does
	// not exist; a malformed or invalid file is a real error
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
			os.Exit(1)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	// A pattern name on the command line overrides the config file
	if len(os.Args) > 1 {
		config.Pattern = os.Args[1]
	}

	p, err := pattern.Parse(config.Pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unknown pattern: %s\n", config.Pattern)
		fmt.Fprintf(os.Stderr, "Usage: %s <blinker|toad|beacon|random|test>\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(config, p); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
