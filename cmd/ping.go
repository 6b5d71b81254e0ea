package cmd

import (
	"fmt"
	"os"

	"github.com/dronhome/TP-final/lib"
	"github.com/dronhome/TP-final/meta"
	"github.com/urfave/cli/v2"
)

func Ping(c *cli.Context) error {
	setLogVerbose(globalArgs.Verbose)
	if err := globalArgs.Resolve(); err != nil {
		return cli.Exit(err, meta.LoadError)
	}

	client := lib.NewClient(globalArgs.BaseURL)
	if err := client.Ping(c.Context); err != nil {
		return cli.Exit(fmt.Errorf("translator not reachable at %s: %v", globalArgs.BaseURL, err), meta.HttpError)
	}

	fmt.Fprintf(os.Stdout, "Translator answering at %s\n", globalArgs.BaseURL)
	return nil
}
