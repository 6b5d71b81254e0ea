package cmd

import (
	"fmt"
	"os"

	"github.com/cloudwego/hertz/cmd/hz/util/logs"
	"github.com/dronhome/TP-final/lib"
	"github.com/dronhome/TP-final/meta"
	"github.com/urfave/cli/v2"
)

func Submit(c *cli.Context) error {
	setLogVerbose(globalArgs.Verbose)
	if err := globalArgs.Resolve(); err != nil {
		return cli.Exit(err, meta.LoadError)
	}
	logs.Debugf("args: %#v\n", globalArgs)

	path := c.Args().First()
	if path == "" {
		return cli.Exit(fmt.Errorf("a file argument is required, e.g. %s %s wave.png", meta.Name, meta.CmdSubmit), meta.LoadError)
	}
	if err := lib.ValidatePath(path); err != nil {
		return cli.Exit(err, meta.LoadError)
	}

	client := lib.NewClient(globalArgs.BaseURL)
	workflow := lib.NewWorkflow(client,
		lib.WithSampling(globalArgs.Fps, globalArgs.Seconds),
		lib.WithProgress(createUploadProgressCallback(path)),
	)
	defer workflow.Close()

	if err := workflow.Select(path); err != nil {
		return cli.Exit(err, meta.LoadError)
	}

	file := workflow.Selected()
	fmt.Fprintf(os.Stdout, "Submitting %s (%s, %s)\n", file.Name, lib.FormatSize(file.Size), file.MediaType)

	status := workflow.Submit(c.Context)
	fmt.Fprintln(os.Stdout) // end the progress line

	if status.IsError() {
		return cli.Exit(fmt.Errorf("%s", status.Message), meta.ServerError)
	}

	fmt.Fprintln(os.Stdout, status.Message)
	if result := workflow.Result(); result != nil {
		fmt.Fprintln(os.Stdout)
		fmt.Fprint(os.Stdout, result.Summary())
	}
	return nil
}
