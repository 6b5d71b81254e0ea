package cmd

import (
	"fmt"

	"github.com/cloudwego/hertz/cmd/hz/util/logs"
	"github.com/dronhome/TP-final/cmd/tui"
	"github.com/dronhome/TP-final/config"
	"github.com/dronhome/TP-final/meta"
	"github.com/urfave/cli/v2"
)

var globalArgs = config.NewArgument()

func Init() *cli.App {
	// flags
	verboseFlag := cli.BoolFlag{Name: "verbose", Aliases: []string{"vv"}, Usage: "turn on verbose mode", Destination: &globalArgs.Verbose}
	baseURLFlag := cli.StringFlag{Name: "base_url", Usage: "Specify the translator base URL.", EnvVars: []string{meta.EnvBaseURL}, Destination: &globalArgs.BaseURL, Value: meta.DefaultDomain, Required: false}
	fpsFlag := cli.StringFlag{Name: "fps", Usage: "Frames per second sampled from a video.", Destination: &globalArgs.Fps, Value: meta.DefaultFps}
	secondsFlag := cli.StringFlag{Name: "seconds", Usage: "Seconds of video to process (-1 = whole video).", Destination: &globalArgs.Seconds, Value: meta.DefaultSeconds}
	configFlag := cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Path to a YAML config file.", Destination: &globalArgs.FilePath}

	app := cli.NewApp()
	app.Name = meta.Name
	app.Usage = meta.Description
	app.Version = meta.Version
	cli.VersionPrinter = func(cCtx *cli.Context) {
		fmt.Printf("Version: %s\nRevision: %s\nBuild At: %s\n", cCtx.App.Version, meta.Commit, meta.BuildDate)
	}

	// global flags
	app.Flags = []cli.Flag{
		&verboseFlag,
		&baseURLFlag,
		&configFlag,
	}

	// no arguments: open the interactive picker
	app.Action = func(c *cli.Context) error {
		setLogVerbose(globalArgs.Verbose)
		if err := globalArgs.Resolve(); err != nil {
			return cli.Exit(err, meta.LoadError)
		}
		return tui.Main(c, globalArgs)
	}

	// Commands
	app.Commands = []*cli.Command{
		{
			Name:      meta.CmdSubmit,
			Usage:     "Submit an image or video to the pose translator",
			ArgsUsage: "<file>",
			Flags: []cli.Flag{
				&fpsFlag,
				&secondsFlag,
			},
			Action: Submit,
		},
		{
			Name:   meta.CmdPing,
			Usage:  "Check that the translator service answers",
			Flags:  []cli.Flag{},
			Action: Ping,
		},
	}

	return app
}

func setLogVerbose(verbose bool) {
	if verbose {
		logs.SetLevel(logs.LevelDebug)
	} else {
		logs.SetLevel(logs.LevelWarn)
	}
}
