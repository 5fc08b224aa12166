package main

import (
	"fmt"
	"os"
	"time"

	"github.com/provisor/provisor/internal/config"
	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/provisord"
	"github.com/provisor/provisor/internal/util"

	"github.com/AlecAivazis/survey/v2"
	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
)

var log = util.GetLogger("provisord")

func main() {

	app := cli.NewApp()
	app.Name = "provisord"
	app.Usage = "Multi-strategy application install orchestrator"
	version, err := semver.NewVersion("0.1.0-dev.1")
	if err != nil {
		panic(err)
	}
	app.Version = version.String()

	var configFile string
	var loglevel string
	var cfg *config.Config

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Value:       "provisor.yaml",
			Usage:       "Specify a config file",
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:        "loglevel",
			Value:       "info",
			Usage:       "Specify log level: debug, info, warn, error",
			Destination: &loglevel,
		},
	}

	app.Before = func(c *cli.Context) error {
		level, err := logrus.ParseLevel(loglevel)
		if err != nil {
			return err
		}
		util.SetLogLevel(level)
		cfg, err = config.Load(configFile, version)
		return err
	}

	app.Commands = []*cli.Command{
		{
			Name:      "install",
			Usage:     "Install one or more applications from the catalog",
			ArgsUsage: "<app-id>...",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "parallel", Usage: "Install independent applications concurrently"},
				&cli.IntFlag{Name: "workers", Usage: "Maximum concurrent installs", Value: 0},
				&cli.BoolFlag{Name: "yes", Usage: "Skip the confirmation prompt"},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return errors.New("At least one application id is required")
				}
				if c.Bool("parallel") {
					cfg.Parallel = true
				}
				if c.Int("workers") > 0 {
					cfg.MaxWorkers = c.Int("workers")
				}
				return installCmd(cfg, c.Args().Slice(), c.Bool("yes"))
			},
		},
		{
			Name:      "verify",
			Usage:     "Verify that applications are actually installed",
			ArgsUsage: "<app-id>...",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "method", Usage: "Hint the method used to install"},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return errors.New("At least one application id is required")
				}
				return verifyCmd(cfg, c.Args().Slice(), c.String("method"))
			},
		},
		{
			Name:  "apps",
			Usage: "List the applications available in the catalog",
			Action: func(c *cli.Context) error {
				return appsCmd(cfg)
			},
		},
		{
			Name:  "daemon",
			Usage: "Run the status API daemon",
			Action: func(c *cli.Context) error {
				p, err := provisord.Setup(cfg, nil)
				if err != nil {
					return err
				}
				return p.StartUp()
			},
		},
	}

	err = app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func installCmd(cfg *config.Config, ids []string, skipConfirm bool) error {
	if skipConfirm == false {
		confirmed := false
		prompt := &survey.Confirm{Message: fmt.Sprintf("Install %d application(s)?", len(ids)), Default: true}
		err := survey.AskOne(prompt, &confirmed)
		if err != nil {
			return err
		}
		if confirmed == false {
			return nil
		}
	}

	var sink core.ProgressSink
	if cfg.Parallel {
		sink = newLogSink()
	} else {
		sink = newBarSink()
	}

	p, err := provisord.Setup(cfg, sink)
	if err != nil {
		return err
	}

	results, err := p.InstallAll(ids)
	if err != nil {
		return err
	}

	failed := 0
	it := results.Iterator()
	for it.Next() {
		result := it.Value().(core.InstallResult)
		if result.Success {
			log.Infof("%s: installed via %s in %s (%d attempt(s))", result.AppID, result.Method, result.Elapsed.Round(time.Second), result.Attempts)
		} else {
			failed++
			log.Errorf("%s: %s", result.AppID, result.Error)
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d install(s) failed", failed, results.Size())
	}
	return nil
}

func verifyCmd(cfg *config.Config, ids []string, method string) error {
	p, err := provisord.Setup(cfg, nil)
	if err != nil {
		return err
	}

	unverified := 0
	for _, id := range ids {
		result := p.Verifier.Verify(id, method)
		if result.Installed {
			details := result.Source
			if result.Version != "" {
				details = details + ", version " + result.Version
			}
			if result.InstallPath != "" {
				details = details + ", at " + result.InstallPath
			}
			log.Infof("%s: installed (%s)", id, details)
		} else {
			unverified++
			log.Warnf("%s: not installed (%s)", id, result.Message)
		}
	}
	if unverified > 0 {
		return errors.Errorf("%d of %d application(s) could not be verified", unverified, len(ids))
	}
	return nil
}

func appsCmd(cfg *config.Config) error {
	p, err := provisord.Setup(cfg, nil)
	if err != nil {
		return err
	}
	for _, app := range p.Catalog.GetAll() {
		methods := []string{}
		for _, method := range core.MethodPriority {
			if app.Identifier(method) != "" {
				methods = append(methods, method)
			}
		}
		fmt.Printf("%-20s %-30s %-15s %v\n", app.ID, app.Name, app.Category, methods)
	}
	return nil
}
