package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/10gen/string-factory/internal/logger"
	"github.com/10gen/string-factory/internal/script"
	"github.com/10gen/string-factory/mstrings"
	"github.com/10gen/string-factory/msync"
	"github.com/10gen/string-factory/option"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/samber/lo"
	"github.com/urfave/cli"
	"github.com/urfave/cli/altsrc"
)

const (
	logPath        = "logPath"
	debugFlag      = "debug"
	configFileFlag = "configFile"

	fromFlag = "from"
	allFlag  = "all"
	jsonFlag = "json"
)

func main() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Stack().Msg("Fatal Error")
	}
}

func newApp() *cli.App {
	var appLogger *logger.Logger

	flags := []cli.Flag{
		altsrc.NewStringFlag(cli.StringFlag{
			Name:  configFileFlag,
			Usage: "path to an optional YAML config file",
		}),
		altsrc.NewStringFlag(cli.StringFlag{
			Name:  logPath,
			Value: "stderr",
			Usage: "logging `destination`: stdout, stderr, or a directory for a rotating log file",
		}),
		altsrc.NewBoolFlag(cli.BoolFlag{
			Name:  debugFlag,
			Usage: "Turn on debug logging",
		}),
	}

	fromTextFlag := cli.StringFlag{
		Name:  fromFlag,
		Usage: "initial `text`",
	}

	app := cli.NewApp()
	app.Name = "string-factory"
	app.Usage = "build and inspect strings"
	app.Flags = flags
	app.Before = func(cCtx *cli.Context) error {
		confFile := cCtx.String(configFileFlag)

		if len(confFile) > 0 {
			readConfFunc := altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc(configFileFlag))
			if err := readConfFunc(cCtx); err != nil {
				return errors.Wrapf(err, "failed to read config file %#q", confFile)
			}
		}

		level := zerolog.InfoLevel
		if cCtx.Bool(debugFlag) {
			level = zerolog.DebugLevel
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}

		var err error
		appLogger, err = logger.NewFromPath(cCtx.String(logPath), level)

		return err
	}
	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "apply operations to the initial text and print the result",
			ArgsUsage: "OPERATION...  (append=V appendDebug=V prepend=V prependDebug=V replace=F:T)",
			Flags:     []cli.Flag{fromTextFlag},
			Action: func(cCtx *cli.Context) error {
				ops, err := script.Parse(cCtx.Args())
				if err != nil {
					return err
				}

				guard := msync.NewDataGuard(mstrings.FactoryFromString(cCtx.String(fromFlag)))
				script.Apply(appLogger, guard, ops)

				guard.Load(func(f *mstrings.Factory) {
					_, err = fmt.Fprintln(cCtx.App.Writer, f)
				})

				return err
			},
		},
		{
			Name:      "index",
			Usage:     "print the first (or every) index of a character",
			ArgsUsage: "CHARACTER",
			Flags: []cli.Flag{
				fromTextFlag,
				cli.BoolFlag{
					Name:  allFlag,
					Usage: "print every index rather than only the first",
				},
				cli.BoolFlag{
					Name:  jsonFlag,
					Usage: "print a JSON document (a missing index is null)",
				},
			},
			Action: func(cCtx *cli.Context) error {
				if cCtx.NArg() != 1 {
					return errors.Errorf("expected 1 character argument, not %d", cCtx.NArg())
				}

				target, err := script.ParseRune(cCtx.Args().First())
				if err != nil {
					return err
				}

				factory := mstrings.FactoryFromString(cCtx.String(fromFlag))

				return printIndexes(cCtx.App.Writer, factory, target, cCtx.Bool(allFlag), cCtx.Bool(jsonFlag))
			},
		},
		{
			Name:  "chars",
			Usage: "print a table of the text’s characters",
			Flags: []cli.Flag{fromTextFlag},
			Action: func(cCtx *cli.Context) error {
				factory := mstrings.FactoryFromString(cCtx.String(fromFlag))

				appLogger.Debug().
					Object("factory", factory).
					Msg("Listing characters.")

				printChars(cCtx.App.Writer, factory)
				return nil
			},
		},
	}

	return app
}

func printIndexes(w io.Writer, factory *mstrings.Factory, target rune, all bool, asJSON bool) error {
	if asJSON {
		var doc any
		if all {
			doc = map[string][]int{"indexes": factory.IndexesOf(target)}
		} else {
			doc = map[string]option.Option[int]{"index": factory.IndexOf(target)}
		}

		return errors.Wrap(json.NewEncoder(w).Encode(doc), "failed to write JSON")
	}

	var out string

	if all {
		out = option.IfNotZero(
			strings.Join(lo.Map(factory.IndexesOf(target), func(idx int, _ int) string { return strconv.Itoa(idx) }), " "),
		).OrElse("none")
	} else {
		out = option.Map(factory.IndexOf(target), strconv.Itoa).OrElse("none")
	}

	_, err := fmt.Fprintln(w, out)
	return err
}

func printChars(w io.Writer, factory *mstrings.Factory) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Index", "Character", "Code Point"})

	idx := 0
	for c := range factory.Chars() {
		table.Append([]string{
			strconv.Itoa(idx),
			strconv.QuoteRune(c),
			fmt.Sprintf("U+%04X", c),
		})
		idx++
	}

	table.Render()
}
