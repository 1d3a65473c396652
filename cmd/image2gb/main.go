package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/bodgit/image2gb"
	"github.com/urfave/cli/v2"
)

const defaultDB = "image2gb.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func main() {
	app := cli.NewApp()

	app.Name = "image2gb"
	app.Usage = "Export images as Game Boy background assets for GBDK-2020"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"IMAGE2GB_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to asset catalog",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "export",
			Usage:       "Export one image as a .c/.h source pair",
			Description: "The image must be between 8x8 and 256x256 pixels, whole tiles only.",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "name",
					Usage: "asset name (C naming rules); defaults to the file name",
				},
				&cli.IntFlag{
					Name:  "bank",
					Usage: "ROM bank number, 0 for the default bank",
				},
				&cli.StringFlag{
					Name:  "output",
					Usage: "destination directory; defaults to the source directory",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := image2gb.New(c.String("db"), newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				file := c.Args().First()

				name := c.String("name")
				if name == "" {
					name = strings.Title(strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)))
				}

				dir := c.String("output")
				if dir == "" {
					dir = filepath.Dir(file)
				}

				asset := &image2gb.Asset{
					Name: name,
					Bank: c.Int("bank"),
				}

				res, err := m.ExportFile(file, asset, dir)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Printf("%s: %d unique of %d tiles (%dx%d)\n", asset.Name, res.UniqueTiles, res.TotalTiles, res.Width, res.Height)

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Export every image under a directory",
			Description: "Images whose cataloged CRC is unchanged are skipped.",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "bank",
					Usage: "ROM bank number for all exported assets",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := image2gb.New(c.String("db"), newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				if err := m.Scan(c.Args().First(), c.Int("bank")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "list",
			Usage:       "List the asset catalog",
			Description: "",
			Action: func(c *cli.Context) error {
				m, err := image2gb.New(c.String("db"), newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				records, err := m.List()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tBANK\tTILES\tSIZE\tSOURCE\tCRC")
				for _, r := range records {
					fmt.Fprintf(w, "%s\t%d\t%d/%d\t%dx%d\t%s\t%s\n", r.Name, r.Bank, r.Tiles, r.Total, r.Width, r.Height, r.Source, r.CRC)
				}
				w.Flush()

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
