package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/inunix3/dshw/pkg/query"
	"github.com/inunix3/dshw/pkg/serializer"
	"github.com/inunix3/dshw/pkg/units"
)

// version is embedded at build time:
//
//	go build -ldflags="-X 'github.com/inunix3/dshw/pkg/cli.version=1.0.0'"
var version = "dev"

// New builds the dshw command tree.
func New() *cli.Command {
	return &cli.Command{
		Name:    "dshw",
		Usage:   "Dead simple CLI program to query information about system and hardware",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "delimiter",
				Aliases: []string{"d"},
				Value:   "\\n",
				Usage:   "delimiter separating query responses; backslash escapes (\\n, \\t, ...) are interpreted",
			},
			&cli.StringFlag{
				Name:    "fmt",
				Aliases: []string{"f"},
				Usage: "format string with %<QUERY>% specifiers replaced by actual values; " +
					"%% outputs a literal percent sign; supplied queries are ignored",
			},
			&cli.StringFlag{
				Name:    "unit",
				Aliases: []string{"u"},
				Value:   units.UnitBytes.String(),
				Usage:   fmt.Sprintf("display unit for byte-valued queries (%v)", units.SupportedUnits()),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   serializer.FormatText.String(),
				Usage:   "output format (text, json, yaml); ignored when --fmt is supplied",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   1,
				Usage:   "how many times to run the command; 0 repeats forever",
			},
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "pause between repeated runs (e.g. 500ms, 2s)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "output logs in JSON format",
			},
		},
		Commands: []*cli.Command{
			categoryCommand(query.CategoryOS, "Query operating system information"),
			categoryCommand(query.CategoryCPU, "Query a single CPU by name"),
			categoryCommand(query.CategoryMemory, "Query memory information"),
			categoryCommand(query.CategorySwap, "Query swap information"),
			categoryCommand(query.CategoryDrive, "Query a single drive by device name"),
			categoryCommand(query.CategorySensor, "Query a single temperature sensor by label"),
			categoryCommand(query.CategoryNetwork, "Query a single network interface by name"),
			categoryCommand(query.CategoryListCPUs, "List all available CPUs"),
			categoryCommand(query.CategoryListSensors, "List all available sensors"),
			categoryCommand(query.CategoryListNetworks, "List all available network interfaces"),
		},
	}
}
