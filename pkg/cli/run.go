package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/inunix3/dshw/pkg/command"
	"github.com/inunix3/dshw/pkg/query"
	"github.com/inunix3/dshw/pkg/serializer"
	"github.com/inunix3/dshw/pkg/sysinfo"
	"github.com/inunix3/dshw/pkg/template"
	"github.com/inunix3/dshw/pkg/units"
)

// newProvider constructs the snapshot provider for one run. A variable so
// tests can substitute a fake.
var newProvider = func() sysinfo.Provider { return sysinfo.New() }

// runCategory is the shared action behind every category subcommand. It
// validates flags, parses field tokens, then executes the query once per
// requested run; every run acquires a fresh provider snapshot.
func runCategory(ctx context.Context, cmd *cli.Command, cat query.Category) error {
	setupLogging(cmd)

	unitToken := cmd.String("unit")
	unit, ok := units.ParseUnit(unitToken)
	if !ok {
		return fmt.Errorf("unknown data unit: %q, supported values: %v", unitToken, units.SupportedUnits())
	}

	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return fmt.Errorf("unknown output format: %q, valid formats are: text, json, yaml", format)
	}

	delimiter, err := unescapeDelimiter(cmd.String("delimiter"))
	if err != nil {
		return err
	}

	args := cmd.Args().Slice()

	var target string
	if cat.NeedsTarget() {
		if len(args) == 0 {
			return fmt.Errorf("%s requires an entity name", cat)
		}
		target = args[0]
		args = args[1:]
	}

	tmpl := cmd.String("fmt")
	useTemplate := cmd.IsSet("fmt")

	// Field tokens are ignored entirely when a format string is supplied.
	var fields []query.Field
	if !useTemplate && !cat.Listing() {
		for _, token := range args {
			f, err := query.Parse(cat, token)
			if err != nil {
				return err
			}
			fields = append(fields, f)
		}
	}

	count := cmd.Int("count")
	if count < 0 {
		return fmt.Errorf("count must not be negative")
	}
	interval := cmd.Duration("interval")

	writer := serializer.NewWriter(format, delimiter, outputWriter(cmd))

	for {
		if err := runOnce(ctx, cat, target, fields, tmpl, useTemplate, unit, writer); err != nil {
			return err
		}

		if count > 0 {
			count--
			if count == 0 {
				break
			}
		}

		if interval > 0 {
			time.Sleep(interval)
		}
	}

	return nil
}

// runOnce executes one query against a fresh snapshot.
func runOnce(
	ctx context.Context,
	cat query.Category,
	target string,
	fields []query.Field,
	tmpl string,
	useTemplate bool,
	unit units.Unit,
	writer *serializer.Writer,
) error {
	slog.Debug("executing query",
		"category", cat.String(),
		"target", target,
		"fields", len(fields),
		"template", useTemplate,
	)

	provider := newProvider()

	executor, err := command.Bind(ctx, provider, cat, target, unit)
	if err != nil {
		return err
	}

	if useTemplate {
		line, err := template.Render(ctx, tmpl, cat, executor)
		if err != nil {
			return err
		}
		return writer.WriteLine(line)
	}

	values, err := executor.Run(ctx, fields)
	if err != nil {
		return err
	}

	if cat.Listing() {
		return writer.WriteList(values)
	}

	return writer.WriteFields(fields, values)
}

// unescapeDelimiter interprets backslash escape sequences in the
// delimiter flag value.
func unescapeDelimiter(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	quoted := `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`

	unescaped, err := strconv.Unquote(quoted)
	if err != nil {
		return "", fmt.Errorf("invalid delimiter %q; are there any invalid escape sequences?", s)
	}

	return unescaped, nil
}

// outputWriter picks the stream query results go to.
func outputWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// setupLogging configures the default slog logger from the --debug and
// --log-json flags. Logs go to stderr; stdout carries query output only.
func setupLogging(cmd *cli.Command) {
	level := slog.LevelInfo
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cmd.Bool("log-json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}
