package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/inunix3/dshw/pkg/query"
)

// categoryCommand builds the subcommand for one query category.
func categoryCommand(cat query.Category, usage string) *cli.Command {
	cmd := &cli.Command{
		Name:  cat.String(),
		Usage: usage,
		Action: func(ctx context.Context, c *cli.Command) error {
			return runCategory(ctx, c, cat)
		},
	}

	switch {
	case cat.NeedsTarget():
		cmd.ArgsUsage = "NAME [QUERY...]"
	case cat.Listing():
		cmd.ArgsUsage = ""
	default:
		cmd.ArgsUsage = "[QUERY...]"
	}

	if fields := query.Fields(cat); len(fields) > 0 {
		var b strings.Builder
		b.WriteString("Available queries (case-insensitive):\n")
		for _, f := range fields {
			fmt.Fprintf(&b, "  - %s\n", f)
		}
		cmd.Description = strings.TrimRight(b.String(), "\n")
	}

	return cmd
}
