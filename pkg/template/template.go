package template

import (
	"context"
	"fmt"
	"strings"

	"github.com/inunix3/dshw/pkg/command"
	"github.com/inunix3/dshw/pkg/query"
)

// UnterminatedPlaceholderError reports a template with an odd number of
// percent signs, leaving the final placeholder unclosed.
type UnterminatedPlaceholderError struct {
	Position int
}

func (e *UnterminatedPlaceholderError) Error() string {
	return fmt.Sprintf("unterminated format specifier starting at offset %d", e.Position)
}

// UnsupportedForTemplateError reports a category with no addressable
// fields used in a template.
type UnsupportedForTemplateError struct {
	Category query.Category
}

func (e *UnsupportedForTemplateError) Error() string {
	return fmt.Sprintf("%s does not support format strings", e.Category)
}

// span is one %...% placeholder occurrence. start and end delimit the
// whole span including both percent signs; text is the raw content
// between them with its original case.
type span struct {
	start int
	end   int
	text  string
}

// scan walks the template with a two-state machine: a percent sign
// toggles between literal copying and placeholder collection. %% yields a
// placeholder with empty text. Ending inside a placeholder is an error.
func scan(tmpl string) ([]span, error) {
	var spans []span

	inPlaceholder := false
	start := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		if inPlaceholder {
			spans = append(spans, span{start: start, end: i + 1, text: tmpl[start+1 : i]})
			inPlaceholder = false
		} else {
			inPlaceholder = true
			start = i
		}
	}

	if inPlaceholder {
		return nil, &UnterminatedPlaceholderError{Position: start}
	}

	return spans, nil
}

// Render substitutes every %name% placeholder in tmpl with the rendered
// value of the named field, resolved against the given category through
// the already-bound executor. Each unique placeholder text is parsed and
// computed exactly once: all resolved fields go to the executor in a
// single batched Run call, so provider refresh side effects are bounded
// per formatting invocation, not per placeholder occurrence. %% renders a
// literal percent sign. Any parse or execution failure aborts with no
// output.
func Render(ctx context.Context, tmpl string, cat query.Category, ex command.Executor) (string, error) {
	if cat.Listing() {
		return "", &UnsupportedForTemplateError{Category: cat}
	}

	spans, err := scan(tmpl)
	if err != nil {
		return "", err
	}

	// Unique non-empty placeholder texts in first-occurrence order. The
	// raw text keeps its case: %Usage% and %usage% are distinct context
	// keys resolving to the same field.
	var texts []string
	seen := map[string]struct{}{}
	for _, s := range spans {
		if s.text == "" {
			continue
		}
		if _, dup := seen[s.text]; dup {
			continue
		}
		seen[s.text] = struct{}{}
		texts = append(texts, s.text)
	}

	fields := make([]query.Field, len(texts))
	for i, text := range texts {
		f, err := query.Parse(cat, text)
		if err != nil {
			return "", err
		}
		fields[i] = f
	}

	values, err := ex.Run(ctx, fields)
	if err != nil {
		return "", err
	}
	if len(values) != len(fields) {
		return "", fmt.Errorf("executor returned %d values for %d fields", len(values), len(fields))
	}

	fmtCtx := make(map[string]string, len(texts)+1)
	fmtCtx[""] = "%"
	for i, text := range texts {
		fmtCtx[text] = values[i]
	}

	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(tmpl[last:s.start])
		b.WriteString(fmtCtx[s.text])
		last = s.end
	}
	b.WriteString(tmpl[last:])

	return b.String(), nil
}
