package render

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/disksort/pkg/errors"
	"github.com/matzehuels/disksort/pkg/sorting"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// Formats returns every supported format in a stable order.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatDOT, FormatSVG}
}

// ContentType returns the MIME type for format.
func ContentType(format string) string {
	switch format {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatDOT:
		return "text/vnd.graphviz"
	case FormatSVG:
		return "image/svg+xml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Render produces run in the given format.
func Render(ctx context.Context, format string, run sorting.Run) ([]byte, error) {
	if err := errors.ValidateFormat(format, Formats()); err != nil {
		return nil, err
	}

	switch format {
	case FormatText:
		return Text(run), nil
	case FormatJSON:
		return JSON(run)
	case FormatYAML:
		return YAML(run)
	case FormatDOT:
		return []byte(ToDOT(run)), nil
	default:
		return RenderSVG(ctx, ToDOT(run))
	}
}

// JSON encodes run as indented JSON with a trailing newline.
func JSON(run sorting.Run) ([]byte, error) {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(data, '\n'), nil
}

// YAML encodes run as YAML.
func YAML(run sorting.Run) ([]byte, error) {
	data, err := yaml.Marshal(run)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return data, nil
}
