package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/fieldkit/internal/detect"
	"github.com/dkoosis/fieldkit/pkg/adapter"
	"github.com/dkoosis/fieldkit/pkg/field"
)

// readSchema loads definitions from path, or from stdin when path is
// empty or "-".
func readSchema(path string, stdin io.Reader) ([]field.Definition, detect.Kind, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		// #nosec G304 -- path is a command-line argument
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, detect.Unknown, fmt.Errorf("reading schema: %w", err)
	}
	if len(data) == 0 {
		return nil, detect.Unknown, fmt.Errorf("no schema on stdin")
	}
	return detect.Load(data)
}

// readRecord loads a JSON or YAML record. An empty path yields an empty record.
func readRecord(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{}, nil
	}
	// #nosec G304 -- path is a command-line argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading record: %w", err)
	}
	return decodeRecord(data)
}

func decodeRecord(data []byte) (map[string]any, error) {
	record := map[string]any{}
	var err error
	if adapter.SniffFormat(data) == adapter.FormatJSON {
		err = json.Unmarshal(data, &record)
	} else {
		err = yaml.Unmarshal(data, &record)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}
	if record == nil {
		record = map[string]any{}
	}
	return record, nil
}

// topLevelErrors keeps the validation messages of top-level fields.
func topLevelErrors(defs []field.Definition, problems map[string]string) map[string]string {
	out := make(map[string]string)
	for _, d := range defs {
		if msg, ok := problems[d.Key()]; ok {
			out[d.Key()] = msg
		}
	}
	return out
}
