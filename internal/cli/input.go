package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	dErrors "clearview/pkg/domain-errors"
)

// readJSON decodes path ("-" for stdin) into v.
func (a *app) readJSON(path string, v any) error {
	r, closeFn, err := a.open(path)
	if err != nil {
		return err
	}
	defer closeFn()
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, fmt.Sprintf("decode %s", path))
	}
	return nil
}

// readYAML decodes a YAML file into v.
func (a *app) readYAML(path string, v any) error {
	r, closeFn, err := a.open(path)
	if err != nil {
		return err
	}
	defer closeFn()
	if err := yaml.NewDecoder(r).Decode(v); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, fmt.Sprintf("decode %s", path))
	}
	return nil
}

func (a *app) readAll(path string) (string, error) {
	r, closeFn, err := a.open(path)
	if err != nil {
		return "", err
	}
	defer closeFn()
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func (a *app) open(path string) (io.Reader, func(), error) {
	if path == "" {
		return nil, nil, usageError{fmt.Errorf("an input file is required")}
	}
	if path == "-" {
		return a.stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, usageError{err}
	}
	return f, func() { _ = f.Close() }, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
