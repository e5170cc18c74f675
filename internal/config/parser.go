package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	stencilerrors "github.com/stencildev/stencil/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseManifest loads a manifest file from disk, validates it, resolves
// file-entry source bodies relative to the manifest directory, and returns
// the resulting model.
func ParseManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stencilerrors.NewParseError(path, 0, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, stencilerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateManifest(&m); err != nil {
		return nil, err
	}

	if err := resolveSources(&m, filepath.Dir(path)); err != nil {
		return nil, err
	}

	return &m, nil
}

// resolveSources loads external template bodies so the engine only ever sees
// resolved content.
func resolveSources(m *Manifest, baseDir string) error {
	for i := range m.Entries {
		entry := &m.Entries[i]
		if entry.File == nil || entry.File.Source == "" {
			continue
		}

		source := entry.File.Source
		if !filepath.IsAbs(source) {
			source = filepath.Join(baseDir, source)
		}

		body, err := os.ReadFile(source)
		if err != nil {
			return stencilerrors.NewValidationError(
				fieldForEntry(i, "source"),
				fmt.Sprintf("cannot read template source %q", entry.File.Source),
				err,
			)
		}
		entry.File.setBody(string(body))
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
