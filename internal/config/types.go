package config

import (
	"io/fs"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest represents a full stencil manifest document.
type Manifest struct {
	Version     string            `yaml:"version" validate:"required,semver"`
	Name        string            `yaml:"name" validate:"required,min=1,max=100"`
	Description string            `yaml:"description,omitempty"`
	Settings    Settings          `yaml:"settings,omitempty"`
	Vars        map[string]string `yaml:"vars,omitempty" validate:"omitempty,dive,keys,var_name,endkeys"`
	Entries     []Entry           `yaml:"entries" validate:"required,min=1,dive"`
}

// Settings holds optional post-scaffold behavior.
type Settings struct {
	GitInit bool `yaml:"git_init,omitempty"`
}

// Entry describes one target path in the manifest. Exactly one of the
// type-specific structures is populated, selected by Type.
type Entry struct {
	Path string `yaml:"path" validate:"required"`
	Type string `yaml:"type" validate:"required,oneof=directory file"`

	Directory *DirectoryEntry `yaml:",inline,omitempty"`
	File      *FileEntry      `yaml:",inline,omitempty"`
}

// UnmarshalYAML customises entry decoding to populate type-specific
// structures without conflicts.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	type baseEntry struct {
		Path string `yaml:"path"`
		Type string `yaml:"type"`
	}

	var base baseEntry
	if err := value.Decode(&base); err != nil {
		return err
	}

	e.Path = base.Path
	e.Type = base.Type
	e.Directory = nil
	e.File = nil

	switch base.Type {
	case "directory":
		var dir DirectoryEntry
		if err := value.Decode(&dir); err != nil {
			return err
		}
		e.Directory = &dir
	case "file":
		var file FileEntry
		if err := value.Decode(&file); err != nil {
			return err
		}
		e.File = &file
	}

	return nil
}

// DirectoryEntry materializes a directory.
type DirectoryEntry struct {
	Mode string `yaml:"mode,omitempty" validate:"omitempty,file_mode"`
}

// FileEntry materializes a rendered template file. The body comes from either
// Content (inline) or Source (a file resolved relative to the manifest);
// exactly one must be set.
type FileEntry struct {
	Content    string `yaml:"content,omitempty"`
	ContentSet bool   `yaml:"-"`
	Source     string `yaml:"source,omitempty"`
	Mode       string `yaml:"mode,omitempty" validate:"omitempty,file_mode"`
	Encoding   string `yaml:"encoding,omitempty" validate:"omitempty,encoding_name"`

	// body holds the resolved template text after parsing.
	body    string
	bodySet bool
}

// UnmarshalYAML records whether content was present so an explicit empty
// body (e.g. an __init__.py) is distinguishable from an omitted one.
func (f *FileEntry) UnmarshalYAML(value *yaml.Node) error {
	type rawFile FileEntry
	var temp rawFile
	if err := value.Decode(&temp); err != nil {
		return err
	}
	*f = FileEntry(temp)
	f.ContentSet = hasYAMLKey(value, "content")
	return nil
}

func hasYAMLKey(node *yaml.Node, key string) bool {
	if node == nil || node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i < len(node.Content); i += 2 {
		k := node.Content[i]
		if strings.EqualFold(k.Value, key) {
			return true
		}
	}
	return false
}

// Body returns the resolved template text.
func (f *FileEntry) Body() string {
	if f == nil {
		return ""
	}
	if f.bodySet {
		return f.body
	}
	return f.Content
}

func (f *FileEntry) setBody(body string) {
	f.body = body
	f.bodySet = true
}

// FileMode parses an octal mode string ("0644") with a fallback default.
func FileMode(mode string, fallback fs.FileMode) (fs.FileMode, error) {
	if mode == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseUint(mode, 8, 32)
	if err != nil {
		return 0, err
	}
	return fs.FileMode(parsed), nil
}

// FileMode returns the effective file mode for the entry (default 0644).
func (f *FileEntry) FileMode() (fs.FileMode, error) {
	if f == nil {
		return 0o644, nil
	}
	return FileMode(f.Mode, 0o644)
}

// FileMode returns the effective directory mode for the entry (default 0755).
func (d *DirectoryEntry) FileMode() (fs.FileMode, error) {
	if d == nil {
		return 0o755, nil
	}
	return FileMode(d.Mode, 0o755)
}
