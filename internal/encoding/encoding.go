// Package encoding resolves the named output encodings a manifest file entry
// may declare. The default is UTF-8 without a byte order mark.
package encoding

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Default is the encoding applied when a file entry declares none.
const Default = "utf-8"

var registry = map[string]encoding.Encoding{
	"utf-8":     unicode.UTF8,
	"utf-8-bom": unicode.UTF8BOM,
	"utf-16le":  unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16be":  unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"latin-1":   charmap.ISO8859_1,
}

// Names returns the supported encoding names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supported reports whether name resolves to a known encoding. The empty
// name means Default.
func Supported(name string) bool {
	if name == "" {
		return true
	}
	_, ok := registry[strings.ToLower(name)]
	return ok
}

// Encode converts rendered UTF-8 content into the named encoding.
func Encode(name, content string) ([]byte, error) {
	if name == "" {
		name = Default
	}
	enc, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown encoding %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	// ReplaceUnsupported keeps narrow encodings total: runes outside the
	// target repertoire become substitution bytes instead of failing the run.
	out, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("encode as %s: %w", name, err)
	}
	return out, nil
}
