package vfsio

import (
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/rwx-research/vsh/internal/errors"
)

type yamlDocument struct {
	Version string     `yaml:"version,omitempty"`
	Root    *yamlEntry `yaml:"root"`
}

type yamlEntry struct {
	Type        string      `yaml:"type"`
	Name        string      `yaml:"name,omitempty"`
	Permissions string      `yaml:"permissions,omitempty"`
	Owner       string      `yaml:"owner,omitempty"`
	Group       string      `yaml:"group,omitempty"`
	Encoding    string      `yaml:"encoding,omitempty"`
	Content     yamlContent `yaml:"content,omitempty"`
	Children    []yamlEntry `yaml:"children,omitempty"`
}

// yamlContent is always written as a double-quoted scalar. Block scalars can't carry
// leading indentation on the first line or whitespace-only trailing lines.
type yamlContent string

func (c yamlContent) MarshalYAML() ([]byte, error) {
	return []byte(strconv.Quote(string(c))), nil
}

// YAML reads and writes documents with a top-level `root` entry.
type YAML struct{}

func (YAML) Decode(data []byte) (Document, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Wrapf(errors.ErrUnsupportedFormat, "unable to parse YAML: %s", yaml.FormatError(err, false, true))
	}

	if doc.Root == nil {
		return Document{}, errors.Wrap(errors.ErrUnsupportedFormat, "missing root entry")
	}

	return Document{
		Version: doc.Version,
		Entries: fromYAMLEntries([]yamlEntry{*doc.Root}),
	}, nil
}

func (YAML) Encode(doc Document) ([]byte, error) {
	out := yamlDocument{Version: doc.Version}

	switch len(doc.Entries) {
	case 0:
		out.Root = &yamlEntry{Type: string(KindDirectory), Name: "/"}
	case 1:
		out.Root = &toYAMLEntries(doc.Entries)[0]
	default:
		out.Root = &yamlEntry{Type: string(KindDirectory), Name: "/", Children: toYAMLEntries(doc.Entries)}
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode YAML")
	}
	return data, nil
}

func fromYAMLEntries(entries []yamlEntry) []Entry {
	converted := make([]Entry, 0, len(entries))
	for _, e := range entries {
		converted = append(converted, Entry{
			Kind:        Kind(e.Type),
			Name:        e.Name,
			Permissions: e.Permissions,
			Owner:       e.Owner,
			Group:       e.Group,
			Encoding:    e.Encoding,
			Content:     string(e.Content),
			Children:    fromYAMLEntries(e.Children),
		})
	}
	return converted
}

func toYAMLEntries(entries []Entry) []yamlEntry {
	if len(entries) == 0 {
		return nil
	}

	converted := make([]yamlEntry, 0, len(entries))
	for _, e := range entries {
		converted = append(converted, yamlEntry{
			Type:        string(e.Kind),
			Name:        e.Name,
			Permissions: e.Permissions,
			Owner:       e.Owner,
			Group:       e.Group,
			Encoding:    e.Encoding,
			Content:     yamlContent(e.Content),
			Children:    toYAMLEntries(e.Children),
		})
	}
	return converted
}
