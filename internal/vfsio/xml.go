package vfsio

import (
	"bytes"
	"encoding/xml"

	"github.com/rwx-research/vsh/internal/errors"
)

type xmlDocument struct {
	XMLName xml.Name   `xml:"filesystem"`
	Version string     `xml:"version,attr,omitempty"`
	Entries []xmlEntry `xml:",any"`
}

type xmlEntry struct {
	XMLName     xml.Name
	Name        string      `xml:"name,attr,omitempty"`
	Permissions string      `xml:"permissions,attr,omitempty"`
	Owner       string      `xml:"owner,attr,omitempty"`
	Group       string      `xml:"group,attr,omitempty"`
	Content     *xmlContent `xml:"content"`
	Children    []xmlEntry  `xml:",any"`
}

type xmlContent struct {
	Encoding string `xml:"encoding,attr,omitempty"`
	Text     string `xml:",cdata"`
}

// XML reads and writes documents rooted at a <filesystem> element.
type XML struct{}

func (XML) Decode(data []byte) (Document, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Wrapf(errors.ErrUnsupportedFormat, "unable to parse XML: %s", err)
	}

	return Document{
		Version: doc.Version,
		Entries: fromXMLEntries(doc.Entries),
	}, nil
}

func (XML) Encode(doc Document) ([]byte, error) {
	out, err := xml.MarshalIndent(xmlDocument{
		Version: doc.Version,
		Entries: toXMLEntries(doc.Entries),
	}, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode XML")
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(out)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func fromXMLEntries(entries []xmlEntry) []Entry {
	converted := make([]Entry, 0, len(entries))
	for _, e := range entries {
		entry := Entry{
			Kind:        Kind(e.XMLName.Local),
			Name:        e.Name,
			Permissions: e.Permissions,
			Owner:       e.Owner,
			Group:       e.Group,
			Children:    fromXMLEntries(e.Children),
		}
		if e.Content != nil {
			entry.Encoding = e.Content.Encoding
			entry.Content = e.Content.Text
		}
		converted = append(converted, entry)
	}
	return converted
}

func toXMLEntries(entries []Entry) []xmlEntry {
	if len(entries) == 0 {
		return nil
	}

	converted := make([]xmlEntry, 0, len(entries))
	for _, e := range entries {
		entry := xmlEntry{
			XMLName:     xml.Name{Local: string(e.Kind)},
			Name:        e.Name,
			Permissions: e.Permissions,
			Owner:       e.Owner,
			Group:       e.Group,
			Children:    toXMLEntries(e.Children),
		}
		if e.Content != "" {
			entry.Content = &xmlContent{Encoding: e.Encoding, Text: e.Content}
		}
		converted = append(converted, entry)
	}
	return converted
}
