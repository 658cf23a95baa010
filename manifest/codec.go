// SPDX-License-Identifier: EPL-2.0

package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

// Format is a manifest document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// zstdSuffix marks a compressed manifest file.
const zstdSuffix = ".zst"

// FormatFor picks the encoding from a file name. A trailing ".zst" means the
// document is zstd-compressed; the extension before it selects JSON or YAML.
// Unknown extensions fall back to JSON.
func FormatFor(path string) (Format, bool) {
	name := strings.ToLower(path)

	compressed := strings.HasSuffix(name, zstdSuffix)
	name = strings.TrimSuffix(name, zstdSuffix)

	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return FormatYAML, compressed
	default:
		return FormatJSON, compressed
	}
}

// Marshal encodes m. JSON output is indented.
func (m *Manifest) Marshal(f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding manifest json: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("encoding manifest yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// Unmarshal decodes a manifest document. The stored hash is kept as read;
// call Verify to check it.
func Unmarshal(data []byte, f Format) (*Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	m := &Manifest{}

	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, m); err != nil {
			return nil, fmt.Errorf("decoding manifest json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, m); err != nil {
			return nil, fmt.Errorf("decoding manifest yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}

	return m, nil
}

// document mirrors Manifest with every field optional so that a missing
// field can be told apart from a zero value.
type document struct {
	Aggregate *uint32          `json:"aggregate_hash" yaml:"aggregate_hash"`
	Legacy    *uint32          `json:"hash"           yaml:"hash"`
	Entries   *[]entryDocument `json:"entries"        yaml:"entries"`
}

type entryDocument struct {
	Path *string `json:"path" yaml:"path"`
	Size *uint64 `json:"size" yaml:"size"`
	Name *string `json:"name" yaml:"name"`
	Hash *uint32 `json:"hash" yaml:"hash"`
}

// manifest checks that every required field was present. The aggregate
// may be stored under "aggregate_hash" or the older "hash" key.
func (d *document) manifest() (Manifest, error) {
	if d.Entries == nil {
		return Manifest{}, fmt.Errorf("%w: missing entries", ErrMalformedDocument)
	}

	var m Manifest
	switch {
	case d.Aggregate != nil:
		m.Hash = *d.Aggregate
	case d.Legacy != nil:
		m.Hash = *d.Legacy
	default:
		return Manifest{}, fmt.Errorf("%w: missing aggregate_hash", ErrMalformedDocument)
	}

	m.Entries = make([]Entry, 0, len(*d.Entries))
	for i, e := range *d.Entries {
		if e.Path == nil || *e.Path == "" {
			return Manifest{}, fmt.Errorf("%w: entry %d: %w", ErrMalformedDocument, i, ErrMalformedEntry)
		}
		if e.Size == nil || e.Name == nil || e.Hash == nil {
			return Manifest{}, fmt.Errorf("%w: entry %d (%s): missing size, name or hash", ErrMalformedDocument, i, *e.Path)
		}

		m.Entries = append(m.Entries, Entry{Path: *e.Path, Size: *e.Size, Name: *e.Name, Hash: *e.Hash})
	}

	return m, nil
}

func (m *Manifest) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	out, err := doc.manifest()
	if err != nil {
		return err
	}

	*m = out
	return nil
}

func (m *Manifest) UnmarshalYAML(value *yaml.Node) error {
	var doc document
	if err := value.Decode(&doc); err != nil {
		return err
	}

	out, err := doc.manifest()
	if err != nil {
		return err
	}

	*m = out
	return nil
}

// Encode writes m to w, compressing with zstd when compressed is set.
func (m *Manifest) Encode(w io.Writer, f Format, compressed bool) error {
	data, err := m.Marshal(f)
	if err != nil {
		return err
	}

	if compressed {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		data = enc.EncodeAll(data, nil)
		enc.Close()
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	return nil
}

// Decode reads a whole manifest document from r.
func Decode(r io.Reader, f Format, compressed bool) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	if compressed {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer dec.Close()

		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("decompressing manifest: %w", err)
		}
	}

	return Unmarshal(data, f)
}

// FromFile loads the manifest at path, choosing the encoding with FormatFor.
func FromFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	format, compressed := FormatFor(path)

	m, err := Decode(f, format, compressed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Save writes m to path, choosing the encoding with FormatFor. The file is
// created or truncated.
func (m *Manifest) Save(path string) error {
	format, compressed := FormatFor(path)

	var buf bytes.Buffer
	if err := m.Encode(&buf, format, compressed); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("saving manifest: %w", err)
	}

	return nil
}
