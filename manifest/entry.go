// SPDX-License-Identifier: EPL-2.0

package manifest

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// DefaultHashBufferSize is the read buffer used when hashing file contents.
const DefaultHashBufferSize = 4096

// Entry records where one sample came from.
type Entry struct {
	Path string `json:"path" yaml:"path"`
	// Size is the stored sample count when built from a pool, or the file
	// length in bytes for entries made by NewEntry.
	Size uint64 `json:"size" yaml:"size"`
	Name string `json:"name" yaml:"name"`
	// Hash is the CRC-32 (IEEE) of the raw file bytes.
	Hash uint32 `json:"hash" yaml:"hash"`
}

// HashReader streams r through CRC-32 using buf as the read buffer and
// returns the checksum and the number of bytes consumed.
func HashReader(r io.Reader, buf []byte) (uint32, int64, error) {
	if len(buf) == 0 {
		return 0, 0, ErrEmptyHashBuf
	}

	h := crc32.NewIEEE()

	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
			total += int64(n)
		}

		if errors.Is(err, io.EOF) || (n == 0 && err == nil) {
			break
		}
		if err != nil {
			return 0, total, fmt.Errorf("hashing: %w", err)
		}
	}

	return h.Sum32(), total, nil
}

// HashFile returns the CRC-32 and byte length of the file at path.
func HashFile(path string, buf []byte) (uint32, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sum, n, err := HashReader(f, buf)
	if err != nil {
		return 0, n, fmt.Errorf("%s: %w", path, err)
	}

	return sum, n, nil
}

// NewEntry hashes the file at path and records its byte length.
func NewEntry(path string, buf []byte) (Entry, error) {
	sum, n, err := HashFile(path, buf)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Path: path,
		Size: uint64(n),
		Name: DisplayName(path),
		Hash: sum,
	}, nil
}

// DisplayName is the file name without its extension. Names that are not
// valid UTF-8 become the empty string.
func DisplayName(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}

	stem := base
	// A leading dot starts a hidden name, not an extension.
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		stem = base[:i]
	}

	if !utf8.ValidString(stem) {
		return ""
	}

	return stem
}

// appendCanonical appends the bytes hashed into the aggregate for e.
func (e Entry) appendCanonical(dst []byte) []byte {
	dst = append(dst, e.Path...)
	dst = append(dst, 0)
	dst = append(dst, e.Name...)
	dst = append(dst, 0)
	dst = binary.LittleEndian.AppendUint64(dst, e.Size)
	dst = binary.LittleEndian.AppendUint32(dst, e.Hash)

	return dst
}
