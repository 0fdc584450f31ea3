package runner

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/leapstack-labs/leapcss/pkg/lint"
)

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding = "utf-8"

// Decoder turns file bytes into source text.
type Decoder struct {
	name string
	enc  encoding.Encoding // nil for UTF-8
}

// NewDecoder returns a decoder for an encoding label such as "utf-8",
// "latin1" or "windows-1252". Labels follow the WHATWG encoding standard.
func NewDecoder(label string) (*Decoder, error) {
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	name, _ := htmlindex.Name(enc)
	if strings.EqualFold(name, "utf-8") {
		return &Decoder{name: name}, nil
	}
	return &Decoder{name: name, enc: enc}, nil
}

// Name returns the canonical name of the encoding.
func (d *Decoder) Name() string {
	return d.name
}

// Decode converts data to UTF-8 text. Invalid UTF-8 sequences are
// replaced with U+FFFD.
func (d *Decoder) Decode(data []byte) (string, error) {
	if d.enc == nil {
		if !utf8.Valid(data) {
			return strings.ToValidUTF8(string(data), "\uFFFD"), nil
		}
		return string(data), nil
	}
	out, err := d.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s input: %w", d.name, err)
	}
	return string(out), nil
}

// ReadSource reads and decodes one file.
func (d *Decoder) ReadSource(path string) (text string, hash string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	text, err = d.Decode(data)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", path, err)
	}
	return text, contentHash(data), nil
}

func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashConfig fingerprints a lint configuration so cached results can be
// invalidated when it changes.
func HashConfig(cfg *lint.Config, extra ...string) string {
	if cfg == nil {
		cfg = lint.NewConfig()
	}
	// encoding/json sorts map keys, so equal configs hash equally
	data, _ := json.Marshal(cfg)
	h := sha256.New()
	h.Write(data)
	for _, e := range extra {
		h.Write([]byte{0})
		h.Write([]byte(e))
	}
	return hex.EncodeToString(h.Sum(nil))
}
