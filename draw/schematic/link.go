package schematic

import (
	"fmt"
	"strings"

	lzstring "github.com/daku10/go-lz-string"
)

// LinkPrefix is the simulator URL that takes a compressed circuit.
const LinkPrefix = "https://www.falstad.com/circuit/circuitjs.html?ctz="

// Codec compresses simulator text into a URL-safe string and back.
type Codec interface {
	Encode(text string) (string, error)
	Decode(encoded string) (string, error)
}

// LZString is the lz-string URI component encoding the simulator expects.
type LZString struct{}

// Encode compresses text.
func (LZString) Encode(text string) (string, error) {
	return lzstring.CompressToEncodedURIComponent(text)
}

// Decode restores text compressed by Encode.
func (LZString) Decode(encoded string) (string, error) {
	return lzstring.DecompressFromEncodedURIComponent(encoded)
}

// Link returns a simulator URL carrying text. A nil codec means LZString.
func Link(text string, codec Codec) (string, error) {
	if codec == nil {
		codec = LZString{}
	}
	enc, err := codec.Encode(text)
	if err != nil {
		return "", fmt.Errorf("schematic: encode link: %w", err)
	}
	return LinkPrefix + enc, nil
}

// ParseLink extracts the simulator text from a link made by Link.
func ParseLink(link string, codec Codec) (string, error) {
	enc, ok := strings.CutPrefix(link, LinkPrefix)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrBadLink, link)
	}
	if codec == nil {
		codec = LZString{}
	}
	text, err := codec.Decode(enc)
	if err != nil {
		return "", fmt.Errorf("schematic: decode link: %w", err)
	}
	return text, nil
}
