package gif

import "golang.org/x/text/encoding/charmap"

const gifSignature = "GIF"

// Header is the six-character signature and version block. The decoder
// stores it as read; nothing is validated.
type Header string

// Signature returns the first three characters, "GIF" for real files.
func (h Header) Signature() string {
	r := []rune(string(h))
	if len(r) < 3 {
		return string(r)
	}
	return string(r[:3])
}

// Version returns the trailing three characters, "87a" or "89a" for real
// files.
func (h Header) Version() string {
	r := []rune(string(h))
	if len(r) < 3 {
		return ""
	}
	return string(r[3:])
}

// Valid reports whether the header carries the GIF signature and a known
// version.
func (h Header) Valid() bool {
	if h.Signature() != gifSignature {
		return false
	}
	v := h.Version()
	return v == "87a" || v == "89a"
}

// latin1 maps each byte to the character with the same code point.
func latin1(b []byte) string {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}
