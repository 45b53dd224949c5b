// Package credential turns session credentials into cookie-safe strings and builds
// the Basic authorization values expected by the dashboard backend.
//
// The codec is obfuscation, not encryption: the key ships with the binary, so anyone
// holding the binary can recover the plaintext of a cookie.
package credential

import (
	"encoding/base64"
	"errors"
	"fmt"
)

var (
	ErrDecode     = errors.New("credential is not validly encoded")
	ErrInvalidKey = errors.New("invalid codec key")
)

const maxKeyLength = 256

var defaultKey = []byte("st0re-dashb0ard/sessi0nT0ken#v1")

type Codec struct {
	forward [256]byte
	inverse [256]byte
}

func NewCodec(key []byte) (*Codec, error) {
	if len(key) == 0 || len(key) > maxKeyLength {
		return nil, fmt.Errorf("%w: length must be between 1 and %d bytes", ErrInvalidKey, maxKeyLength)
	}

	c := &Codec{}
	for i := range c.forward {
		c.forward[i] = byte(i)
	}

	// key scheduling as in RC4, yields a key-dependent permutation of all byte values
	var j byte
	for i := 0; i < len(c.forward); i++ {
		j += c.forward[i] + key[i%len(key)]
		c.forward[i], c.forward[j] = c.forward[j], c.forward[i]
	}

	for i, b := range c.forward {
		c.inverse[b] = byte(i)
	}

	return c, nil
}

func DefaultCodec() *Codec {
	c, err := NewCodec(defaultKey)
	if err != nil {
		panic(err)
	}

	return c
}

func (c *Codec) Encode(plain string) string {
	buf := make([]byte, len(plain))
	for i := 0; i < len(plain); i++ {
		buf[i] = c.forward[plain[i]]
	}

	return base64.StdEncoding.EncodeToString(buf)
}

// Decode returns an empty string for an empty input, since that is what Encode
// produces for an empty plaintext.
func (c *Codec) Decode(encoded string) (string, error) {
	buf, err := base64.StdEncoding.Strict().DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	for i, b := range buf {
		buf[i] = c.inverse[b]
	}

	return string(buf), nil
}
