package encoding

import (
	"github.com/eknkc/basex"
)

// Base62Alphabet is the alphabet used for Base62 encoding, ordered so that
// encoded identifiers sort the way their raw bytes do.
const Base62Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// base62 is the shared Base62 encoding. It is safe for concurrent use.
var base62 *basex.Encoding

func init() {
	// Create the shared encoding. This can only fail for malformed alphabets,
	// so treat failure as fatal.
	encoding, err := basex.NewEncoding(Base62Alphabet)
	if err != nil {
		panic("unable to create Base62 encoding")
	}
	base62 = encoding
}

// EncodeBase62 encodes the specified bytes as a Base62 string.
func EncodeBase62(value []byte) string {
	return base62.Encode(value)
}

// DecodeBase62 decodes a Base62 string back to bytes.
func DecodeBase62(value string) ([]byte, error) {
	return base62.Decode(value)
}
