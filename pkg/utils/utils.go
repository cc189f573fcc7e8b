package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"reflect"

	"github.com/gowebpki/jcs"
	"github.com/modern-go/reflect2"
)

func OptionalDefaulted[T any](def T, args ...T) T {
	var _nil T
	for _, e := range args {
		if !reflect.DeepEqual(e, _nil) {
			return e
		}
	}
	return def
}

func Pointer[T any](t T) *T {
	return &t
}

// Hash returns the SHA-256 of the canonical JSON form (RFC 8785)
// of the given data. Byte slices and strings are hashed as they are.
func Hash(d interface{}) (string, error) {
	if reflect2.IsNil(d) {
		return "", nil
	}
	var err error
	var data []byte
	switch b := d.(type) {
	case []byte:
		data = b
	case string:
		data = []byte(b)
	default:
		data, err = json.Marshal(d)
		if err != nil {
			return "", err
		}
		data, err = jcs.Transform(data)
		if err != nil {
			return "", err
		}
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:]), nil
}
