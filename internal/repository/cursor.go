package repository

import (
	"encoding/base64"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
)

const (
	timeFormat = time.RFC3339Nano

	DefaultPageSize = 10
	MaxPageSize     = 50
)

// EncodeCursor encodes a created_at timestamp into an opaque page cursor.
func EncodeCursor(t time.Time) string {
	timeString := t.Format(timeFormat)
	return base64.StdEncoding.EncodeToString([]byte(timeString))
}

// DecodeCursor decodes the opaque cursor back into a timestamp.
// Returns ErrBadParamInput on garbage input.
func DecodeCursor(encoded string) (time.Time, error) {
	byt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return time.Time{}, domain.ErrBadParamInput
	}

	t, err := time.Parse(timeFormat, string(byt))
	if err != nil {
		return time.Time{}, domain.ErrBadParamInput
	}

	return t, nil
}

// PageVerify clamps the page size into a sane range.
func PageVerify(num *int64) {
	if *num <= 0 {
		*num = DefaultPageSize
	}
	if *num > MaxPageSize {
		*num = MaxPageSize
	}
}
