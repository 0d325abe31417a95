package domain

import (
	"encoding/base64"
	"strconv"
	"strings"
)

const (
	SortCreatedDesc = "created_desc"
	SortCreatedAsc  = "created_asc"

	MaxPageSize     = 25
	DefaultPageSize = 10
	RepliesPerRoot  = 3
)

// Cursors are opaque to clients: a base64-wrapped offset. Decoding a
// malformed cursor is a validation error, not a server error.
func EncodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte("o:" + strconv.Itoa(offset)))
}

func DecodeCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, ValidationErrorf("malformed cursor")
	}
	s, ok := strings.CutPrefix(string(raw), "o:")
	if !ok {
		return 0, ValidationErrorf("malformed cursor")
	}
	offset, err := strconv.Atoi(s)
	if err != nil || offset < 0 {
		return 0, ValidationErrorf("malformed cursor")
	}
	return offset, nil
}

type ListCommentsInput struct {
	Path   string `json:"path" validate:"required"`
	Limit  int    `json:"limit"`
	Cursor string `json:"cursor"`
	SortBy string `json:"sort_by"`
}

// Normalize defaults an omitted limit and sort order, and rejects values
// outside [1,25] or unknown sort keys.
func (in *ListCommentsInput) Normalize() error {
	if in.Limit == 0 {
		in.Limit = DefaultPageSize
	}
	if in.Limit < 1 || in.Limit > MaxPageSize {
		return ValidationErrorf("limit must be between 1 and %d", MaxPageSize)
	}
	switch in.SortBy {
	case "":
		in.SortBy = SortCreatedDesc
	case SortCreatedDesc, SortCreatedAsc:
	default:
		return ValidationErrorf("unknown sort_by %q", in.SortBy)
	}
	return nil
}
