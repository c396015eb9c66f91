package pagination

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Cursor marks a position in the (created_at DESC, id DESC) ordering of the
// gallery. Clients treat the encoded form as an opaque token.
type Cursor struct {
	CreatedAt int64  `json:"t"`
	ID        string `json:"id"`
}

func (c Cursor) Time() time.Time {
	return time.Unix(0, c.CreatedAt)
}

func (c Cursor) Encode() string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

func Decode(token string) (*Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("malformed cursor: %w", err)
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("malformed cursor: %w", err)
	}
	if c.ID == "" {
		return nil, fmt.Errorf("malformed cursor: missing id")
	}
	return &c, nil
}
