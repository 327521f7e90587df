package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PostIDSet is the collection of post ids a user has voted on in one
// direction. It persists as a JSON array column but behaves as a set: an id
// appears at most once, and vote transitions are driven by membership checks
// instead of re-parsing serialized lists.
type PostIDSet []uint

// Contains reports whether postID is a member of the set.
func (s PostIDSet) Contains(postID uint) bool {
	for _, id := range s {
		if id == postID {
			return true
		}
	}
	return false
}

// Add inserts postID into the set. Adding an existing member is a no-op.
func (s *PostIDSet) Add(postID uint) {
	if s.Contains(postID) {
		return
	}
	*s = append(*s, postID)
}

// Remove deletes postID from the set. Removing a non-member is a no-op.
func (s *PostIDSet) Remove(postID uint) {
	for i, id := range *s {
		if id == postID {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}

// Clone returns an independent copy of the set.
func (s PostIDSet) Clone() PostIDSet {
	if s == nil {
		return PostIDSet{}
	}
	out := make(PostIDSet, len(s))
	copy(out, s)
	return out
}

// Value implements driver.Valuer so gorm stores the set as a JSON array.
func (s PostIDSet) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]uint(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner. A NULL column scans to an empty set.
func (s *PostIDSet) Scan(value interface{}) error {
	if value == nil {
		*s = PostIDSet{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into PostIDSet", value)
	}

	if len(data) == 0 {
		*s = PostIDSet{}
		return nil
	}

	var ids []uint
	if err := json.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("invalid vote data in database: %w", err)
	}
	*s = PostIDSet(ids)
	return nil
}
