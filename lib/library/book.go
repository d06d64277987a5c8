package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotFound is returned when no record matches the given id suffix.
var ErrNotFound = errors.New("book not found")

// ErrAlreadyRead is returned by MarkRead when the record is already
// flagged as read; the store is not rewritten in that case.
var ErrAlreadyRead = errors.New("book already marked as read")

// ErrValidation is returned when user input fails a local check before
// any store mutation takes place.
var ErrValidation = errors.New("invalid book data")

// Book represents one catalog record, stored as a single JSON-encoded
// string value. Year and Genre are optional: an absent year stays absent
// through encode/decode, and an empty genre is normalized to absent.
type Book struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   *int   `json:"year,omitempty"`
	Genre  string `json:"genre,omitempty"`
	Read   bool   `json:"read"`
}

// ShortID returns the trailing fragment of the id used for display and
// suffix lookup. Two ids may share a fragment; lookups then hit whichever
// the store enumerates first.
func (b Book) ShortID() string {
	return ShortID(b.ID)
}

// ShortIDLen is the number of trailing id characters shown to the user.
const ShortIDLen = 5

// ShortID returns the last ShortIDLen characters of an id.
func ShortID(id string) string {
	if len(id) <= ShortIDLen {
		return id
	}
	return id[len(id)-ShortIDLen:]
}

// --------------------------------------------------------------------------
// Codec
// --------------------------------------------------------------------------

// EncodeBook serializes a record to its stored JSON form.
func EncodeBook(b Book) ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encoding book %s: %w", b.ID, err)
	}
	return data, nil
}

// DecodeBook deserializes a stored JSON value into a record. Malformed
// stored JSON is a decode error, never a partial record.
func DecodeBook(data []byte) (Book, error) {
	var b Book
	if err := json.Unmarshal(data, &b); err != nil {
		return Book{}, fmt.Errorf("decoding stored book: %w", err)
	}
	return b, nil
}

// --------------------------------------------------------------------------
// Input parsing
// --------------------------------------------------------------------------

// ParseYear interprets a raw publication-year input. Only a non-empty
// all-digit string yields a value; anything else means "absent" and is
// never an error.
func ParseYear(input string) *int {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return nil
		}
	}
	year, err := strconv.Atoi(input)
	if err != nil {
		return nil
	}
	return &year
}
