package library

import (
	"strings"
	"testing"
)

func TestParseYear(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		input string
		want  *int
	}{
		{"1965", intPtr(1965)},
		{" 1965 ", intPtr(1965)},
		{"0", intPtr(0)},
		{"", nil},
		{"   ", nil},
		{"19a5", nil},
		{"-1965", nil},
		{"+1965", nil},
		{"nineteen", nil},
		{"1965.0", nil},
	}

	for _, tt := range tests {
		got := ParseYear(tt.input)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("ParseYear(%q) = %d, want absent", tt.input, *got)
		case tt.want != nil && got == nil:
			t.Errorf("ParseYear(%q) = absent, want %d", tt.input, *tt.want)
		case tt.want != nil && got != nil && *got != *tt.want:
			t.Errorf("ParseYear(%q) = %d, want %d", tt.input, *got, *tt.want)
		}
	}
}

func TestBookRoundTrip(t *testing.T) {
	year := 1965
	books := []Book{
		{ID: "id-1", Title: "Dune", Author: "Herbert", Year: &year, Genre: "Sci-Fi", Read: false},
		{ID: "id-2", Title: "Pedro Páramo", Author: "Rulfo", Read: true},
	}

	for _, book := range books {
		data, err := EncodeBook(book)
		if err != nil {
			t.Fatalf("EncodeBook(%s) failed: %v", book.ID, err)
		}

		decoded, err := DecodeBook(data)
		if err != nil {
			t.Fatalf("DecodeBook(%s) failed: %v", book.ID, err)
		}

		if decoded.ID != book.ID || decoded.Title != book.Title || decoded.Author != book.Author {
			t.Errorf("Round trip changed identity fields: got %+v, want %+v", decoded, book)
		}
		if decoded.Read != book.Read {
			t.Errorf("Round trip changed read flag for %s", book.ID)
		}
		if decoded.Genre != book.Genre {
			t.Errorf("Round trip changed genre: got %q, want %q", decoded.Genre, book.Genre)
		}
		switch {
		case book.Year == nil && decoded.Year != nil:
			t.Errorf("Absent year came back as %d", *decoded.Year)
		case book.Year != nil && decoded.Year == nil:
			t.Errorf("Year %d came back absent", *book.Year)
		case book.Year != nil && decoded.Year != nil && *book.Year != *decoded.Year:
			t.Errorf("Year changed: got %d, want %d", *decoded.Year, *book.Year)
		}
	}
}

func TestEncodeOmitsAbsentFields(t *testing.T) {
	data, err := EncodeBook(Book{ID: "id-3", Title: "Ficciones", Author: "Borges"})
	if err != nil {
		t.Fatalf("EncodeBook failed: %v", err)
	}

	encoded := string(data)
	if strings.Contains(encoded, `"year"`) {
		t.Errorf("Absent year was encoded: %s", encoded)
	}
	if strings.Contains(encoded, `"genre"`) {
		t.Errorf("Absent genre was encoded: %s", encoded)
	}
}

func TestDecodeBookMalformed(t *testing.T) {
	if _, err := DecodeBook([]byte(`{"id": "broken"`)); err == nil {
		t.Errorf("Expected decode error for malformed JSON")
	}
	if _, err := DecodeBook([]byte(`not json at all`)); err == nil {
		t.Errorf("Expected decode error for non-JSON value")
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"0b337d9e-17b7-4b67-8ba5-77e1d1a4c132", "4c132"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ShortID(tt.id); got != tt.want {
			t.Errorf("ShortID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
