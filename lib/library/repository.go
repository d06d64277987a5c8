package library

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shelfkv/shelf/lib/store"
)

const (
	// RecordKeyPrefix prefixes the string key holding one record.
	RecordKeyPrefix = "record:"
	// IndexSetKey is the set holding every stored record id. It exists
	// because the store has no way to enumerate keys by value pattern.
	IndexSetKey = "records:ids"
)

// RecordKey returns the string key a record is stored under.
func RecordKey(id string) string {
	return RecordKeyPrefix + id
}

// Repository implements the catalog's CRUD operations on top of a
// store.IStore. It owns no state beyond the store handle itself.
type Repository struct {
	store store.IStore
}

// NewRepository creates a repository bound to the given store.
func NewRepository(st store.IStore) *Repository {
	return &Repository{store: st}
}

// --------------------------------------------------------------------------
// Operations
// --------------------------------------------------------------------------

// Add validates the input, builds a record with a fresh id and writes it:
// one SET for the value, one SADD for the index. The two mutations are
// best-effort; if the index update fails the value is not rolled back.
// No store write happens on a validation failure.
func (r *Repository) Add(ctx context.Context, title, author, yearInput, genre string) (Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" || author == "" {
		return Book{}, fmt.Errorf("%w: title and author must not be empty", ErrValidation)
	}

	book := Book{
		ID:     uuid.NewString(),
		Title:  title,
		Author: author,
		Year:   ParseYear(yearInput),
		Genre:  strings.TrimSpace(genre),
		Read:   false,
	}

	data, err := EncodeBook(book)
	if err != nil {
		return Book{}, err
	}

	if err := r.store.Set(ctx, RecordKey(book.ID), data); err != nil {
		return Book{}, fmt.Errorf("storing book: %w", err)
	}
	if err := r.store.SAdd(ctx, IndexSetKey, book.ID); err != nil {
		return Book{}, fmt.Errorf("indexing book %s: %w", book.ID, err)
	}

	return book, nil
}

// FindByIDSuffix locates the first stored record whose id ends in suffix.
// The index set is unordered, so when several ids share the suffix the
// result is whichever the store enumerates first; callers should treat
// collisions as unspecified. Returns ErrNotFound
// when no id matches, or when the matched id has no stored value (a stale
// index entry).
func (r *Repository) FindByIDSuffix(ctx context.Context, suffix string) (Book, string, error) {
	ids, err := r.store.SMembers(ctx, IndexSetKey)
	if err != nil {
		return Book{}, "", fmt.Errorf("listing record ids: %w", err)
	}

	for _, id := range ids {
		if !strings.HasSuffix(id, suffix) {
			continue
		}
		key := RecordKey(id)
		data, found, err := r.store.Get(ctx, key)
		if err != nil {
			return Book{}, "", fmt.Errorf("loading book %s: %w", id, err)
		}
		if !found {
			return Book{}, "", ErrNotFound
		}
		book, err := DecodeBook(data)
		if err != nil {
			return Book{}, "", err
		}
		return book, key, nil
	}

	return Book{}, "", ErrNotFound
}

// ListAll returns every stored record. Ids come from the index set, the
// values from one batched multi-get. Index entries without a stored value
// are skipped silently. The result is the reverse of the retrieval order;
// since that order is store-defined this is cosmetic, not a guarantee.
func (r *Repository) ListAll(ctx context.Context) ([]Book, error) {
	ids, err := r.store.SMembers(ctx, IndexSetKey)
	if err != nil {
		return nil, fmt.Errorf("listing record ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = RecordKey(id)
	}

	values, err := r.store.MGet(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("loading books: %w", err)
	}

	books := make([]Book, 0, len(values))
	for _, data := range values {
		if data == nil {
			continue
		}
		book, err := DecodeBook(data)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	for i, j := 0, len(books)-1; i < j; i, j = i+1, j-1 {
		books[i], books[j] = books[j], books[i]
	}
	return books, nil
}

// MarkRead flags the record matching suffix as read and rewrites its full
// JSON value in place. Returns ErrNotFound if no record matches and
// ErrAlreadyRead (without a write) if the flag is already set.
func (r *Repository) MarkRead(ctx context.Context, suffix string) (Book, error) {
	book, key, err := r.FindByIDSuffix(ctx, suffix)
	if err != nil {
		return Book{}, err
	}
	if book.Read {
		return book, ErrAlreadyRead
	}

	book.Read = true
	data, err := EncodeBook(book)
	if err != nil {
		return Book{}, err
	}
	if err := r.store.Set(ctx, key, data); err != nil {
		return Book{}, fmt.Errorf("updating book %s: %w", book.ID, err)
	}
	return book, nil
}

// Delete removes the record matching suffix: first the value key, then,
// only if the delete actually removed a key, the index entry. A delete
// that removes nothing leaves the index untouched and is reported as an
// error.
func (r *Repository) Delete(ctx context.Context, suffix string) (Book, error) {
	book, key, err := r.FindByIDSuffix(ctx, suffix)
	if err != nil {
		return Book{}, err
	}

	removed, err := r.store.Delete(ctx, key)
	if err != nil {
		return Book{}, fmt.Errorf("deleting book %s: %w", book.ID, err)
	}
	if removed == 0 {
		return Book{}, fmt.Errorf("book %s vanished before deletion", book.ShortID())
	}

	if err := r.store.SRem(ctx, IndexSetKey, book.ID); err != nil {
		return Book{}, fmt.Errorf("unindexing book %s: %w", book.ID, err)
	}
	return book, nil
}
