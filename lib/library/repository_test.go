package library_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shelfkv/shelf/lib/library"
	"github.com/shelfkv/shelf/lib/store"
	"github.com/shelfkv/shelf/lib/store/memstore"
)

func newTestRepo(t *testing.T) (*library.Repository, store.IStore) {
	t.Helper()
	st := memstore.New()
	t.Cleanup(func() { _ = st.Close() })
	return library.NewRepository(st), st
}

func TestAddAndListAll(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	book, err := repo.Add(ctx, "Dune", "Herbert", "1965", "Sci-Fi")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if book.ID == "" {
		t.Fatalf("Expected a generated id")
	}
	if book.Read {
		t.Errorf("Expected a new book to start unread")
	}

	books, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("Expected exactly one book, got %d", len(books))
	}
	got := books[0]
	if got.Title != "Dune" || got.Author != "Herbert" {
		t.Errorf("Unexpected record: %+v", got)
	}
	if got.Year == nil || *got.Year != 1965 {
		t.Errorf("Expected year 1965, got %v", got.Year)
	}
	if got.Genre != "Sci-Fi" {
		t.Errorf("Expected genre Sci-Fi, got %q", got.Genre)
	}
	if got.ID != book.ID {
		t.Errorf("Listed id %s does not match added id %s", got.ID, book.ID)
	}
}

func TestAddTrimsAndNormalizes(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	book, err := repo.Add(ctx, "  Dune  ", "  Herbert ", "not-a-year", "  ")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if book.Title != "Dune" || book.Author != "Herbert" {
		t.Errorf("Expected trimmed fields, got %q / %q", book.Title, book.Author)
	}
	if book.Year != nil {
		t.Errorf("Expected non-numeric year to be absent, got %d", *book.Year)
	}
	if book.Genre != "" {
		t.Errorf("Expected blank genre to normalize to absent, got %q", book.Genre)
	}
}

func TestAddValidationWritesNothing(t *testing.T) {
	ctx := context.Background()
	repo, st := newTestRepo(t)

	cases := []struct{ title, author string }{
		{"", "Herbert"},
		{"Dune", ""},
		{"   ", "Herbert"},
		{"Dune", "   "},
	}
	for _, tc := range cases {
		if _, err := repo.Add(ctx, tc.title, tc.author, "", ""); !errors.Is(err, library.ErrValidation) {
			t.Errorf("Add(%q, %q) error = %v, want ErrValidation", tc.title, tc.author, err)
		}
	}

	ids, err := st.SMembers(ctx, library.IndexSetKey)
	if err != nil {
		t.Fatalf("SMembers failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Expected no index entries after rejected adds, got %d", len(ids))
	}
	books, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("Expected empty catalog after rejected adds, got %d books", len(books))
	}
}

func TestFindByIDSuffix(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	var want library.Book
	for i, title := range []string{"Dune", "Ficciones", "Rayuela"} {
		book, err := repo.Add(ctx, title, "Author", "", "")
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if i == 1 {
			want = book
		}
	}

	got, key, err := repo.FindByIDSuffix(ctx, want.ShortID())
	if err != nil {
		t.Fatalf("FindByIDSuffix(%s) failed: %v", want.ShortID(), err)
	}
	if got.ID != want.ID {
		t.Errorf("Found %s, want %s", got.ID, want.ID)
	}
	if key != library.RecordKey(want.ID) {
		t.Errorf("Found key %s, want %s", key, library.RecordKey(want.ID))
	}

	if _, _, err := repo.FindByIDSuffix(ctx, "zzzzz"); !errors.Is(err, library.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown suffix, got %v", err)
	}
}

func TestFindByIDSuffixStaleIndex(t *testing.T) {
	ctx := context.Background()
	repo, st := newTestRepo(t)

	// an index entry whose record key was lost
	if err := st.SAdd(ctx, library.IndexSetKey, "ghost-id-12345"); err != nil {
		t.Fatalf("SAdd failed: %v", err)
	}

	if _, _, err := repo.FindByIDSuffix(ctx, "12345"); !errors.Is(err, library.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for dangling index entry, got %v", err)
	}
}

func TestListAllSkipsStaleEntries(t *testing.T) {
	ctx := context.Background()
	repo, st := newTestRepo(t)

	if _, err := repo.Add(ctx, "Dune", "Herbert", "", ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := st.SAdd(ctx, library.IndexSetKey, "ghost-id-12345"); err != nil {
		t.Fatalf("SAdd failed: %v", err)
	}

	books, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(books) != 1 {
		t.Errorf("Expected the stale entry to be skipped, got %d books", len(books))
	}
}

func TestListAllCorruptValue(t *testing.T) {
	ctx := context.Background()
	repo, st := newTestRepo(t)

	if err := st.Set(ctx, library.RecordKey("bad-id"), []byte("{broken")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := st.SAdd(ctx, library.IndexSetKey, "bad-id"); err != nil {
		t.Fatalf("SAdd failed: %v", err)
	}

	if _, err := repo.ListAll(ctx); err == nil {
		t.Errorf("Expected a decode error for a corrupt stored value")
	}
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	book, err := repo.Add(ctx, "Dune", "Herbert", "1965", "Sci-Fi")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	updated, err := repo.MarkRead(ctx, book.ShortID())
	if err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if !updated.Read {
		t.Errorf("Expected read=true after MarkRead")
	}

	// second call is a reported no-op, the flag stays set
	again, err := repo.MarkRead(ctx, book.ShortID())
	if !errors.Is(err, library.ErrAlreadyRead) {
		t.Errorf("Expected ErrAlreadyRead on the second call, got %v", err)
	}
	if !again.Read {
		t.Errorf("Expected read to remain true")
	}

	books, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(books) != 1 || !books[0].Read {
		t.Errorf("Expected the stored record to be read, got %+v", books)
	}

	if _, err := repo.MarkRead(ctx, "zzzzz"); !errors.Is(err, library.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown suffix, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo, st := newTestRepo(t)

	keep, err := repo.Add(ctx, "Ficciones", "Borges", "", "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	doomed, err := repo.Add(ctx, "Dune", "Herbert", "", "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	deleted, err := repo.Delete(ctx, doomed.ShortID())
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.ID != doomed.ID {
		t.Errorf("Deleted %s, want %s", deleted.ID, doomed.ID)
	}

	// the value key and the index entry must both be gone
	_, found, err := st.Get(ctx, library.RecordKey(doomed.ID))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Errorf("Expected the record key to be removed")
	}
	ids, err := st.SMembers(ctx, library.IndexSetKey)
	if err != nil {
		t.Fatalf("SMembers failed: %v", err)
	}
	for _, id := range ids {
		if id == doomed.ID {
			t.Errorf("Expected the id to be removed from the index set")
		}
	}

	if _, _, err := repo.FindByIDSuffix(ctx, doomed.ShortID()); !errors.Is(err, library.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	books, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(books) != 1 || books[0].ID != keep.ID {
		t.Errorf("Expected only %s to remain, got %+v", keep.ID, books)
	}

	if _, err := repo.Delete(ctx, "zzzzz"); !errors.Is(err, library.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown suffix, got %v", err)
	}
}
