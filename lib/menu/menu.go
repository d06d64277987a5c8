package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shelfkv/shelf/lib/library"
)

const banner = " LIBRARY CATALOG MANAGER (Redis/KeyDB)"

// Menu drives the interactive loop: one state (awaiting selection), five
// transitions, each dispatching to the repository and returning to the
// prompt. Input and output are injected so the loop runs against any
// reader/writer pair.
type Menu struct {
	repo *library.Repository
	in   *bufio.Scanner
	out  io.Writer

	// ClearScreen enables the ANSI clear between actions. Presentation
	// only; tests leave it off.
	ClearScreen bool
}

// New creates a menu bound to a repository, reading selections from in
// and writing everything user-visible to out.
func New(repo *library.Repository, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		repo: repo,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run executes the loop until the user selects exit or input ends.
// Every action guards its own failure path: errors are printed and the
// loop continues, nothing propagates out except a terminated input.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()
		choice, ok := m.prompt("Select an option (1-5): ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			m.addAction(ctx)
		case "2":
			m.listAction(ctx)
		case "3":
			m.markReadAction(ctx)
		case "4":
			m.deleteAction(ctx)
		case "5":
			fmt.Fprintln(m.out, "Goodbye! Thanks for using the library catalog.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option. Please select a number between 1 and 5.")
		}

		if _, ok := m.prompt("\nPress Enter to continue..."); !ok {
			return nil
		}
		if m.ClearScreen {
			fmt.Fprint(m.out, "\x1b[2J\x1b[H")
		}
	}
}

// --------------------------------------------------------------------------
// Actions
// --------------------------------------------------------------------------

func (m *Menu) addAction(ctx context.Context) {
	fmt.Fprintln(m.out, "\n--- ADD NEW BOOK ---")
	title, ok := m.prompt("Title: ")
	if !ok {
		return
	}
	author, ok := m.prompt("Author: ")
	if !ok {
		return
	}
	year, ok := m.prompt("Publication year (optional): ")
	if !ok {
		return
	}
	genre, ok := m.prompt("Genre (optional): ")
	if !ok {
		return
	}

	book, err := m.repo.Add(ctx, title, author, year, genre)
	if err != nil {
		if errors.Is(err, library.ErrValidation) {
			fmt.Fprintln(m.out, "Error: title and author must not be empty.")
		} else {
			fmt.Fprintf(m.out, "Error adding book: %v\n", err)
		}
		return
	}
	fmt.Fprintf(m.out, "\nBook %q by %s added (id: %s).\n", book.Title, book.Author, book.ShortID())
}

func (m *Menu) listAction(ctx context.Context) {
	books, err := m.repo.ListAll(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Error listing books: %v\n", err)
		return
	}
	if len(books) == 0 {
		fmt.Fprintln(m.out, "\n--- EMPTY LIBRARY ---")
		fmt.Fprintln(m.out, "No books registered yet. Use option 1 to add one.")
		return
	}

	fmt.Fprintln(m.out, "\n--- MY LIBRARY ---")
	fmt.Fprintf(m.out, "%-7s | %-35s | %-25s | %-4s | %s\n", "ID", "Title", "Author", "Year", "Read")
	fmt.Fprintln(m.out, strings.Repeat("-", 85))
	for _, book := range books {
		year := "N/A"
		if book.Year != nil {
			year = fmt.Sprintf("%d", *book.Year)
		}
		read := "no"
		if book.Read {
			read = "yes"
		}
		fmt.Fprintf(m.out, "%-7s | %-35s | %-25s | %-4s | %s\n",
			book.ShortID(), truncate(book.Title, 35), truncate(book.Author, 25), year, read)
	}
	fmt.Fprintln(m.out, strings.Repeat("-", 85))
}

func (m *Menu) markReadAction(ctx context.Context) {
	m.listAction(ctx)
	suffix, ok := m.prompt(fmt.Sprintf("\nEnter the LAST %d characters of the id to mark as READ: ", library.ShortIDLen))
	if !ok {
		return
	}
	if suffix == "" {
		fmt.Fprintln(m.out, "Error: the id must not be empty.")
		return
	}

	book, err := m.repo.MarkRead(ctx, suffix)
	switch {
	case errors.Is(err, library.ErrNotFound):
		fmt.Fprintf(m.out, "Warning: no book found with an id ending in %s.\n", suffix)
	case errors.Is(err, library.ErrAlreadyRead):
		fmt.Fprintf(m.out, "Warning: %q was already marked as read.\n", book.Title)
	case err != nil:
		fmt.Fprintf(m.out, "Error updating book: %v\n", err)
	default:
		fmt.Fprintf(m.out, "Book %q (id %s) marked as READ.\n", book.Title, book.ShortID())
	}
}

func (m *Menu) deleteAction(ctx context.Context) {
	m.listAction(ctx)
	suffix, ok := m.prompt(fmt.Sprintf("\nEnter the LAST %d characters of the id to DELETE: ", library.ShortIDLen))
	if !ok {
		return
	}
	if suffix == "" {
		fmt.Fprintln(m.out, "Error: the id must not be empty.")
		return
	}

	book, err := m.repo.Delete(ctx, suffix)
	switch {
	case errors.Is(err, library.ErrNotFound):
		fmt.Fprintf(m.out, "Warning: no book found with an id ending in %s.\n", suffix)
	case err != nil:
		fmt.Fprintf(m.out, "Error deleting book: %v\n", err)
	default:
		fmt.Fprintf(m.out, "Book %q (id %s) deleted.\n", book.Title, book.ShortID())
	}
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, strings.Repeat("=", 38))
	fmt.Fprintln(m.out, banner)
	fmt.Fprintln(m.out, strings.Repeat("=", 38))
	fmt.Fprintln(m.out, "1. Add a new book")
	fmt.Fprintln(m.out, "2. List all books")
	fmt.Fprintln(m.out, "3. Mark a book as read")
	fmt.Fprintln(m.out, "4. Delete a book by id suffix")
	fmt.Fprintln(m.out, "5. Exit")
	fmt.Fprintln(m.out, strings.Repeat("-", 38))
}

// prompt prints a label and reads one trimmed line. ok is false once the
// input is exhausted, which ends the loop gracefully.
func (m *Menu) prompt(label string) (line string, ok bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
