// Package menu implements the interactive terminal loop: a single prompt
// state with five transitions (add, list, mark-read, delete, exit), each
// calling into the library repository and returning to the prompt.
// Unrecognized selections re-prompt with a message; every action handles
// its own errors so the loop never dies mid-session.
package menu
