package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dtstyler/dtstyler/internal/config"
	"github.com/dtstyler/dtstyler/internal/finder"
	"github.com/dtstyler/dtstyler/internal/prompt"
	"github.com/dtstyler/dtstyler/internal/storage"
	"github.com/dtstyler/dtstyler/internal/ui"
)

// Menu choices, in display order.
const (
	choiceList   = "1"
	choiceSearch = "2"
	choiceView   = "3"
	choiceAdd    = "4"
	choiceEdit   = "5"
	choiceRemove = "6"
	choiceReload = "7"
	choiceExit   = "0"
)

// session owns the one database instance and the terminal conversation.
// Input and output are injected so tests can script a whole session.
type session struct {
	stylesPath string
	db         *storage.Database
	in         *prompt.Reader
	out        io.Writer
	pageSize   int
}

func newSession(path string, in io.Reader, out io.Writer) *session {
	return &session{
		stylesPath: path,
		in:         prompt.New(in, out),
		out:        out,
		pageSize:   config.GetPageSize(),
	}
}

// run loads the database and drives the menu until exit or end of input.
// Every failure inside an action is reported and the loop continues.
func (s *session) run() {
	db, err := storage.Open(s.stylesPath)
	s.db = db
	s.reportLoad(err)

	for {
		s.printMenu()
		choice, err := s.in.Line("Select option: ")
		if err != nil {
			fmt.Fprintln(s.out, "\nGoodbye!")
			return
		}

		switch choice {
		case choiceList:
			s.listStyles()
		case choiceSearch:
			s.searchStyles()
		case choiceView:
			s.viewStyle()
		case choiceAdd:
			s.addStyle()
		case choiceEdit:
			s.editStyle()
		case choiceRemove:
			s.removeStyle()
		case choiceReload:
			s.reloadStyles()
		case choiceExit:
			fmt.Fprintln(s.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(s.out, "Invalid option.")
		}
	}
}

func (s *session) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, ui.Separator())
	fmt.Fprintln(s.out, ui.Title("DTSTYLER - STYLE MANAGER"))
	fmt.Fprintln(s.out, ui.Separator())
	fmt.Fprintln(s.out, "\nOptions:")
	fmt.Fprintf(s.out, "  %s. List all styles\n", ui.Key(choiceList))
	fmt.Fprintf(s.out, "  %s. Search styles\n", ui.Key(choiceSearch))
	fmt.Fprintf(s.out, "  %s. View style details\n", ui.Key(choiceView))
	fmt.Fprintf(s.out, "  %s. Add new style\n", ui.Key(choiceAdd))
	fmt.Fprintf(s.out, "  %s. Edit style\n", ui.Key(choiceEdit))
	fmt.Fprintf(s.out, "  %s. Remove style\n", ui.Key(choiceRemove))
	fmt.Fprintf(s.out, "  %s. Reload from file\n", ui.Key(choiceReload))
	fmt.Fprintf(s.out, "  %s. Exit\n", ui.Key(choiceExit))
	fmt.Fprintln(s.out)
}

// pickStyle asks for a number or name fragment and resolves it to one
// collection entry. ok is false when the user cancels or nothing matches.
func (s *session) pickStyle(action string) (finder.Match, bool) {
	if s.db.Len() == 0 {
		fmt.Fprintln(s.out, "No styles loaded.")
		return finder.Match{}, false
	}

	query, err := s.in.Line(fmt.Sprintf("Style to %s (number or name fragment, Enter to cancel): ", action))
	if err != nil || query == "" {
		return finder.Match{}, false
	}

	matches, err := finder.Resolve(query, s.db.All())
	if err != nil {
		fmt.Fprintf(s.out, "No styles found matching %q.\n", query)
		return finder.Match{}, false
	}
	if len(matches) == 1 {
		return matches[0], true
	}

	fmt.Fprintf(s.out, "\nFound %d matches:\n", len(matches))
	for i, m := range matches {
		fmt.Fprintf(s.out, "  %d. %s (#%d)\n", i+1, m.Style.Name, m.Index+1)
	}
	pick, err := s.in.Line(fmt.Sprintf("Select number (1-%d): ", len(matches)))
	if err != nil {
		return finder.Match{}, false
	}
	n, convErr := strconv.Atoi(pick)
	if convErr != nil {
		fmt.Fprintln(s.out, "Invalid input.")
		return finder.Match{}, false
	}
	if n < 1 || n > len(matches) {
		fmt.Fprintln(s.out, "Invalid selection.")
		return finder.Match{}, false
	}
	return matches[n-1], true
}
