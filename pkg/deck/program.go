package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"src.prismdeck.dev/pkg/app"
	"src.prismdeck.dev/pkg/comps"
	"src.prismdeck.dev/pkg/errutil"
	"src.prismdeck.dev/pkg/logutil"
	"src.prismdeck.dev/pkg/prog"
	"src.prismdeck.dev/pkg/store"
	"src.prismdeck.dev/pkg/store/storedefs"
	"src.prismdeck.dev/pkg/sys"
)

var logger = logutil.GetLogger("[deck] ")

// Program is the subprogram that presents a deck.
type Program struct {
	catalogue string
	db        string
	slide     int
	list      bool
	json      *bool

	// If not nil, used instead of the terminal connected to stdin and
	// stdout. Only used in tests.
	TTY app.TTY
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.StringVar(&p.catalogue, "deck", "",
		"A YAML file listing the slides; the built-in deck is used if empty")
	fs.StringVar(&p.db, "db", "",
		"Path to the database storing the deck position and todo lists; nothing is saved if empty")
	fs.IntVar(&p.slide, "slide", 0, "The slide to start on, counting from 1")
	fs.BoolVar(&p.list, "list", false, "List the slides of the deck and quit")
	p.json = fs.JSON()
}

func (p *Program) Run(fds [3]*os.File, args []string) (err error) {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not supported")
	}
	c, err := Load(p.catalogue)
	if err != nil {
		return err
	}
	if p.list {
		return list(fds[1], c, *p.json)
	}
	if p.slide < 0 || p.slide > len(c.Slides) {
		return prog.BadUsage(fmt.Sprintf(
			"-slide must be between 1 and %d, got %d", len(c.Slides), p.slide))
	}

	tty := p.TTY
	if tty == nil {
		if !sys.IsATTY(fds[0].Fd()) || !sys.IsATTY(fds[1].Fd()) {
			return errors.New("stdin and stdout must be terminals")
		}
		tty = app.NewTTY(fds[0], fds[1])
	}

	var st storedefs.Store
	if p.db != "" {
		db, openErr := store.NewStore(p.db)
		if openErr != nil {
			fmt.Fprintln(fds[2], "Warning: state won't be saved:", openErr)
		} else {
			defer func() { err = errutil.Multi(err, db.Close()) }()
			st = db
		}
	}

	d := c.Instantiate(savedTodos(st, c.Title))
	if st != nil {
		pruneTodos(st, d)
	}
	doc := app.NewDocument()
	nav, err := NewNavigator(doc, d.Slides...)
	if err != nil {
		return err
	}
	defer nav.Close()

	if p.slide > 0 {
		if err := startAt(nav, p.slide); err != nil {
			return err
		}
	} else if st != nil {
		restoreCursor(st, c.Title, nav)
	}

	s := newSaver(st, d, nav)
	return app.Run(tty, app.NewSession(nav, doc), app.Config{AfterEvent: s.save})
}

func list(out *os.File, c *Catalogue, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(out).Encode(c)
	}
	fmt.Fprintln(out, c.Title)
	for i, s := range c.Slides {
		fmt.Fprintf(out, "%2d  %s\n", i+1, s.Describe())
	}
	return nil
}

func todoKey(deck, list string) string { return deck + "/" + list }

func savedTodos(st storedefs.Store, deck string) func(string) []comps.TodoItemState {
	if st == nil {
		return nil
	}
	return func(list string) []comps.TodoItemState {
		items, err := st.TodoItems(todoKey(deck, list))
		if err != nil {
			if !errors.Is(err, storedefs.ErrNoValue) {
				logger.Printf("failed to restore todo list %q: %v", list, err)
			}
			return nil
		}
		states := make([]comps.TodoItemState, len(items))
		for i, item := range items {
			states[i] = comps.TodoItemState(item)
		}
		return states
	}
}

// Moves nav to a slide given on the command line, counting from 1.
func startAt(nav *Navigator, slide int) error {
	if err := nav.Jump(slide - 1); err != nil {
		return prog.BadUsage(fmt.Sprintf("-slide %d: %v", slide, err))
	}
	return nil
}

// Deletes the saved todo lists of the deck that no slide of it uses anymore.
// Lists of other decks are kept.
func pruneTodos(st storedefs.Store, d *Deck) {
	lists, err := st.TodoLists()
	if err != nil {
		logger.Println("failed to list saved todo lists:", err)
		return
	}
	prefix := todoKey(d.Title, "")
	for _, list := range lists {
		key, ok := strings.CutPrefix(list, prefix)
		if !ok {
			continue
		}
		if _, used := d.TodoLists[key]; used {
			continue
		}
		if err := st.DelTodoItems(list); err != nil {
			logger.Printf("failed to delete todo list %q: %v", list, err)
		} else {
			logger.Printf("deleted todo list %q", list)
		}
	}
}

func restoreCursor(st storedefs.Store, deck string, nav *Navigator) {
	cursor, err := st.Cursor(deck)
	if err != nil {
		if !errors.Is(err, storedefs.ErrNoValue) {
			logger.Println("failed to restore cursor:", err)
		}
		return
	}
	if err := nav.Jump(cursor); err != nil {
		logger.Println("ignoring saved cursor:", err)
	}
}

// Writes the cursor and todo lists to the store when they change.
type saver struct {
	st     storedefs.Store
	deck   *Deck
	nav    *Navigator
	cursor int
	todos  map[string][]comps.TodoItemState
}

func newSaver(st storedefs.Store, d *Deck, nav *Navigator) *saver {
	s := &saver{st, d, nav, nav.Cursor(), make(map[string][]comps.TodoItemState)}
	for key, l := range d.TodoLists {
		s.todos[key] = l.Snapshot()
	}
	return s
}

func (s *saver) save() {
	if s.st == nil {
		return
	}
	if cursor := s.nav.Cursor(); cursor != s.cursor {
		if err := s.st.SetCursor(s.deck.Title, cursor); err != nil {
			logger.Println("failed to save cursor:", err)
		} else {
			s.cursor = cursor
		}
	}
	for key, l := range s.deck.TodoLists {
		snapshot := l.Snapshot()
		if slices.Equal(snapshot, s.todos[key]) {
			continue
		}
		items := make([]storedefs.TodoItem, len(snapshot))
		for i, state := range snapshot {
			items[i] = storedefs.TodoItem(state)
		}
		if err := s.st.SetTodoItems(todoKey(s.deck.Title, key), items); err != nil {
			logger.Printf("failed to save todo list %q: %v", key, err)
		} else {
			s.todos[key] = snapshot
		}
	}
}
