package deck

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"src.prismdeck.dev/pkg/comps"
	"src.prismdeck.dev/pkg/vdom"
)

// Names of widgets that can be put on slides.
const (
	HelloName   = "hello-name"
	TodoList    = "todo-list"
	CounterList = "counter-list"
)

var widgetNames = []string{HelloName, TodoList, CounterList}

// ErrBadCatalogue wraps all errors about the content of a catalogue.
var ErrBadCatalogue = errors.New("bad deck catalogue")

//go:embed default.yaml
var defaultCatalogue []byte

// Catalogue lists the slides of a deck.
type Catalogue struct {
	Title string `yaml:"title" json:"title"`
	// Directory image paths are relative to.
	Assets string      `yaml:"assets" json:"assets"`
	Slides []SlideSpec `yaml:"slides" json:"slides"`
}

// SlideSpec describes one slide: either an image, optionally with a title, or
// a widget.
type SlideSpec struct {
	Image  string `yaml:"image,omitempty" json:"image,omitempty"`
	Title  string `yaml:"title,omitempty" json:"title,omitempty"`
	Widget string `yaml:"widget,omitempty" json:"widget,omitempty"`
	// Key the state of the widget is saved under. Defaults to the name of the
	// widget.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// StateKey returns the key the state of a widget slide is saved under.
func (s SlideSpec) StateKey() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Widget
}

// Default returns the built-in catalogue.
func Default() *Catalogue {
	c, err := Parse(bytes.NewReader(defaultCatalogue))
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a catalogue from a file. An empty path selects the built-in
// catalogue.
func Load(name string) (*Catalogue, error) {
	if name == "" {
		return Default(), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// Parse parses and validates a YAML catalogue.
func Parse(r io.Reader) (*Catalogue, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Catalogue
	if err := dec.Decode(&c); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrBadCatalogue)
		}
		return nil, fmt.Errorf("%w: %v", ErrBadCatalogue, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	if c.Title == "" {
		c.Title = "untitled"
	}
	return &c, nil
}

func (c *Catalogue) validate() error {
	if len(c.Slides) == 0 {
		return fmt.Errorf("%w: no slides", ErrBadCatalogue)
	}
	keys := make(map[string]bool)
	for i, s := range c.Slides {
		if s.Widget == TodoList {
			if keys[s.StateKey()] {
				return fmt.Errorf("%w: slide %d: duplicate todo list %q", ErrBadCatalogue, i+1, s.StateKey())
			}
			keys[s.StateKey()] = true
		}
		switch {
		case s.Image == "" && s.Widget == "":
			return fmt.Errorf("%w: slide %d: needs an image or a widget", ErrBadCatalogue, i+1)
		case s.Image != "" && s.Widget != "":
			return fmt.Errorf("%w: slide %d: has both an image and a widget", ErrBadCatalogue, i+1)
		case s.Widget != "" && !isWidget(s.Widget):
			return fmt.Errorf("%w: slide %d: unknown widget %q", ErrBadCatalogue, i+1, s.Widget)
		case s.Widget != "" && s.Title != "":
			return fmt.Errorf("%w: slide %d: widget slides can't have a title", ErrBadCatalogue, i+1)
		case s.Image != "" && s.Name != "":
			return fmt.Errorf("%w: slide %d: image slides can't have a name", ErrBadCatalogue, i+1)
		}
	}
	return nil
}

func isWidget(name string) bool {
	for _, w := range widgetNames {
		if name == w {
			return true
		}
	}
	return false
}

// Deck holds the slides instantiated from a catalogue.
type Deck struct {
	Title  string
	Slides []vdom.Component
	// Todo lists, keyed by their state keys.
	TodoLists map[string]*comps.TodoList
}

// Instantiate creates the slides of the catalogue. If todos is not nil, it is
// called with the state key of each todo list to get the items to seed it
// with.
func (c *Catalogue) Instantiate(todos func(key string) []comps.TodoItemState) *Deck {
	d := &Deck{Title: c.Title, TodoLists: make(map[string]*comps.TodoList)}
	for _, s := range c.Slides {
		var slide vdom.Component
		switch s.Widget {
		case "":
			slide = comps.ImageSlide{Src: path.Join(c.Assets, s.Image), Title: s.Title}
		case HelloName:
			slide = comps.NewBoundText("World")
		case TodoList:
			var initial []comps.TodoItemState
			if todos != nil {
				initial = todos(s.StateKey())
			}
			l := comps.NewTodoList(initial...)
			d.TodoLists[s.StateKey()] = l
			slide = l
		case CounterList:
			slide = comps.NewCounterList()
		}
		d.Slides = append(d.Slides, slide)
	}
	return d
}

// Describe returns a one-line description of a slide, used when listing a
// catalogue.
func (s SlideSpec) Describe() string {
	switch {
	case s.Widget != "" && s.Name != "":
		return fmt.Sprintf("[%s %s]", s.Widget, s.Name)
	case s.Widget != "":
		return "[" + s.Widget + "]"
	case s.Title != "":
		return s.Image + " - " + s.Title
	default:
		return s.Image
	}
}
