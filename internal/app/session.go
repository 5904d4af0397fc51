package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/daryltucker/client-data/internal/input"
	"github.com/daryltucker/client-data/internal/menu"
	"github.com/daryltucker/client-data/internal/output"
	"github.com/daryltucker/client-data/internal/records"
)

// errEndOfInput ends the session without reporting a failure.
var errEndOfInput = errors.New("end of input")

// Session is one interactive run of the main menu against a Store.
type Session struct {
	store  *records.Store
	prompt *input.Prompter
	out    io.Writer
}

// NewSession wires a Session to its store and console streams.
func NewSession(store *records.Store, in io.Reader, out io.Writer) *Session {
	return &Session{
		store:  store,
		prompt: input.NewPrompter(in, out),
		out:    out,
	}
}

// Run shows the menu until Exit is chosen or the input ends.
func (s *Session) Run() error {
	for {
		menu.Render(s.out)
		choice, ok := menu.Choose(s.prompt)
		if !ok {
			return s.endOfInput()
		}
		output.Logger.Debug("Menu choice", "choice", choice.String())

		if choice == menu.Exit {
			fmt.Fprintln(s.out, "Program ends :-)")
			return nil
		}

		if err := s.dispatch(choice); err != nil {
			if errors.Is(err, errEndOfInput) {
				return s.endOfInput()
			}
			return err
		}

		if _, ok := s.prompt.ReadLine("\nPress Enter to go back to main menu..."); !ok {
			return s.endOfInput()
		}
	}
}

func (s *Session) dispatch(c menu.Choice) error {
	switch c {
	case menu.ShowClientList:
		return s.showClientList()
	case menu.AddNewClient:
		return s.addNewClient()
	case menu.DeleteClient:
		return s.deleteClient()
	case menu.UpdateClientInfo:
		return s.updateClientInfo()
	case menu.FindClient:
		return s.findClient()
	default:
		return fmt.Errorf("unhandled menu choice %d", c)
	}
}

func (s *Session) endOfInput() error {
	fmt.Fprintln(s.out)
	if err := s.prompt.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
