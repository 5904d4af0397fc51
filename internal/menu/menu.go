// Package menu renders the main menu and turns console input into a Choice.
package menu

import (
	"fmt"
	"io"
	"strconv"

	"github.com/daryltucker/client-data/internal/input"
)

// Choice is one of the fixed main menu options.
type Choice uint16

const (
	ShowClientList Choice = iota + 1
	AddNewClient
	DeleteClient
	UpdateClientInfo
	FindClient
	Exit
)

// Choices lists every option in menu order.
var Choices = []Choice{ShowClientList, AddNewClient, DeleteClient, UpdateClientInfo, FindClient, Exit}

func (c Choice) String() string {
	switch c {
	case ShowClientList:
		return "Show Client List"
	case AddNewClient:
		return "Add New Client"
	case DeleteClient:
		return "Delete Client"
	case UpdateClientInfo:
		return "Update Client Info"
	case FindClient:
		return "Find Client"
	case Exit:
		return "Exit"
	default:
		return "Choice(" + strconv.Itoa(int(c)) + ")"
	}
}

const rule = "================================================================="

// Render prints the main menu screen.
func Render(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "                        Main Menu Screen                         ")
	fmt.Fprintln(w, rule)
	for _, c := range Choices {
		fmt.Fprintf(w, "          [%d] %s.\n", c, c)
	}
	fmt.Fprintf(w, "%s\n\n", rule)
}

// Prompt is shown before every menu read.
var Prompt = fmt.Sprintf("Choose what do you want to do? [%d to %d]? ", ShowClientList, Exit)

// Choose reads lines from p until a valid option is entered. ok is false
// when the input ends first.
func Choose(p *input.Prompter) (c Choice, ok bool) {
	n, outcome := p.ReadNumber(Prompt, uint16(ShowClientList), uint16(Exit))
	if outcome != input.Pass {
		return 0, false
	}
	return Choice(n), true
}
