package app

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/daryltucker/client-data/internal/model"
	"github.com/daryltucker/client-data/internal/output"
	"github.com/daryltucker/client-data/internal/records"
)

func header(w io.Writer, title string) {
	fmt.Fprintln(w, "-----------------------------------")
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintln(w, "-----------------------------------")
}

// PrintClientList renders clients as a table.
func PrintClientList(w io.Writer, clients []model.Client) {
	fmt.Fprintf(w, "\n                Client List (%d) Client(s).\n\n", len(clients))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACCOUNT NUMBER\tPIN CODE\tCLIENT NAME\tPHONE\tBALANCE")
	for _, c := range clients {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.AccountNumber, c.PinCode, c.Name, c.Phone, formatBalance(c.Balance))
	}
	_ = tw.Flush()
	if len(clients) == 0 {
		fmt.Fprintln(w, "\nNo clients available in the system!")
	}
}

// PrintCard renders the details of one client.
func PrintCard(w io.Writer, c model.Client) {
	fmt.Fprintln(w, "\nThe following are the client details:")
	fmt.Fprintln(w, "-----------------------------------")
	fmt.Fprintf(w, "Account Number: %s\n", c.AccountNumber)
	fmt.Fprintf(w, "Pin Code      : %s\n", c.PinCode)
	fmt.Fprintf(w, "Name          : %s\n", c.Name)
	fmt.Fprintf(w, "Phone         : %s\n", c.Phone)
	fmt.Fprintf(w, "Account Balance: %s\n", formatBalance(c.Balance))
	fmt.Fprintln(w, "-----------------------------------")
}

// PrintNotFound reports a missing account with a suggestion when one is close.
func PrintNotFound(w io.Writer, store *records.Store, account string) {
	fmt.Fprintf(w, "\nClient with Account Number (%s) is Not Found!\n", account)
	if near, ok := store.Suggest(account); ok {
		fmt.Fprintf(w, "Did you mean (%s)?\n", near)
	}
}

func formatBalance(b float64) string {
	return strconv.FormatFloat(b, 'f', 2, 64)
}

func (s *Session) showClientList() error {
	clients, errs := s.store.List()
	for _, err := range errs {
		output.Logger.Warn("Skipping malformed record", "file", s.store.Path(), "error", err)
	}
	PrintClientList(s.out, clients)
	return nil
}

func (s *Session) readAccount(prompt string) (string, error) {
	account, ok := s.prompt.ReadText(prompt)
	if !ok {
		return "", errEndOfInput
	}
	return account, nil
}

// readDetails asks for every field except the account number.
func (s *Session) readDetails(c *model.Client) error {
	var ok bool
	if c.PinCode, ok = s.prompt.ReadText("Enter PinCode? "); !ok {
		return errEndOfInput
	}
	if c.Name, ok = s.prompt.ReadText("Enter Name? "); !ok {
		return errEndOfInput
	}
	if c.Phone, ok = s.prompt.ReadText("Enter Phone? "); !ok {
		return errEndOfInput
	}
	if c.Balance, ok = s.prompt.ReadFloat("Enter AccountBalance? "); !ok {
		return errEndOfInput
	}
	return nil
}

func (s *Session) addNewClient() error {
	header(s.out, "Add New Client Screen")

	for {
		account, err := s.readAccount("Enter Account Number? ")
		if err != nil {
			return err
		}
		if s.store.Exists(account) {
			fmt.Fprintf(s.out, "Client with [%s] already exists, enter another Account Number.\n", account)
			continue
		}

		c := model.Client{AccountNumber: account}
		if err := s.readDetails(&c); err != nil {
			return err
		}
		if err := s.store.Add(c); err != nil {
			if errors.Is(err, records.ErrInvalidField) {
				fmt.Fprintf(s.out, "Client not added: %v\n", err)
				return nil
			}
			return err
		}
		fmt.Fprintln(s.out, "\nClient Added Successfully.")
		return nil
	}
}

func (s *Session) deleteClient() error {
	header(s.out, "Delete Client Screen")

	account, err := s.readAccount("Please enter Account Number? ")
	if err != nil {
		return err
	}
	c, err := s.store.Find(account)
	if errors.Is(err, records.ErrNotFound) {
		PrintNotFound(s.out, s.store, account)
		return nil
	}
	if err != nil {
		return err
	}

	PrintCard(s.out, c)
	yes, ok := s.prompt.Confirm("\nAre you sure you want to delete this client? y/n ? ")
	if !ok {
		return errEndOfInput
	}
	if !yes {
		return nil
	}
	if err := s.store.Delete(account); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "\nClient Deleted Successfully.")
	return nil
}

func (s *Session) updateClientInfo() error {
	header(s.out, "Update Client Info Screen")

	account, err := s.readAccount("Please enter Account Number? ")
	if err != nil {
		return err
	}
	c, err := s.store.Find(account)
	if errors.Is(err, records.ErrNotFound) {
		PrintNotFound(s.out, s.store, account)
		return nil
	}
	if err != nil {
		return err
	}

	PrintCard(s.out, c)
	yes, ok := s.prompt.Confirm("\nAre you sure you want to update this client? y/n ? ")
	if !ok {
		return errEndOfInput
	}
	if !yes {
		return nil
	}
	if err := s.readDetails(&c); err != nil {
		return err
	}
	if err := s.store.Update(c); err != nil {
		if errors.Is(err, records.ErrInvalidField) {
			fmt.Fprintf(s.out, "Client not updated: %v\n", err)
			return nil
		}
		return err
	}
	fmt.Fprintln(s.out, "\nClient Updated Successfully.")
	return nil
}

func (s *Session) findClient() error {
	header(s.out, "Find Client Screen")

	account, err := s.readAccount("Please enter Account Number? ")
	if err != nil {
		return err
	}
	c, err := s.store.Find(account)
	if errors.Is(err, records.ErrNotFound) {
		PrintNotFound(s.out, s.store, account)
		return nil
	}
	if err != nil {
		return err
	}
	PrintCard(s.out, c)
	return nil
}
