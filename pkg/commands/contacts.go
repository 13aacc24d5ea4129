package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/entrhq/assistant/pkg/contacts"
	"github.com/entrhq/assistant/pkg/fields"
)

// now is the clock used by the birthdays command.
var now = time.Now

func registerContactCommands(r *Registry) {
	for _, cmd := range []*Command{
		{Name: "add", Usage: "<name> [phone]", Description: "Add a contact or a phone to an existing contact", MinArgs: 1, MaxArgs: 2, Contacts: addContact},
		{Name: "search-contact", Usage: "<name>", Description: "Show everything stored for a contact", MinArgs: 1, MaxArgs: 1, Contacts: searchContact},
		{Name: "delete-contact", Usage: "<name>", Description: "Delete a contact", MinArgs: 1, MaxArgs: 1, Contacts: deleteContact},
		{Name: "change", Usage: "<name> <old phone> <new phone>", Description: "Replace a contact's phone", MinArgs: 3, MaxArgs: 3, Contacts: changePhone},
		{Name: "phone", Usage: "<name>", Description: "Show a contact's phones", MinArgs: 1, MaxArgs: 1, Contacts: showPhones},
		{Name: "all-contacts", Description: "Show all contacts", Contacts: showAllContacts},
		{Name: "add-birthday", Usage: "<name> <DD.MM.YYYY>", Description: "Set a contact's birthday", MinArgs: 2, MaxArgs: 2, Contacts: addBirthday},
		{Name: "show-birthday", Usage: "<name>", Description: "Show a contact's birthday", MinArgs: 1, MaxArgs: 1, Contacts: showBirthday},
		{Name: "birthdays", Description: "Birthdays to celebrate in the next week", Contacts: upcomingBirthdays},
		{Name: "find-birthday", Usage: "<part of DD.MM.YYYY>", Description: "Find contacts by part of their birthday", MaxArgs: 1, Contacts: findByBirthday},
		{Name: "add-email", Usage: "<name> <email>", Description: "Set a contact's email", MinArgs: 2, MaxArgs: 2, Contacts: addEmail},
		{Name: "add-address", Usage: "<name> <address...>", Description: "Set a contact's address", MinArgs: 2, MaxArgs: Unlimited, Contacts: addAddress},
	} {
		cmd.Kind = KindContacts
		r.Register(cmd)
	}
}

func findRecord(book *contacts.AddressBook, name string) (*contacts.Record, error) {
	record, ok := book.Find(name)
	if !ok {
		return nil, contacts.ErrNotFound
	}
	return record, nil
}

func addContact(args []string, book *contacts.AddressBook) (string, error) {
	name := args[0]

	record, ok := book.Find(name)
	if !ok {
		if len(args) < 2 {
			return "", needArguments("Please provide a name and a phone for a new contact.")
		}
		record, err := contacts.NewRecord(name)
		if err != nil {
			return "", err
		}
		if err := record.AddPhone(args[1]); err != nil {
			return "", err
		}
		book.Add(record)
		return "Contact added.", nil
	}

	if len(args) < 2 {
		return "Contact already exists.", nil
	}
	if err := record.AddPhone(args[1]); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

func searchContact(args []string, book *contacts.AddressBook) (string, error) {
	record, err := findRecord(book, args[0])
	if err != nil {
		return "", err
	}
	return record.Summary(), nil
}

func deleteContact(args []string, book *contacts.AddressBook) (string, error) {
	if err := book.Delete(args[0]); err != nil {
		return "", err
	}
	return "Contact deleted.", nil
}

func changePhone(args []string, book *contacts.AddressBook) (string, error) {
	record, err := findRecord(book, args[0])
	if err != nil {
		return "", err
	}
	if err := record.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return "Phone number updated.", nil
}

func showPhones(args []string, book *contacts.AddressBook) (string, error) {
	record, err := findRecord(book, args[0])
	if err != nil {
		return "", err
	}
	if len(record.Phones) == 0 {
		return "No phones saved.", nil
	}
	return record.PhoneList(), nil
}

func showAllContacts(_ []string, book *contacts.AddressBook) (string, error) {
	records := book.Records()
	if len(records) == 0 {
		return "No contacts saved.", nil
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}

func addBirthday(args []string, book *contacts.AddressBook) (string, error) {
	record, err := findRecord(book, args[0])
	if err != nil {
		return "", err
	}
	if err := record.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func showBirthday(args []string, book *contacts.AddressBook) (string, error) {
	record, err := findRecord(book, args[0])
	if err != nil {
		return "", err
	}
	if record.Birthday == nil {
		return "No birthday set.", nil
	}
	return fmt.Sprintf("%s's birthday is %s", record.Name, record.Birthday), nil
}

func upcomingBirthdays(_ []string, book *contacts.AddressBook) (string, error) {
	greetings := book.UpcomingBirthdays(now())
	if len(greetings) == 0 {
		return "No upcoming birthdays in the next week.", nil
	}

	sort.Slice(greetings, func(i, j int) bool {
		a, b := greetings[i], greetings[j]
		if !a.CongratulationDate.Equal(b.CongratulationDate) {
			return a.CongratulationDate.Before(b.CongratulationDate)
		}
		return a.Name < b.Name
	})

	lines := []string{"Upcoming birthdays:"}
	for _, g := range greetings {
		lines = append(lines, fmt.Sprintf("%s: %s", g.Name, g.CongratulationDate.Format(fields.BirthdayLayout)))
	}
	return strings.Join(lines, "\n"), nil
}

func findByBirthday(args []string, book *contacts.AddressBook) (string, error) {
	if len(args) == 0 {
		return "", needArguments("Please provide a part of birthday (DD.MM.YYYY)")
	}

	records := book.FindByBirthday(args[0])
	if len(records) == 0 {
		return "No contacts found", nil
	}

	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = fmt.Sprintf("%s's birthday is %s", r.Name, r.Birthday)
	}
	return strings.Join(lines, "\n"), nil
}

func addEmail(args []string, book *contacts.AddressBook) (string, error) {
	record, err := findRecord(book, args[0])
	if err != nil {
		return "", err
	}
	if err := record.SetEmail(args[1]); err != nil {
		return "", err
	}
	return "Email added.", nil
}

func addAddress(args []string, book *contacts.AddressBook) (string, error) {
	record, err := findRecord(book, args[0])
	if err != nil {
		return "", err
	}
	if err := record.SetAddress(strings.Join(args[1:], " ")); err != nil {
		return "", err
	}
	return "Address added.", nil
}
