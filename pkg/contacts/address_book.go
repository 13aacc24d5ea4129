package contacts

import (
	"sort"
	"strings"
	"time"
)

// Greeting is one entry of the upcoming birthdays list.
type Greeting struct {
	Name               string
	CongratulationDate time.Time
}

// AddressBook maps contact names to their records. Every key equals the
// record's Name value.
type AddressBook struct {
	records map[string]*Record
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// Add inserts record, replacing any record stored under the same name.
func (b *AddressBook) Add(record *Record) {
	b.records[record.Name.String()] = record
}

// Find looks a record up by its exact name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	record, ok := b.records[name]
	return record, ok
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return ErrNotFound
	}
	delete(b.records, name)
	return nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns every record ordered by name.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.records))
	for _, r := range b.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name.String() < out[j].Name.String()
	})
	return out
}

// UpcomingBirthdays lists the contacts to congratulate within the seven days
// starting at today. A birthday falling on a weekend is moved to the
// following Monday. The order of the result is unspecified.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []Greeting {
	today = midnight(today)
	var out []Greeting

	for _, record := range b.records {
		if record.Birthday == nil {
			continue
		}

		born := record.Birthday.Date()
		next := occurrence(born, today.Year(), today.Location())
		if next.Before(today) {
			next = occurrence(born, today.Year()+1, today.Location())
		}

		days := daysBetween(today, next)
		if days < 0 || days > 7 {
			continue
		}

		switch next.Weekday() {
		case time.Saturday:
			next = next.AddDate(0, 0, 2)
		case time.Sunday:
			next = next.AddDate(0, 0, 1)
		}

		out = append(out, Greeting{Name: record.Name.String(), CongratulationDate: next})
	}

	return out
}

// FindByBirthday returns the records whose stored birthday string contains
// query, ordered by name.
func (b *AddressBook) FindByBirthday(query string) []*Record {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []*Record
	for _, record := range b.Records() {
		if record.Birthday == nil {
			continue
		}
		if strings.Contains(strings.ToLower(record.Birthday.String()), query) {
			out = append(out, record)
		}
	}
	return out
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b, ignoring DST shifts.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// occurrence places born's month and day in year. February 29 becomes
// March 1 in common years.
func occurrence(born time.Time, year int, loc *time.Location) time.Time {
	return time.Date(year, born.Month(), born.Day(), 0, 0, 0, 0, loc)
}
