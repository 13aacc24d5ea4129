package contacts

import (
	"testing"
	"time"

	"github.com/entrhq/assistant/pkg/fields"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func withBirthday(t *testing.T, r *Record, raw string) *Record {
	t.Helper()
	b, err := fields.NewBirthdayAt(raw, time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	r.Birthday = &b
	return r
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddressBookAddFindDelete(t *testing.T) {
	book := NewAddressBook()
	book.Add(newRecord(t, "Alice", "0123456789"))

	r, ok := book.Find("Alice")
	require.True(t, ok)
	assert.Equal(t, "Alice", r.Name.String())

	_, ok = book.Find("alice")
	assert.False(t, ok, "lookup is exact")

	book.Add(newRecord(t, "Alice", "1111111111"))
	assert.Equal(t, 1, book.Len(), "adding under an existing name overwrites")
	r, _ = book.Find("Alice")
	assert.Equal(t, "1111111111", r.PhoneList())

	assert.ErrorIs(t, book.Delete("Bob"), ErrNotFound)
	assert.Equal(t, 1, book.Len())

	require.NoError(t, book.Delete("Alice"))
	assert.Equal(t, 0, book.Len())
}

func TestRecordPhones(t *testing.T) {
	r := newRecord(t, "Alice", "0123456789", "0123456789")
	assert.Len(t, r.Phones, 2, "duplicates are kept")

	t.Run("edit validates first", func(t *testing.T) {
		err := r.EditPhone("0123456789", "bad")
		require.Error(t, err)
		assert.Equal(t, "0123456789; 0123456789", r.PhoneList())
	})

	t.Run("edit missing phone", func(t *testing.T) {
		assert.ErrorIs(t, r.EditPhone("5555555555", "9876543210"), ErrPhoneNotFound)
	})

	t.Run("edit replaces first occurrence", func(t *testing.T) {
		require.NoError(t, r.EditPhone("0123456789", "9876543210"))
		assert.Equal(t, "9876543210; 0123456789", r.PhoneList())
	})

	t.Run("find and remove", func(t *testing.T) {
		p, ok := r.FindPhone("9876543210")
		require.True(t, ok)
		assert.Equal(t, "9876543210", p.String())

		require.NoError(t, r.RemovePhone("9876543210"))
		assert.Equal(t, "0123456789", r.PhoneList())
		assert.ErrorIs(t, r.RemovePhone("9876543210"), ErrPhoneNotFound)
	})
}

func TestRecordSettersOverwrite(t *testing.T) {
	r := newRecord(t, "Alice")

	require.NoError(t, r.SetEmail("A@B.com"))
	require.NoError(t, r.SetEmail("c@d.org"))
	assert.Equal(t, "c@d.org", r.Email.String())

	assert.Error(t, r.SetEmail("broken"))
	assert.Equal(t, "c@d.org", r.Email.String(), "failed edit keeps the old value")

	require.NoError(t, r.SetAddress("Main st. 1"))
	require.NoError(t, r.SetBirthday("15.03.1990"))

	summary := r.Summary()
	assert.Contains(t, summary, "c@d.org")
	assert.Contains(t, summary, "Main st. 1")
	assert.Contains(t, summary, "15.03.1990")
}

func TestRecordSummaryPlaceholders(t *testing.T) {
	r := newRecord(t, "Alice", "0123456789")
	summary := r.Summary()
	assert.Contains(t, summary, "0123456789")
	assert.Contains(t, summary, "no email")
	assert.Contains(t, summary, "no address")
}

func TestUpcomingBirthdays(t *testing.T) {
	monday := date(2024, time.June, 3)

	tests := []struct {
		name     string
		birthday string
		today    time.Time
		want     *time.Time
	}{
		{name: "today", birthday: "03.06.1990", today: monday, want: ptr(date(2024, time.June, 3))},
		{name: "exactly seven days", birthday: "10.06.1990", today: monday, want: ptr(date(2024, time.June, 10))},
		{name: "eight days excluded", birthday: "11.06.1990", today: monday},
		{name: "saturday moves to monday", birthday: "08.06.1985", today: monday, want: ptr(date(2024, time.June, 10))},
		{name: "sunday moves to monday", birthday: "09.06.1985", today: monday, want: ptr(date(2024, time.June, 10))},
		{name: "yesterday rolls to next year", birthday: "02.06.1990", today: monday},
		{name: "across new year", birthday: "01.01.1990", today: date(2024, time.December, 28), want: ptr(date(2025, time.January, 1))},
		{name: "leap day in common year", birthday: "29.02.2000", today: date(2023, time.February, 25), want: ptr(date(2023, time.March, 1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := NewAddressBook()
			book.Add(withBirthday(t, newRecord(t, "Alice"), tt.birthday))
			book.Add(newRecord(t, "NoBirthday", "0123456789"))

			got := book.UpcomingBirthdays(tt.today)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, "Alice", got[0].Name)
			assert.True(t, tt.want.Equal(got[0].CongratulationDate),
				"got %s, want %s", got[0].CongratulationDate.Format("02.01.2006"), tt.want.Format("02.01.2006"))
		})
	}
}

func TestFindByBirthday(t *testing.T) {
	book := NewAddressBook()
	book.Add(withBirthday(t, newRecord(t, "Bob"), "15.03.1990"))
	book.Add(withBirthday(t, newRecord(t, "Alice"), "01.03.1985"))
	book.Add(newRecord(t, "Carol"))

	got := book.FindByBirthday(".03.")
	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0].Name.String())
	assert.Equal(t, "Bob", got[1].Name.String())

	assert.Empty(t, book.FindByBirthday("2001"))
}

func ptr(t time.Time) *time.Time {
	return &t
}
