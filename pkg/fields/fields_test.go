package fields

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "ten digits", input: "0123456789"},
		{name: "all nines", input: "9999999999"},
		{name: "too short", input: "012345678", wantErr: true},
		{name: "too long", input: "01234567890", wantErr: true},
		{name: "letters", input: "01234abcde", wantErr: true},
		{name: "plus prefix", input: "+123456789", wantErr: true},
		{name: "spaces", input: "012 345 67", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "non-ascii digits", input: "٠١٢٣٤٥٦٧٨٩", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, err := NewPhone(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalid))
				assert.Contains(t, err.Error(), "exactly 10 digits")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, phone.String())
		})
	}
}

func TestNewName(t *testing.T) {
	name, err := NewName("  Alice  ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name.String())

	_, err = NewName("   ")
	require.Error(t, err)
	assert.Equal(t, "Name cannot be empty.", err.Error())
}

func TestNewEmail(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "Alice@Example.COM", want: "alice@example.com"},
		{input: "a.b+c_d%e-f@mail.server.org", want: "a.b+c_d%e-f@mail.server.org"},
		{input: "no-at-sign.com", wantErr: true},
		{input: "user@domain", wantErr: true},
		{input: "user@domain.c", wantErr: true},
		{input: "user name@domain.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			email, err := NewEmail(tt.input)
			if tt.wantErr {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Contains(t, ve.Message, "user@example.com")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.String())
		})
	}
}

func TestNewAddress(t *testing.T) {
	addr, err := NewAddress(" Kyiv, Main st. 1 ")
	require.NoError(t, err)
	assert.Equal(t, "Kyiv, Main st. 1", addr.String())

	_, err = NewAddress("")
	assert.EqualError(t, err, "Address cannot be empty.")
}

func TestNewBirthday(t *testing.T) {
	t.Run("valid past date", func(t *testing.T) {
		b, err := NewBirthday("01.01.2000")
		require.NoError(t, err)
		assert.Equal(t, "01.01.2000", b.String())
		assert.Equal(t, 2000, b.Date().Year())
		assert.Equal(t, time.January, b.Date().Month())
		assert.Equal(t, 1, b.Date().Day())
	})

	t.Run("tomorrow is in the future", func(t *testing.T) {
		tomorrow := time.Now().AddDate(0, 0, 1).Format(BirthdayLayout)
		_, err := NewBirthday(tomorrow)
		assert.EqualError(t, err, "Birthday cannot be in the future.")
	})

	t.Run("today is allowed", func(t *testing.T) {
		now := time.Date(2024, time.May, 10, 15, 0, 0, 0, time.UTC)
		_, err := NewBirthdayAt("10.05.2024", now)
		assert.NoError(t, err)
	})

	malformed := []string{"2000-01-01", "1.1.2000", "01.01.00", "31.02.2000", "01.13.2000", "", "01.01.2000x"}
	for _, raw := range malformed {
		t.Run("malformed "+raw, func(t *testing.T) {
			_, err := NewBirthday(raw)
			assert.EqualError(t, err, "Invalid date format. Use DD.MM.YYYY")
		})
	}
}

func TestValueImmutableOnFailedEdit(t *testing.T) {
	phone := MustPhone("0123456789")

	replacement, err := NewPhone("bad")
	if err == nil {
		phone = replacement
	}

	assert.Equal(t, "0123456789", phone.String())
	assert.True(t, replacement.IsZero())
}
