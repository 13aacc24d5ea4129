package fields

import "time"

// BirthdayLayout is the DD.MM.YYYY layout birthdays are entered and stored in.
const BirthdayLayout = "02.01.2006"

const (
	msgBirthdayFormat = "Invalid date format. Use DD.MM.YYYY"
	msgBirthdayFuture = "Birthday cannot be in the future."
)

// Birthday keeps the date exactly as entered together with the parsed date.
type Birthday struct {
	raw  string
	date time.Time
}

// NewBirthday validates raw against the current moment.
func NewBirthday(raw string) (Birthday, error) {
	return NewBirthdayAt(raw, time.Now())
}

// NewBirthdayAt validates raw as a DD.MM.YYYY date that is not after now.
func NewBirthdayAt(raw string, now time.Time) (Birthday, error) {
	date, err := time.ParseInLocation(BirthdayLayout, raw, now.Location())
	if err != nil {
		return Birthday{}, Invalid(msgBirthdayFormat)
	}
	if date.After(now) {
		return Birthday{}, Invalid(msgBirthdayFuture)
	}
	return Birthday{raw: raw, date: date}, nil
}

// String returns the date as originally entered.
func (b Birthday) String() string { return b.raw }

// Date returns the parsed date at midnight.
func (b Birthday) Date() time.Time { return b.date }

func (b Birthday) IsZero() bool { return b.raw == "" }
