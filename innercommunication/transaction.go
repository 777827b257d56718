package innercommunication

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Column names of the sales table, in file order.
const (
	ColTransactionID = "Transaction ID"
	ColDate          = "Date"
	ColTime          = "Time"
	ColItem          = "Item"
	ColCategory      = "Category"
	ColPrice         = "Price"
	ColQuantity      = "Quantity"
	ColTotalSpent    = "Total Spent"
	ColPaymentMethod = "Payment Method"
	ColCustomerType  = "Customer Type"
)

// Columns derived by the analyzer, never written to the table.
const (
	ColMonth = "Month"
	ColHour  = "Hour"
)

var TransactionColumns = []string{
	ColTransactionID,
	ColDate,
	ColTime,
	ColItem,
	ColCategory,
	ColPrice,
	ColQuantity,
	ColTotalSpent,
	ColPaymentMethod,
	ColCustomerType,
}

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

type Category string

const (
	Coffee Category = "Coffee"
	Tea    Category = "Tea"
	Bakery Category = "Bakery"
	Food   Category = "Food"
)

type PaymentMethod string

const (
	CreditCard    PaymentMethod = "Credit Card"
	Cash          PaymentMethod = "Cash"
	MobilePayment PaymentMethod = "Mobile Payment"
)

type CustomerType string

const (
	Regular   CustomerType = "Regular"
	New       CustomerType = "New"
	Transient CustomerType = "Transient"
)

// Transaction is one row of the sales table.
type Transaction struct {
	TransactionID int64         `csv:"Transaction ID"`
	Date          Date          `csv:"Date"`
	Time          ClockTime     `csv:"Time"`
	Item          string        `csv:"Item"`
	Category      Category      `csv:"Category"`
	Price         Money         `csv:"Price"`
	Quantity      int           `csv:"Quantity"`
	TotalSpent    Money         `csv:"Total Spent"`
	PaymentMethod PaymentMethod `csv:"Payment Method"`
	CustomerType  CustomerType  `csv:"Customer Type"`
}

// Month returns the calendar month of the transaction as YYYY-MM.
func (t Transaction) Month() string {
	return t.Date.Format(MonthLayout)
}

// Hour returns the hour of day parsed from the transaction time.
func (t Transaction) Hour() int {
	return t.Time.Hour
}

// Date is a calendar day serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// AddDays returns the day n days after d.
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalCSV() (string, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalCSV(s string) error {
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ClockTime is an hour:minute time of day, 24h.
type ClockTime struct {
	Hour   int
	Minute int
}

func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c ClockTime) MarshalCSV() (string, error) {
	return c.String(), nil
}

func (c *ClockTime) UnmarshalCSV(s string) error {
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Money is an exact currency amount written with two decimal places.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{d}
}

// MustMoney parses a literal amount such as "3.50". It panics on malformed
// input and is meant for static tables.
func MustMoney(s string) Money {
	return Money{decimal.RequireFromString(s)}
}

// Times returns the amount multiplied by an integer quantity.
func (m Money) Times(quantity int) Money {
	return Money{m.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) String() string {
	return m.StringFixed(2)
}

func (m Money) MarshalCSV() (string, error) {
	return m.String(), nil
}

func (m *Money) UnmarshalCSV(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	m.Decimal = d
	return nil
}
