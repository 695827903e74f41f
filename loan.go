package ledgerbook

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Book identifies one of the two independent loan collections.
type Book int

const (
	// Taken holds loans where the counterparty lent money to the user.
	Taken Book = iota
	// Given holds loans where the user lent money to the counterparty.
	Given
)

func (b Book) String() string {
	switch b {
	case Taken:
		return "taken"
	case Given:
		return "given"
	default:
		return "unknown"
	}
}

// ParseBook parses a string into a Book.
func ParseBook(s string) (Book, error) {
	switch s {
	case "taken":
		return Taken, nil
	case "given":
		return Given, nil
	default:
		return 0, fmt.Errorf("unknown loan book: %q", s)
	}
}

// Installment is one scheduled partial repayment of a loan's principal.
// It is owned exclusively by its parent loan and never exists independently.
type Installment struct {
	ID       string
	DueDate  Date
	Amount   Money
	Paid     bool
	PaidDate Date // zero unless Paid
}

// MarshalJSON implements the json.Marshaler interface for Installment.
func (i Installment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", i.ID)
	w.Append("dueDate", i.DueDate)
	w.EmbedFrom(i.Amount)
	w.Append("paid", i.Paid)
	if i.Paid {
		w.Append("paidDate", i.PaidDate)
	}
	return w.MarshalJSON()
}

// Loan is a peer-to-peer loan with an optional amortized repayment schedule.
//
// Principal and installment count are fixed at creation; the schedule is
// generated once and its dates and amounts are immutable afterwards. Only the
// paid state of individual installments changes over the loan's life.
type Loan struct {
	ID               string
	Counterparty     string
	Principal        Money // positive
	StartDate        Date
	DueDate          Date // optional
	InstallmentCount int
	Notes            string
	Schedule         []Installment
}

// NewLoan creates a loan and generates its schedule when count > 0.
// A loan with count == 0 has an empty schedule by construction; the schedule
// generator is never called for it.
func NewLoan(counterparty string, principal Money, start, due Date, count int, notes string) (Loan, error) {
	l := Loan{
		Counterparty:     counterparty,
		Principal:        principal,
		StartDate:        start,
		DueDate:          due,
		InstallmentCount: count,
		Notes:            notes,
	}
	if err := l.Validate(); err != nil {
		return Loan{}, err
	}
	if count > 0 {
		schedule, err := GenerateSchedule(principal, start, count)
		if err != nil {
			return Loan{}, err
		}
		l.Schedule = schedule
	}
	return l, nil
}

// Validate checks the loan's fields, failing fast on precondition violations.
func (l Loan) Validate() error {
	if l.Counterparty == "" {
		return errors.New("loan counterparty name is missing")
	}
	if !l.Principal.IsPositive() {
		return fmt.Errorf("loan principal must be positive, got %s", l.Principal)
	}
	if l.StartDate.IsZero() {
		return errors.New("loan start date is missing")
	}
	if l.InstallmentCount < 0 {
		return fmt.Errorf("loan installment count must not be negative, got %d", l.InstallmentCount)
	}
	return nil
}

// GenerateSchedule produces an amortized schedule of count monthly
// installments for a principal.
//
// Each installment carries round(principal/count, minor unit) rounded half
// away from zero; the rounding residue over count installments is folded into
// the last one, so the schedule amounts always sum back to the principal
// exactly. Due dates fall on successive calendar months starting one month
// after start, clamped to the last day of shorter months.
//
// count < 1 is a precondition violation and fails with an error.
func GenerateSchedule(principal Money, start Date, count int) ([]Installment, error) {
	if count < 1 {
		return nil, fmt.Errorf("installment count must be at least 1, got %d", count)
	}
	if !principal.IsPositive() {
		return nil, fmt.Errorf("principal must be positive, got %s", principal)
	}

	per := principal.DivN(count).Round()
	schedule := make([]Installment, count)
	for i := range schedule {
		schedule[i] = Installment{
			ID:      NewID(),
			DueDate: start.AddMonths(i + 1),
			Amount:  per,
		}
	}

	// Fold the rounding residue into the last installment so that the
	// schedule sums back to the principal exactly.
	residual := principal.Sub(per.MulN(count))
	if !residual.IsZero() {
		last := &schedule[count-1]
		last.Amount = last.Amount.Add(residual).Round()
	}
	return schedule, nil
}

// Toggle flips the paid state of the installment with the given id. Moving to
// paid stamps PaidDate with on; moving back clears it. No other installment
// is affected. It returns the updated installment.
func (l *Loan) Toggle(installmentID string, on Date) (Installment, error) {
	for i := range l.Schedule {
		inst := &l.Schedule[i]
		if inst.ID != installmentID {
			continue
		}
		if inst.Paid {
			inst.Paid = false
			inst.PaidDate = Date{}
		} else {
			inst.Paid = true
			inst.PaidDate = on
		}
		return *inst, nil
	}
	return Installment{}, fmt.Errorf("no installment %q in loan %q", installmentID, l.ID)
}

// Outstanding returns the sum of unpaid installment amounts. For a loan
// without a schedule it is the full principal.
func (l Loan) Outstanding() Money {
	if len(l.Schedule) == 0 {
		return l.Principal
	}
	var sum Money
	for _, inst := range l.Schedule {
		if !inst.Paid {
			sum = sum.Add(inst.Amount)
		}
	}
	return sum
}

// Repaid returns the sum of paid installment amounts.
func (l Loan) Repaid() Money {
	var sum Money
	for _, inst := range l.Schedule {
		if inst.Paid {
			sum = sum.Add(inst.Amount)
		}
	}
	return sum
}

// MarshalJSON implements the json.Marshaler interface for Loan.
func (l Loan) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", l.ID)
	w.Append("counterparty", l.Counterparty)
	w.Append("principal", l.Principal)
	w.Append("startDate", l.StartDate)
	if !l.DueDate.IsZero() {
		w.Append("dueDate", l.DueDate)
	}
	w.Append("installmentCount", l.InstallmentCount)
	w.Optional("notes", l.Notes)
	w.Optional("schedule", l.Schedule)
	return w.MarshalJSON()
}

// NewID returns a new random unique identifier.
func NewID() string { return uuid.NewString() }
