package autogaap

import (
	"fmt"
	"strings"
	"time"

	"github.com/aesfinancelab/autogaap/date"
)

// AccountType classifies a posting line into the five GAAP account classes,
// with Other as the catch-all for anything unrecognized.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Revenue   AccountType = "revenue"
	Expense   AccountType = "expense"
	Other     AccountType = "other"
)

// DefaultTypeOrder is the fixed presentation order for per-type totals.
// Unrecognized types encountered in a ledger are appended after these.
var DefaultTypeOrder = []AccountType{Asset, Liability, Equity, Revenue, Expense, Other}

// CanonicalAccountType lowercases a raw account type, substituting Other only
// when blank. Unlike ParseAccountType it keeps unrecognized values distinct,
// so the aggregation can total them under their own buckets.
func CanonicalAccountType(s string) AccountType {
	t := AccountType(strings.ToLower(strings.TrimSpace(s)))
	if t == "" {
		return Other
	}
	return t
}

// ParseAccountType normalizes a raw account type. Unknown or blank values
// coerce to Other; the coercion is deliberate, the health check reports the
// missing classification separately.
func ParseAccountType(s string) AccountType {
	switch AccountType(strings.ToLower(strings.TrimSpace(s))) {
	case Asset:
		return Asset
	case Liability:
		return Liability
	case Equity:
		return Equity
	case Revenue:
		return Revenue
	case Expense:
		return Expense
	default:
		return Other
	}
}

// Title returns the display form of the account type.
func (t AccountType) Title() string {
	if t == "" {
		return "Other"
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// Side is the debit or credit side of a posting.
type Side int

const (
	DebitSide Side = iota
	CreditSide
)

// NormalBalance returns the side on which increases to this account type are
// recorded. Asset and expense accounts are debit-normal; liability, equity
// and revenue accounts are credit-normal. Unrecognized types default to
// debit-normal.
func (t AccountType) NormalBalance() Side {
	switch t {
	case Liability, Equity, Revenue:
		return CreditSide
	default:
		return DebitSide
	}
}

// UnspecifiedAccount is the placeholder used when a line carries no account name.
const UnspecifiedAccount = "Unspecified Account"

// LineItem is one side of a double-entry posting.
type LineItem struct {
	AccountType AccountType `json:"accountType"`
	AccountName string      `json:"accountName"`
	Debit       Amount      `json:"debit"`
	Credit      Amount      `json:"credit"`
}

// Name returns the account name, substituting the placeholder when blank.
func (li LineItem) Name() string {
	if strings.TrimSpace(li.AccountName) == "" {
		return UnspecifiedAccount
	}
	return li.AccountName
}

// IsCash reports whether this line posts against a cash asset account.
func (li LineItem) IsCash() bool {
	return ParseAccountType(string(li.AccountType)) == Asset &&
		strings.Contains(strings.ToLower(li.AccountName), "cash")
}

// EntryMeta carries the free-form journal builder flags attached to an entry.
// It is persisted verbatim and never interpreted by the engine.
type EntryMeta map[string]any

// JournalEntry is a dated, described group of line items whose debits and
// credits should sum to equal amounts. Entries are immutable once appended to
// a ledger; they are only ever removed by a full clear.
type JournalEntry struct {
	ID            int64      `json:"id"`
	JournalNumber string     `json:"journalNumber"`
	PostDate      date.Date  `json:"postDate"`
	Description   string     `json:"description"`
	Lines         []LineItem `json:"entries"`
	Recurring     bool       `json:"isRecurring,omitempty"`
	Meta          EntryMeta  `json:"meta,omitempty"`
}

// Label identifies the entry in findings: its journal number if it has one,
// otherwise its 1-based position.
func (e JournalEntry) Label(index int) string {
	if e.JournalNumber != "" {
		return e.JournalNumber
	}
	return fmt.Sprintf("Entry %d", index+1)
}

// Debits returns the rounded sum of the entry's debit amounts.
func (e JournalEntry) Debits() Amount {
	var sum Amount
	for _, li := range e.Lines {
		sum = sum.Add(li.Debit)
	}
	return sum.Round2()
}

// Credits returns the rounded sum of the entry's credit amounts.
func (e JournalEntry) Credits() Amount {
	var sum Amount
	for _, li := range e.Lines {
		sum = sum.Add(li.Credit)
	}
	return sum.Round2()
}

// Balanced reports whether debits equal credits within the tolerance.
func (e JournalEntry) Balanced() bool {
	return e.Debits().Sub(e.Credits()).Within(Tolerance)
}

// NewJournalNumber builds the timestamped journal number for a manually
// posted entry from its two account names.
func NewJournalNumber(account1, account2 string) string {
	sanitize := func(s string) string {
		if s == "" {
			s = "GEN"
		}
		return strings.ToUpper(strings.Join(strings.Fields(s), "-"))
	}
	return fmt.Sprintf("CPU-%s-%s-%d", sanitize(account1), sanitize(account2), time.Now().UnixMilli())
}

// NewRecurringNumber builds the timestamped journal number for an entry
// generated by the recurring scheduler.
func NewRecurringNumber() string {
	return fmt.Sprintf("R-%d", time.Now().UnixMilli())
}
