package autogaap

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aesfinancelab/autogaap/date"
)

// this file contains functions to handle the import/export format.
// The format is a JSON document that is either a bare array of journal
// entries or an object with a "journalEntries" array field. It should remain
// human readable and easy to diff.

// ImportResult is the outcome of decoding an entry payload. Entries holds
// everything that survived validation; Findings records every entry or field
// that had to be dropped or coerced, so malformed input never disappears
// silently.
type ImportResult struct {
	Entries  []JournalEntry
	Findings []string
}

// wire shapes for the permissive read side.
type jline struct {
	AccountType string          `json:"accountType"`
	AccountName string          `json:"accountName"`
	Debit       json.RawMessage `json:"debit"`
	Credit      json.RawMessage `json:"credit"`
}

type jentry struct {
	ID            json.Number     `json:"id"`
	JournalNumber string          `json:"journalNumber"`
	PostDate      string          `json:"postDate"`
	Description   string          `json:"description"`
	Entries       json.RawMessage `json:"entries"`
	IsRecurring   bool            `json:"isRecurring"`
	Meta          EntryMeta       `json:"meta"`
}

// DecodeEntries decodes journal entries from a JSON document read from r.
// The document may be a bare array of entries or an object with a
// "journalEntries" field. Decoding is validating, not duck-typed: every
// dropped entry and coerced field is reported in the result's findings.
func DecodeEntries(r io.Reader) (*ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read entry payload: %w", err)
	}
	return decodeEntryPayload(data)
}

func decodeEntryPayload(data []byte) (*ImportResult, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Not a bare array: try the wrapper object.
		var wrapper struct {
			JournalEntries []json.RawMessage `json:"journalEntries"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil || wrapper.JournalEntries == nil {
			return nil, fmt.Errorf("payload is neither an entry array nor an object with a journalEntries field")
		}
		raw = wrapper.JournalEntries
	}

	result := &ImportResult{}
	baseID := time.Now().UnixMilli()

	for i, rawEntry := range raw {
		var je jentry
		if err := json.Unmarshal(rawEntry, &je); err != nil {
			result.Findings = append(result.Findings, fmt.Sprintf("entry %d is not a journal object and was dropped", i+1))
			continue
		}

		entry := JournalEntry{
			JournalNumber: je.JournalNumber,
			Description:   je.Description,
			Recurring:     je.IsRecurring,
			Meta:          je.Meta,
		}

		if id, err := je.ID.Int64(); err == nil && id != 0 {
			entry.ID = id
		} else {
			entry.ID = baseID + int64(i)
		}
		if entry.JournalNumber == "" {
			entry.JournalNumber = fmt.Sprintf("IM-%d-%d", baseID, i+1)
		}

		if je.PostDate != "" {
			d, err := date.Parse(je.PostDate)
			if err != nil {
				result.Findings = append(result.Findings, fmt.Sprintf("%s has an unreadable post date %q", entry.JournalNumber, je.PostDate))
			} else {
				entry.PostDate = d
			}
		}

		var jlines []jline
		if je.Entries == nil || json.Unmarshal(je.Entries, &jlines) != nil {
			result.Findings = append(result.Findings, fmt.Sprintf("%s has no line item list and was dropped", entry.JournalNumber))
			continue
		}

		for j, jl := range jlines {
			li := LineItem{
				AccountType: AccountType(jl.AccountType),
				AccountName: jl.AccountName,
			}
			var coerced bool
			li.Debit, coerced = decodeAmount(jl.Debit)
			if coerced {
				result.Findings = append(result.Findings, fmt.Sprintf("%s line %d debit is not a number, coerced to zero", entry.JournalNumber, j+1))
			}
			li.Credit, coerced = decodeAmount(jl.Credit)
			if coerced {
				result.Findings = append(result.Findings, fmt.Sprintf("%s line %d credit is not a number, coerced to zero", entry.JournalNumber, j+1))
			}
			// Keep the line when it carries any information at all.
			if li.AccountType != "" || li.AccountName != "" || !li.Debit.IsZero() || !li.Credit.IsZero() {
				entry.Lines = append(entry.Lines, li)
			}
		}

		if len(entry.Lines) == 0 {
			result.Findings = append(result.Findings, fmt.Sprintf("%s has no usable line items and was dropped", entry.JournalNumber))
			continue
		}

		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

// DecodeStoredEntries decodes the persisted entry list. Unlike DecodeEntries
// it keeps malformed entries (an empty object stays in the ledger as an
// entry with no lines) so the health analysis can flag them; only the
// document itself must parse.
func DecodeStoredEntries(r io.Reader) (*ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read stored entries: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("stored entries are not a JSON array: %w", err)
	}

	result := &ImportResult{}
	for i, rawEntry := range raw {
		var je jentry
		if err := json.Unmarshal(rawEntry, &je); err != nil {
			result.Findings = append(result.Findings, fmt.Sprintf("stored entry %d is not a journal object", i+1))
			result.Entries = append(result.Entries, JournalEntry{})
			continue
		}

		entry := JournalEntry{
			JournalNumber: je.JournalNumber,
			Description:   je.Description,
			Recurring:     je.IsRecurring,
			Meta:          je.Meta,
		}
		if id, err := je.ID.Int64(); err == nil {
			entry.ID = id
		}
		if je.PostDate != "" {
			if d, err := date.Parse(je.PostDate); err == nil {
				entry.PostDate = d
			} else {
				result.Findings = append(result.Findings, fmt.Sprintf("stored entry %d has an unreadable post date %q", i+1, je.PostDate))
			}
		}

		var jlines []jline
		if je.Entries != nil && json.Unmarshal(je.Entries, &jlines) == nil {
			for _, jl := range jlines {
				li := LineItem{
					AccountType: AccountType(jl.AccountType),
					AccountName: jl.AccountName,
				}
				li.Debit, _ = decodeAmount(jl.Debit)
				li.Credit, _ = decodeAmount(jl.Credit)
				entry.Lines = append(entry.Lines, li)
			}
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

// decodeAmount reads a raw JSON value as an Amount. Missing values decode to
// zero without a finding; present but non-numeric values decode to zero with
// coerced set.
func decodeAmount(raw json.RawMessage) (a Amount, coerced bool) {
	if raw == nil || string(raw) == "null" {
		return Amount{}, false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return Amount{}, true
	}
	f, err := n.Float64()
	if err != nil {
		return Amount{}, true
	}
	return A(f), false
}

// EncodeEntries persists journal entries to w in the canonical export
// format: an indented JSON array, matching what a re-import expects.
func EncodeEntries(w io.Writer, entries []JournalEntry) error {
	if entries == nil {
		entries = []JournalEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal journal entries: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write journal entries: %w", err)
	}
	return nil
}

// DecodeTemplates reads the recurring template list from r. A missing or
// malformed document degrades to an empty list with an error for the caller
// to log.
func DecodeTemplates(r io.Reader) ([]RecurringTemplate, error) {
	var templates []RecurringTemplate
	if err := json.NewDecoder(r).Decode(&templates); err != nil {
		return nil, fmt.Errorf("cannot parse recurring templates: %w", err)
	}
	return templates, nil
}

// EncodeTemplates persists the recurring template list to w.
func EncodeTemplates(w io.Writer, templates []RecurringTemplate) error {
	if templates == nil {
		templates = []RecurringTemplate{}
	}
	data, err := json.MarshalIndent(templates, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal recurring templates: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write recurring templates: %w", err)
	}
	return nil
}
