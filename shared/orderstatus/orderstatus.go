// Package orderstatus folds gateway-specific payment states into the five
// statuses shown to vendors.
package orderstatus

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type Status string

const (
	Paid       Status = "paid"
	Pending    Status = "pending"
	Refused    Status = "refused"
	Refunded   Status = "refunded"
	Chargeback Status = "chargeback"
)

var ErrInvalidStatus = errors.New("invalid order status")

var all = []Status{Paid, Pending, Refused, Refunded, Chargeback}

// All returns the canonical statuses in display order.
func All() []Status {
	return slices.Clone(all)
}

var labels = map[Status]string{
	Paid:       "Pago",
	Pending:    "Pendente",
	Refused:    "Recusado",
	Refunded:   "Reembolso",
	Chargeback: "Chargeback",
}

// Option is a status as offered in a filter picker.
type Option struct {
	Value  Status      `json:"value"`
	Label  string      `json:"label"`
	Colors ColorScheme `json:"colors"`
}

// Options lists every canonical status with its label, in display order.
func Options() []Option {
	options := make([]Option, len(all))
	for idx, status := range all {
		options[idx] = Option{Value: status, Label: status.Label(), Colors: status.Colors()}
	}

	return options
}

// ColorScheme is a set of Tailwind classes for a status badge.
type ColorScheme struct {
	Text   string `json:"text"`
	Bg     string `json:"bg"`
	Border string `json:"border"`
	Dot    string `json:"dot"`
}

var colors = map[Status]ColorScheme{
	Paid:       {Text: "text-emerald-700", Bg: "bg-emerald-50", Border: "border-emerald-200", Dot: "bg-emerald-500"},
	Pending:    {Text: "text-amber-700", Bg: "bg-amber-50", Border: "border-amber-200", Dot: "bg-amber-500"},
	Refused:    {Text: "text-red-700", Bg: "bg-red-50", Border: "border-red-200", Dot: "bg-red-500"},
	Refunded:   {Text: "text-red-700", Bg: "bg-red-50", Border: "border-red-200", Dot: "bg-red-500"},
	Chargeback: {Text: "text-red-700", Bg: "bg-red-50", Border: "border-red-200", Dot: "bg-red-500"},
}

var gatewayAliases = map[string]Status{
	"approved":  Paid,
	"succeeded": Paid,
	"success":   Paid,
	"complete":  Paid,
	"completed": Paid,
	"confirmed": Paid,

	"authorized":              Pending,
	"in_process":              Pending,
	"in_mediation":            Pending,
	"created":                 Pending,
	"requires_payment_method": Pending,
	"requires_confirmation":   Pending,
	"requires_action":         Pending,
	"processing":              Pending,
	"requires_capture":        Pending,
	"expired":                 Pending,
	"cancelled":               Pending,
	"canceled":                Pending,
	"cancelled_by_user":       Pending,
	"timeout":                 Pending,
	"expired_pix":             Pending,
	"abandoned":               Pending,

	"failed":        Refused,
	"rejected":      Refused,
	"error":         Refused,
	"declined":      Refused,
	"card_declined": Refused,
	"cc_rejected":   Refused,

	"refund":             Refunded,
	"refunded_full":      Refunded,
	"partially_refunded": Refunded,

	"dispute":      Chargeback,
	"disputed":     Chargeback,
	"chargedback":  Chargeback,
	"charged_back": Chargeback,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	_, ok := labels[s]

	return ok
}

// Label is the pt-BR display name. Unknown statuses read as pending.
func (s Status) Label() string {
	if label, ok := labels[s]; ok {
		return label
	}

	return labels[Pending]
}

func (s Status) Colors() ColorScheme {
	if scheme, ok := colors[s]; ok {
		return scheme
	}

	return colors[Pending]
}

// Terminal reports whether no further transitions are expected.
func (s Status) Terminal() bool {
	return s == Paid || s == Refunded || s == Chargeback
}

// Normalize maps any gateway status string to a canonical status. Empty and
// unrecognized values become Pending.
func Normalize(raw string) Status {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return Pending
	}

	if s := Status(value); s.Valid() {
		return s
	}

	if s, ok := gatewayAliases[value]; ok {
		return s
	}

	return Pending
}

// NormalizePtr treats a nil status as Pending.
func NormalizePtr(raw *string) Status {
	if raw == nil {
		return Pending
	}

	return Normalize(*raw)
}

// Validate accepts canonical values only, never gateway aliases.
func Validate(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}

	return s, nil
}

// DisplayLabel normalizes raw and returns its pt-BR label.
func DisplayLabel(raw string) string {
	return Normalize(raw).Label()
}

func IsPaid(raw string) bool {
	return Normalize(raw) == Paid
}

func IsPending(raw string) bool {
	return Normalize(raw) == Pending
}

func IsRefused(raw string) bool {
	return Normalize(raw) == Refused
}

func IsTerminal(raw string) bool {
	return Normalize(raw).Terminal()
}

// Counts tallies raw statuses by their canonical value. Every status is
// present in the result, zero when unseen.
func Counts(raws []string) map[Status]int {
	counts := make(map[Status]int, len(all))
	for _, s := range all {
		counts[s] = 0
	}

	for _, raw := range raws {
		counts[Normalize(raw)]++
	}

	return counts
}
