package orderstatus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"paid", Paid},
		{"approved", Paid},
		{"succeeded", Paid},
		{"  COMPLETED ", Paid},
		{"confirmed", Paid},
		{"pending", Pending},
		{"in_process", Pending},
		{"requires_payment_method", Pending},
		{"expired_pix", Pending},
		{"canceled", Pending},
		{"cancelled", Pending},
		{"refused", Refused},
		{"card_declined", Refused},
		{"cc_rejected", Refused},
		{"error", Refused},
		{"refunded", Refunded},
		{"refund", Refunded},
		{"chargeback", Chargeback},
		{"charged_back", Chargeback},
		{"Disputed", Chargeback},
		{"", Pending},
		{"   ", Pending},
		{"something_new", Pending},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalizePtr(t *testing.T) {
	assert.Equal(t, Pending, NormalizePtr(nil))

	raw := "approved"
	assert.Equal(t, Paid, NormalizePtr(&raw))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Pago", Paid.Label())
	assert.Equal(t, "Pendente", Pending.Label())
	assert.Equal(t, "Recusado", Refused.Label())
	assert.Equal(t, "Reembolso", Refunded.Label())
	assert.Equal(t, "Chargeback", Chargeback.Label())
	assert.Equal(t, "Pendente", Status("nope").Label())

	assert.Equal(t, "Pago", DisplayLabel("succeeded"))
	assert.Equal(t, "Reembolso", DisplayLabel("partially_refunded"))
}

func TestTerminal(t *testing.T) {
	assert.True(t, Paid.Terminal())
	assert.True(t, Refunded.Terminal())
	assert.True(t, Chargeback.Terminal())
	assert.False(t, Pending.Terminal())
	assert.False(t, Refused.Terminal())

	assert.True(t, IsTerminal("approved"))
	assert.False(t, IsTerminal(""))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsPaid("Approved"))
	assert.False(t, IsPaid("pending"))
	assert.True(t, IsPending(""))
	assert.True(t, IsPending("expired_pix"))
	assert.True(t, IsRefused("declined"))
	assert.False(t, IsRefused("refunded"))
}

func TestAll(t *testing.T) {
	statuses := All()
	assert.Equal(t, []Status{Paid, Pending, Refused, Refunded, Chargeback}, statuses)

	statuses[0] = "mutated"
	assert.Equal(t, Paid, All()[0])
}

func TestValidate(t *testing.T) {
	for _, s := range All() {
		got, err := Validate(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := Validate("approved")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = Validate("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestColors(t *testing.T) {
	assert.Contains(t, Paid.Colors().Text, "emerald")
	assert.Contains(t, Pending.Colors().Bg, "amber")
	assert.Contains(t, Refused.Colors().Dot, "red")
	assert.Equal(t, Pending.Colors(), Status("unknown").Colors())
}

func TestCounts(t *testing.T) {
	counts := Counts([]string{"approved", "paid", "declined", "", "refunded"})

	assert.Len(t, counts, len(All()))
	assert.Equal(t, 2, counts[Paid])
	assert.Equal(t, 1, counts[Pending])
	assert.Equal(t, 1, counts[Refused])
	assert.Equal(t, 1, counts[Refunded])
	assert.Equal(t, 0, counts[Chargeback])
}

func TestOptions(t *testing.T) {
	options := Options()

	require.Len(t, options, 5)

	values := make([]Status, len(options))
	for idx, option := range options {
		values[idx] = option.Value
	}
	assert.Equal(t, All(), values)

	assert.Equal(t, Option{Value: Paid, Label: "Pago", Colors: Paid.Colors()}, options[0])
	assert.Equal(t, "Pendente", options[1].Label)
	assert.Equal(t, "Recusado", options[2].Label)
	assert.Equal(t, "Reembolso", options[3].Label)
	assert.Equal(t, "Chargeback", options[4].Label)
}
