package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_HappyPath(t *testing.T) {
	tx := &BookingTransaction{State: TxDraft}

	require.NoError(t, tx.Transition(TxInitiated))
	require.NoError(t, tx.Transition(TxAuthorizing))
	require.NoError(t, tx.Transition(TxVerifying))
	require.NoError(t, tx.Transition(TxConfirmed))

	assert.True(t, tx.State.IsTerminal())
	assert.False(t, tx.InFlight())
}

func TestTransaction_DismissReturnsToDraft(t *testing.T) {
	tx := &BookingTransaction{State: TxAuthorizing}

	// Закрытие платежного виджета - abandonment, не failure
	require.NoError(t, tx.Transition(TxDraft))
	assert.False(t, tx.State.IsTerminal())
	assert.False(t, tx.InFlight())
}

func TestTransaction_TransientVerifyFailureRollsBack(t *testing.T) {
	tx := &BookingTransaction{State: TxVerifying}

	require.NoError(t, tx.Transition(TxAuthorizing))
	assert.True(t, tx.InFlight())
}

func TestTransaction_IllegalTransitions(t *testing.T) {
	cases := []struct {
		from TransactionState
		to   TransactionState
	}{
		{TxDraft, TxVerifying},
		{TxDraft, TxConfirmed},
		{TxInitiated, TxConfirmed},
		{TxInitiated, TxDraft},
		{TxConfirmed, TxDraft},
		{TxFailed, TxVerifying},
		{TxFailed, TxDraft},
	}

	for _, tc := range cases {
		tx := &BookingTransaction{State: tc.from}
		err := tx.Transition(tc.to)
		assert.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, tc.from, tx.State)
	}
}

func TestTransaction_InFlightStates(t *testing.T) {
	assert.False(t, (&BookingTransaction{State: TxDraft}).InFlight())
	assert.True(t, (&BookingTransaction{State: TxInitiated}).InFlight())
	assert.True(t, (&BookingTransaction{State: TxAuthorizing}).InFlight())
	assert.True(t, (&BookingTransaction{State: TxVerifying}).InFlight())
	assert.False(t, (&BookingTransaction{State: TxConfirmed}).InFlight())
	assert.False(t, (&BookingTransaction{State: TxFailed}).InFlight())
}
