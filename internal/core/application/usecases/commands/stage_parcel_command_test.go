package commands_test

import (
	"testing"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDraft(t *testing.T) parcel.Draft {
	t.Helper()
	sender, err := parcel.NewParty(
		"Sender", "+8801000000001", "dhaka", "gulshan", "House 12, Road 5", "Call on arrival")
	require.NoError(t, err)
	receiver, err := parcel.NewParty(
		"Receiver", "+8801000000002", "sylhet", "zindabazar", "Flat 3B, Mirer Moydan", "Leave at desk")
	require.NoError(t, err)

	return parcel.Draft{
		Type:     parcel.NonDocument,
		Title:    "Winter clothes",
		Weight:   "5",
		Sender:   sender,
		Receiver: receiver,
	}
}

func TestNewStageParcelCommand_ValidInput(t *testing.T) {
	draft := testDraft(t)
	cmd, err := commands.NewStageParcelCommand(draft, commands.ConfirmPayment, "sender@example.com")
	require.NoError(t, err)
	assert.Equal(t, draft, cmd.Draft())
	assert.Equal(t, commands.ConfirmPayment, cmd.Decision())
	assert.Equal(t, "sender@example.com", cmd.CreatedBy())
}

func TestNewStageParcelCommand_InvalidDecision(t *testing.T) {
	_, err := commands.NewStageParcelCommand(testDraft(t), commands.UnknownDecision, "sender@example.com")
	require.Error(t, err)
}

func TestNewStageParcelCommand_EmptyCreatedBy(t *testing.T) {
	_, err := commands.NewStageParcelCommand(testDraft(t), commands.SaveDraft, "")
	require.Error(t, err)
}

func TestNewStageParcelCommand_InvalidType(t *testing.T) {
	draft := testDraft(t)
	draft.Type = parcel.UnknownType
	_, err := commands.NewStageParcelCommand(draft, commands.ConfirmPayment, "sender@example.com")
	require.Error(t, err)
}

func TestStageParcelCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.StageParcelCommand{} // not constructed properly
	require.Error(t, cmd.Validate())
}

func TestParseDecision(t *testing.T) {
	d, err := commands.ParseDecision("confirm_payment")
	require.NoError(t, err)
	assert.Equal(t, commands.ConfirmPayment, d)

	d, err = commands.ParseDecision("save_draft")
	require.NoError(t, err)
	assert.Equal(t, commands.SaveDraft, d)

	_, err = commands.ParseDecision("pay_later")
	require.Error(t, err)
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "confirm_payment", commands.ConfirmPayment.String())
	assert.Equal(t, "save_draft", commands.SaveDraft.String())
	assert.Equal(t, "unknown", commands.UnknownDecision.String())
}
