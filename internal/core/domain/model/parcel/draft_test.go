package parcel_test

import (
	"testing"

	"parcel/internal/core/domain/model/geography"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDirectory(t *testing.T) *geography.Directory {
	t.Helper()
	d, err := geography.NewDirectory([]geography.RegionDefinition{
		{ID: "dhaka", Name: "Dhaka", ServiceCenters: []geography.ServiceCenterDefinition{
			{ID: "dhanmondi", Name: "Dhanmondi"},
			{ID: "gulshan", Name: "Gulshan"},
		}},
		{ID: "sylhet", Name: "Sylhet", ServiceCenters: []geography.ServiceCenterDefinition{
			{ID: "zindabazar", Name: "Zindabazar"},
		}},
	})
	require.NoError(t, err)
	return d
}

func validDraft(t *testing.T) parcel.Draft {
	t.Helper()
	sender, err := parcel.NewParty(
		"Sender", "+8801000000001", "dhaka", "gulshan", "Sender address", "Ring the bell")
	require.NoError(t, err)
	receiver, err := parcel.NewParty(
		"Receiver", "+8801000000002", "sylhet", "zindabazar", "Receiver address", "Leave at desk")
	require.NoError(t, err)

	return parcel.Draft{
		Type:     parcel.NonDocument,
		Title:    "Winter clothes",
		Weight:   "2.5",
		Sender:   sender,
		Receiver: receiver,
	}
}

func TestDraft_Validate(t *testing.T) {
	directory := testDirectory(t)

	t.Run("accepts a complete draft", func(t *testing.T) {
		require.NoError(t, validDraft(t).Validate(directory))
	})

	t.Run("rejects missing title", func(t *testing.T) {
		d := validDraft(t)
		d.Title = ""

		err := d.Validate(directory)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		d := validDraft(t)
		d.Type = parcel.UnknownType

		require.Error(t, d.Validate(directory))
	})

	t.Run("rejects unconstructed parties", func(t *testing.T) {
		d := validDraft(t)
		d.Receiver = parcel.Party{}

		err := d.Validate(directory)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "NewParty")
	})

	t.Run("rejects service center outside the chosen region", func(t *testing.T) {
		d := validDraft(t)
		mismatched, err := parcel.NewParty(
			"Sender", "+8801000000001", "sylhet", "gulshan", "Sender address", "Ring the bell")
		require.NoError(t, err)
		d.Sender = mismatched

		err = d.Validate(directory)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "sender service center")
	})
}
