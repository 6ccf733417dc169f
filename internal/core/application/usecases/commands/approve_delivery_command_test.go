package commands_test

import (
	"testing"

	"fleetyard/internal/core/application/usecases/commands"
	"fleetyard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApproveDeliveryCommand_ValidInput(t *testing.T) {
	requestID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	cmd, err := commands.NewApproveDeliveryCommand(requestID, actorID)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.RequestID().IsEqual(requestID))
	assert.True(t, cmd.ActorID().IsEqual(actorID))
}

func TestNewApproveDeliveryCommand_InvalidInput(t *testing.T) {
	valid := kernel.NewUUID()

	testCases := []struct {
		name      string
		requestID kernel.UUID
		actorID   kernel.UUID
	}{
		{name: "empty request id", requestID: kernel.UUID{}, actorID: valid},
		{name: "empty actor id", requestID: valid, actorID: kernel.UUID{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewApproveDeliveryCommand(tc.requestID, tc.actorID)
			require.Error(t, err)
		})
	}
}

func TestApproveDeliveryCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.ApproveDeliveryCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrApproveDeliveryCommandIsNotConstructed)
}
