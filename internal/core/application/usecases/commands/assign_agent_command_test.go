package commands_test

import (
	"testing"

	"ironweb/internal/core/application/usecases/commands"
	"ironweb/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignAgentCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	agentID := kernel.NewUUID()

	cmd, err := commands.NewAssignAgentCommand(orderID, agentID)

	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.AgentID().IsEqual(agentID))
}

func TestNewAssignAgentCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewAssignAgentCommand(kernel.UUID{}, kernel.NewUUID())

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAssignAgentCommand_InvalidAgentID(t *testing.T) {
	_, err := commands.NewAssignAgentCommand(kernel.NewUUID(), kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAssignAgentCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.AssignAgentCommand

	require.Error(t, cmd.Validate())
}
