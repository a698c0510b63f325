package commands_test

import (
	"testing"

	"ironweb/internal/core/application/usecases/commands"
	"ironweb/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLockAgentSequenceCommand_ValidInput(t *testing.T) {
	agentID := kernel.NewUUID()

	cmd, err := commands.NewLockAgentSequenceCommand(agentID)

	require.NoError(t, err)
	assert.True(t, cmd.AgentID().IsEqual(agentID))
}

func TestNewLockAgentSequenceCommand_InvalidAgentID(t *testing.T) {
	_, err := commands.NewLockAgentSequenceCommand(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUnlockAgentSequenceCommand_ValidInput(t *testing.T) {
	agentID := kernel.NewUUID()

	cmd, err := commands.NewUnlockAgentSequenceCommand(agentID)

	require.NoError(t, err)
	assert.True(t, cmd.AgentID().IsEqual(agentID))
}

func TestNewUnlockAgentSequenceCommand_InvalidAgentID(t *testing.T) {
	_, err := commands.NewUnlockAgentSequenceCommand(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPurgeExpiredSequencesCommand_Validates(t *testing.T) {
	cmd := commands.NewPurgeExpiredSequencesCommand()

	require.NoError(t, cmd.Validate())
}
