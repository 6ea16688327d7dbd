package draft

import (
	"testing"

	"shilpgroup-io/backoffice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextWalksCompletedSections(t *testing.T) {
	nav := NewNavigator()
	d := completeDraft()

	require.NoError(t, nav.Next(d))
	assert.Equal(t, Section2, nav.Current())
	require.NoError(t, nav.Next(d))
	require.NoError(t, nav.Next(d))
	assert.Equal(t, Section4, nav.Current())

	// Already on the last section; Next stays put.
	require.NoError(t, nav.Next(d))
	assert.Equal(t, Section4, nav.Current())
}

func TestNextBlockedOnIncompleteSection(t *testing.T) {
	nav := NewNavigator()
	d := models.NewProjectDraft()

	err := nav.Next(d)
	require.Error(t, err)
	assert.Equal(t, Section1, nav.Current())
}

func TestPrevNeverBlocks(t *testing.T) {
	nav := NewNavigator()
	d := completeDraft()
	require.NoError(t, nav.Next(d))

	nav.Prev()
	assert.Equal(t, Section1, nav.Current())

	// At the first section Prev is a no-op.
	nav.Prev()
	assert.Equal(t, Section1, nav.Current())
}

func TestJumpBackwardAlwaysAllowed(t *testing.T) {
	nav := NewNavigator()
	d := completeDraft()
	require.NoError(t, nav.Next(d))
	require.NoError(t, nav.Next(d))

	// Break section one, then jump back into it.
	d.ProjectTitle = ""
	require.NoError(t, nav.JumpTo(Section1, d))
	assert.Equal(t, Section1, nav.Current())
}

func TestJumpForwardGatedOnPrerequisite(t *testing.T) {
	nav := NewNavigator()
	d := models.NewProjectDraft()

	err := nav.JumpTo(Section2, d)
	require.Error(t, err)
	assert.Equal(t, Section1, nav.Current())

	d = completeDraft()
	require.NoError(t, nav.JumpTo(Section2, d))
	assert.Equal(t, Section2, nav.Current())
}

func TestJumpRejectsOutOfRange(t *testing.T) {
	nav := NewNavigator()
	d := completeDraft()

	assert.Error(t, nav.JumpTo(Section(0), d))
	assert.Error(t, nav.JumpTo(Section(5), d))
	assert.Equal(t, Section1, nav.Current())
}

func TestResetReturnsToFirstSection(t *testing.T) {
	nav := NewNavigator()
	d := completeDraft()
	require.NoError(t, nav.Next(d))

	nav.Reset()
	assert.Equal(t, Section1, nav.Current())
}
