package decisiontypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clearview/internal/clearing/models"
	dErrors "clearview/pkg/domain-errors"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	name, err := c.TypeName(models.TypeIdentified)
	require.NoError(t, err)
	assert.Equal(t, "Identified", name)

	typ, err := c.TypeByName("To be discussed")
	require.NoError(t, err)
	assert.Equal(t, models.TypeToBeDiscussed, typ)

	_, err = c.TypeName(99)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnknownDecisionType))

	_, err = c.TypeByName("Approved")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnknownDecisionType))
}

func TestMapIsACopy(t *testing.T) {
	c := Default()
	m := c.Map()
	m[models.TypeIdentified] = "changed"

	name, err := c.TypeName(models.TypeIdentified)
	require.NoError(t, err)
	assert.Equal(t, "Identified", name)
}

func TestNewRejectsBadTables(t *testing.T) {
	_, err := New(map[models.DecisionType]string{models.TypeIdentified: ""})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = New(map[models.DecisionType]string{
		models.TypeIdentified: "Done",
		models.TypeIrrelevant: "Done",
	})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}
