package invitation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForJobSeeker_PreservesOrder(t *testing.T) {
	all := []Invitation{
		{ID: "a", JobSeekerID: "123"},
		{ID: "b", JobSeekerID: "456"},
		{ID: "c", JobSeekerID: "123"},
	}

	got := ForJobSeeker(all, "123")
	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Empty(t, ForJobSeeker(all, "789"))
}
