//go:build unit

package classroom_test

import (
	"strings"
	"testing"

	"classreserve/internal/domain/classroom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassroom(t *testing.T) {
	t.Run("valid classroom", func(t *testing.T) {
		equipment := map[string]bool{"projector": true, "whiteboard": false}

		actual, err := classroom.NewClassroom(1, "Room 101", "Building A", 30, equipment)
		require.NoError(t, err)

		assert.Equal(t, int64(1), actual.ID())
		assert.Equal(t, "Room 101", actual.Name())
		assert.Equal(t, "Building A", actual.Location())
		assert.Equal(t, 30, actual.Capacity())
		assert.Equal(t, equipment, actual.Equipment())
	})

	t.Run("name validation", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
			errIs error
		}{
			{"trimmed name ok", "  Room 101  ", nil},
			{"empty name", "", classroom.ErrEmptyName},
			{"whitespace only name", "   ", classroom.ErrEmptyName},
			{"max length name ok", strings.Repeat("a", classroom.MaxNameLength), nil},
			{"too long name", strings.Repeat("a", classroom.MaxNameLength+1), classroom.ErrNameTooLong},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				actual, err := classroom.NewClassroom(1, tc.input, "", 0, nil)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, strings.TrimSpace(tc.input), actual.Name())
			})
		}
	})

	t.Run("capacity validation", func(t *testing.T) {
		_, err := classroom.NewClassroom(1, "Room 101", "", -1, nil)
		assert.ErrorIs(t, err, classroom.ErrNegativeCapacity)

		actual, err := classroom.NewClassroom(1, "Room 101", "", 0, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, actual.Capacity())
	})

	t.Run("nil equipment becomes empty map", func(t *testing.T) {
		actual, err := classroom.NewClassroom(1, "Room 101", "", 10, nil)
		require.NoError(t, err)
		assert.NotNil(t, actual.Equipment())
		assert.Empty(t, actual.Equipment())
	})

	t.Run("equipment accessor returns a copy", func(t *testing.T) {
		actual, err := classroom.NewClassroom(1, "Room 101", "", 10, map[string]bool{"projector": true})
		require.NoError(t, err)

		actual.Equipment()["projector"] = false
		assert.True(t, actual.Equipment()["projector"])
	})
}
