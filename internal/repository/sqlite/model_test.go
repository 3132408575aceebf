package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTasks_OmitsOptionalFields(t *testing.T) {
	encoded, err := EncodeTasks([]TaskRecord{{
		ID:        1718000000000,
		Text:      "Buy milk",
		Color:     "bg-yellow-100",
		Category:  "Shopping",
		Priority:  "Low",
		CreatedAt: "2024-06-10T06:13:20.000Z",
	}})
	require.NoError(t, err)

	assert.Equal(t,
		`[{"id":1718000000000,"text":"Buy milk","completed":false,"color":"bg-yellow-100","category":"Shopping","priority":"Low","createdAt":"2024-06-10T06:13:20.000Z"}]`,
		encoded)
}

func TestEncodeTasks_Empty(t *testing.T) {
	encoded, err := EncodeTasks(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)
}

func TestDecodeTasks(t *testing.T) {
	records, err := DecodeTasks(`[{"id":2,"text":"Run","completed":true,"color":"bg-red-100","category":"Health","priority":"High","dueDate":"2024-07-01","notes":"5k","createdAt":"2024-06-10T06:13:20.000Z","lastModified":"2024-06-11T06:13:20.000Z"}]`)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, int64(2), records[0].ID)
	assert.True(t, records[0].Completed)
	assert.Equal(t, "2024-07-01", records[0].DueDate)
	assert.Equal(t, "5k", records[0].Notes)
	assert.Equal(t, "2024-06-11T06:13:20.000Z", records[0].LastModified)
}

func TestDecodeTasks_Corrupt(t *testing.T) {
	_, err := DecodeTasks(`{not json`)
	assert.Error(t, err)

	_, err = DecodeTasks(`{"id":1}`)
	assert.Error(t, err)
}
