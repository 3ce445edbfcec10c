package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    ItemCategory
		wantErr bool
	}{
		{"none", CategoryNone, false},
		{"", CategoryNone, false},
		{"RESOURCE", CategoryResource, false},
		{" headgear ", CategoryHeadgear, false},
		{"chestgear", CategoryChestgear, false},
		{"legging", CategoryLegging, false},
		{"footgear", CategoryFootgear, false},
		{"gloves", CategoryNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseItemCategory(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestItemCategory_String(t *testing.T) {
	assert.Equal(t, "footgear", CategoryFootgear.String())
	assert.Equal(t, "category(42)", ItemCategory(42).String())
	assert.False(t, ItemCategory(42).Valid())
	assert.Len(t, ItemCategories(), 6)
}

func TestItemCategory_JSON(t *testing.T) {
	meta := ItemMetadata{MaxStack: 1, Category: CategoryHeadgear}

	data, err := json.Marshal(meta)
	require.NoError(t, err)
	assert.JSONEq(t, `{"max_stack":1,"category":"headgear"}`, string(data))

	var decoded ItemMetadata
	require.NoError(t, json.Unmarshal([]byte(`{"max_stack":16,"category":"legging"}`), &decoded))
	assert.Equal(t, ItemMetadata{MaxStack: 16, Category: CategoryLegging}, decoded)

	err = json.Unmarshal([]byte(`{"category":"wings"}`), &decoded)
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = json.Marshal(ItemMetadata{Category: ItemCategory(9)})
	assert.Error(t, err)
}

func TestDefaultItemMetadata(t *testing.T) {
	meta := DefaultItemMetadata()
	assert.Equal(t, DefaultMaxStack, meta.MaxStack)
	assert.Equal(t, CategoryNone, meta.Category)
}
