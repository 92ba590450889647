package snapshot_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
	"github.com/vladislavdragonenkov/menuboard/internal/service/snapshot"
)

func TestEncode_FieldNames(t *testing.T) {
	data, err := snapshot.Encode([]domain.Dish{
		{ID: "4", Name: "Tiramisu", Description: "Espresso", Course: domain.CourseDessert, Price: 7},
	})
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"4","name":"Tiramisu","description":"Espresso","course":"Dessert","price":7}]`, string(data))
}

func TestEncode_EmptyMenu(t *testing.T) {
	data, err := snapshot.Encode(nil)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestDecode_RoundTrip(t *testing.T) {
	for name, menu := range map[string][]domain.Dish{
		"empty": {},
		"seed":  domain.DefaultMenu(),
	} {
		menu := menu
		t.Run(name, func(t *testing.T) {
			data, err := snapshot.Encode(menu)
			require.NoError(t, err)

			decoded, err := snapshot.Decode(data)
			require.NoError(t, err)
			require.Equal(t, menu, decoded)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"null":           "null",
		"not json":       "{{{",
		"object":         `{"id":"1"}`,
		"missing id":     `[{"name":"a","description":"b","course":"Main","price":1}]`,
		"unknown course": `[{"id":"1","name":"a","description":"b","course":"Brunch","price":1}]`,
		"zero price":     `[{"id":"1","name":"a","description":"b","course":"Main","price":0}]`,
		"price as text":  `[{"id":"1","name":"a","description":"b","course":"Main","price":"1"}]`,
		"duplicate ids":  `[{"id":"1","name":"a","description":"b","course":"Main","price":1},{"id":"1","name":"c","description":"d","course":"Main","price":2}]`,
	}

	for name, raw := range cases {
		raw := raw
		t.Run(name, func(t *testing.T) {
			_, err := snapshot.Decode([]byte(raw))
			require.Error(t, err)
			require.True(t, errors.Is(err, domain.ErrSnapshotMalformed), "unexpected error: %v", err)
		})
	}
}

func TestDecode_AllowsEmptyNameAfterCreation(t *testing.T) {
	dishes, err := snapshot.Decode([]byte(`[{"id":"x","name":"","description":"","course":"Beverage","price":2.5}]`))
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	require.Equal(t, domain.CourseBeverage, dishes[0].Course)
}
