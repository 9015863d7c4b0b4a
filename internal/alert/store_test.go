package alert

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockRadar/internal/model"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()
	sqlite, err := NewSQLiteStore(filepath.Join(t.TempDir(), "alerts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })
	return map[string]Store{
		"sqlite": sqlite,
		"memory": NewMemoryStore(),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			added, err := store.Add(model.Alert{
				Type:      model.AlertPrice,
				Ticker:    "AAPL",
				Condition: model.CondAbove,
				Threshold: 200,
			})
			require.NoError(t, err)
			assert.NotEmpty(t, added.ID)
			assert.False(t, added.CreatedAt.IsZero())

			_, err = store.Add(model.Alert{
				Type:   model.AlertMACD,
				Ticker: "MSFT",
				Signal: model.MACDCrossover,
			})
			require.NoError(t, err)

			alerts, err := store.List()
			require.NoError(t, err)
			require.Len(t, alerts, 2)
			assert.Equal(t, model.AlertPrice, alerts[0].Type)
			assert.Equal(t, model.CondAbove, alerts[0].Condition)
			assert.Equal(t, 200.0, alerts[0].Threshold)
			assert.Equal(t, model.MACDCrossover, alerts[1].Signal)

			require.NoError(t, store.Delete(added.ID))
			alerts, err = store.List()
			require.NoError(t, err)
			require.Len(t, alerts, 1)
			assert.Equal(t, "MSFT", alerts[0].Ticker)
		})
	}
}

func TestStoreDeleteUnknownID(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, store.Delete("does-not-exist"))
		})
	}
}
