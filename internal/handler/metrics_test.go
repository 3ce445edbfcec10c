package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/stackgrid/internal/inventory"
	"github.com/osse101/stackgrid/internal/metrics"
	"github.com/osse101/stackgrid/internal/store"
)

func TestHandleDeposit_UnknownItemsShareOneSeries(t *testing.T) {
	reg := prometheus.NewRegistry()
	items := newTestCatalog(t)
	engine := inventory.NewEngine(items,
		inventory.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		inventory.WithRecorder(metrics.NewRecorder(reg, items.Resolve)))
	s := store.New(16, time.Hour)
	env := &testEnv{store: s, router: newRouterFor(NewHandlers(s, engine, items, 2, 3))}

	id := env.create(t, 4, 4)
	w := env.do(t, http.MethodPost, "/api/v1/inventories/"+id+"/deposit", DepositRequest{ItemID: "WOOD", Amount: 5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	for i := 0; i < 200; i++ {
		w := env.do(t, http.MethodPost, "/api/v1/inventories/"+id+"/deposit",
			DepositRequest{ItemID: fmt.Sprintf("junk-%d", i), Amount: 1})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	series := map[string]int{}
	labels := map[string][]string{}
	for _, mf := range families {
		series[mf.GetName()] = len(mf.GetMetric())
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == metrics.LabelItem {
					labels[mf.GetName()] = append(labels[mf.GetName()], lp.GetValue())
				}
			}
		}
	}

	assert.ElementsMatch(t, []string{metrics.LabelValueUnknown, "wood"}, labels["stackgrid_items_deposited_total"])
	assert.LessOrEqual(t, series["stackgrid_deposit_leftover_total"], 2)
	assert.Equal(t, 1, series["stackgrid_unknown_item_lookups_total"])
}
