package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/bizdesk/pkg/collection"
)

type order struct {
	Date  string
	Total float64
}

var orders = []order{
	{Date: "2026-03-01", Total: 120},
	{Date: "2026-03-01", Total: 80},
	{Date: "2026-03-02", Total: 50},
}

func TestFilter(t *testing.T) {
	big := collection.Filter(orders, func(o order) bool { return o.Total >= 80 })
	assert.Len(t, big, 2)
}

func TestFirst(t *testing.T) {
	o, ok := collection.First(orders, func(o order) bool { return o.Date == "2026-03-02" })
	assert.True(t, ok)
	assert.Equal(t, 50.0, o.Total)

	_, ok = collection.First(orders, func(o order) bool { return o.Total > 1000 })
	assert.False(t, ok)
}

func TestGroupBy(t *testing.T) {
	byDate := collection.GroupBy(orders, func(o order) string { return o.Date })
	assert.Len(t, byDate, 2)
	assert.Len(t, byDate["2026-03-01"], 2)
}

func TestSum(t *testing.T) {
	total := collection.Sum(orders, func(o order) float64 { return o.Total })
	assert.Equal(t, 250.0, total)

	assert.Zero(t, collection.Sum(nil, func(o order) float64 { return o.Total }))
}
