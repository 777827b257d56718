package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Uthara1292/small-business-analysis/aggregator/common"
	ic "github.com/Uthara1292/small-business-analysis/innercommunication"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQuery(t *testing.T) {
	config, err := InitConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	assert.Equal(t, "coffee_shop_sales.csv", config.InputPath)
	assert.Equal(t, "revenue-by-category", config.Query.QueryName)
	assert.Equal(t, []string{ic.ColCategory}, config.Query.GroupBy)
	require.Len(t, config.Query.Aggregations, 2)
	assert.Equal(t, common.AggConfig{Col: ic.ColTotalSpent, Func: "sum"}, config.Query.Aggregations[0])
}

func TestQueryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"query": {
			"query-name": "best-hours",
			"group-by": ["Hour"],
			"aggregations": [{"col": "Transaction ID", "func": "count"}],
			"retainings": [{"name": "top-3-hours", "amount-retained": 3, "value": "Transaction ID", "largest": true}]
		},
		"filters": {"from-date": "2025-06-01", "from-hour": 9}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "best-hours", config.Query.QueryName)
	require.Len(t, config.Query.Retainings, 1)
	assert.Equal(t, 3, config.Query.Retainings[0].AmountRetained)
	assert.True(t, config.Query.Retainings[0].Largest)
	assert.Equal(t, "2025-06-01", config.Filters.FromDate)
	require.NotNil(t, config.Filters.FromHour)
	assert.Equal(t, 9, *config.Filters.FromHour)
	assert.Nil(t, config.Filters.ToHour)
}

func TestUnsupportedFunc(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"query": {"aggregations": [{"col": "Quantity", "func": "median"}]}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := InitConfig(path)
	assert.Error(t, err)
}

func TestPrintRetained(t *testing.T) {
	price := ic.MustMoney("3.50")
	transactions := []ic.Transaction{
		{TransactionID: 1, Date: ic.NewDate(2025, 1, 1), Item: "Americano", Category: ic.Coffee, Price: price, Quantity: 2, TotalSpent: price.Times(2)},
		{TransactionID: 2, Date: ic.NewDate(2025, 1, 1), Item: "Bagel", Category: ic.Bakery, Price: ic.MustMoney("3.00"), Quantity: 1, TotalSpent: ic.MustMoney("3.00")},
		{TransactionID: 3, Date: ic.NewDate(2025, 1, 2), Item: "Americano", Category: ic.Coffee, Price: price, Quantity: 1, TotalSpent: price},
	}
	config, err := InitConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	aggregator, err := common.NewAggregator(&config.Query)
	require.NoError(t, err)
	require.NoError(t, aggregator.AggregateBatch(ic.TransactionsToBatch(transactions)))

	var out bytes.Buffer
	for _, retained := range aggregator.Retained() {
		require.NoError(t, PrintRetained(&out, retained))
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "# all", lines[0])
	assert.Equal(t, []string{"Category", "sum_Total", "Spent", "count_Transaction", "ID"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"Bakery", "3", "1"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"Coffee", "10.5", "2"}, strings.Fields(lines[3]))
}

func TestUnitPriceByItem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"query": {
		"query-name": "price-by-item",
		"group-by": ["Item"],
		"aggregations": [{"col": "Price", "func": "sum"}, {"col": "Time", "func": "count"}]
	}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	config, err := InitConfig(path)
	require.NoError(t, err)

	transactions := []ic.Transaction{{
		TransactionID: 1,
		Date:          ic.NewDate(2025, 1, 1),
		Time:          ic.ClockTime{Hour: 8, Minute: 30},
		Item:          "Latte",
		Category:      ic.Coffee,
		Price:         ic.MustMoney("4.50"),
		Quantity:      2,
		TotalSpent:    ic.MustMoney("9.00"),
	}}
	aggregator, err := common.NewAggregator(&config.Query)
	require.NoError(t, err)
	require.NoError(t, aggregator.AggregateBatch(ic.TransactionsToBatch(transactions)))

	result := aggregator.Result()
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Latte", result.Rows[0][0])
	assert.Equal(t, "4.5", fmt.Sprint(result.Rows[0][1]))
	assert.Equal(t, 1, result.Rows[0][2])
}
