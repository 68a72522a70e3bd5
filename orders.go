package main

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSV column names as served by the order system. Matched exactly,
// case-sensitive.
const (
	colOrderNumber = "Order number"
	colHead        = "Head"
	colBody        = "Body"
	colLegs        = "Legs"
	colAddress     = "Address"
)

// Order is one robot-part purchase request from the input CSV.
type Order struct {
	OrderNumber string
	Head        string
	Body        string
	Legs        string
	Address     string
}

// ReadOrders parses a comma-delimited CSV with a header row into Orders,
// preserving file order. Columns missing from the header leave the matching
// field empty; there is no schema validation.
func ReadOrders(path string) ([]Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open orders file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse orders file: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[name] = i
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	orders := make([]Order, 0, len(records)-1)
	for _, record := range records[1:] {
		orders = append(orders, Order{
			OrderNumber: field(record, colOrderNumber),
			Head:        field(record, colHead),
			Body:        field(record, colBody),
			Legs:        field(record, colLegs),
			Address:     field(record, colAddress),
		})
	}

	return orders, nil
}
