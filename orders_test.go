package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOrdersCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}
	return path
}

func TestReadOrders(t *testing.T) {
	csv := "Order number,Head,Body,Legs,Address\n" +
		"1,1,2,3,Street 1\n" +
		"2,4,5,6,Street 2\n" +
		"3,7,8,9,Street 3\n"

	orders, err := ReadOrders(writeOrdersCSV(t, csv))
	if err != nil {
		t.Fatalf("ReadOrders failed: %v", err)
	}

	if len(orders) != 3 {
		t.Fatalf("Expected 3 orders, got %d", len(orders))
	}

	expected := []Order{
		{OrderNumber: "1", Head: "1", Body: "2", Legs: "3", Address: "Street 1"},
		{OrderNumber: "2", Head: "4", Body: "5", Legs: "6", Address: "Street 2"},
		{OrderNumber: "3", Head: "7", Body: "8", Legs: "9", Address: "Street 3"},
	}

	for i, want := range expected {
		if orders[i] != want {
			t.Errorf("Order %d = %+v, expected %+v", i, orders[i], want)
		}
	}
}

func TestReadOrdersPreservesFileOrder(t *testing.T) {
	csv := "Order number,Head,Body,Legs,Address\n" +
		"9,1,1,1,A\n" +
		"3,1,1,1,B\n" +
		"7,1,1,1,C\n"

	orders, err := ReadOrders(writeOrdersCSV(t, csv))
	if err != nil {
		t.Fatalf("ReadOrders failed: %v", err)
	}

	got := []string{orders[0].OrderNumber, orders[1].OrderNumber, orders[2].OrderNumber}
	want := []string{"9", "3", "7"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Row %d order number = %s, expected %s", i, got[i], want[i])
		}
	}
}

func TestReadOrdersMissingColumn(t *testing.T) {
	csv := "Order number,Head,Body,Legs\n" +
		"1,1,2,3\n"

	orders, err := ReadOrders(writeOrdersCSV(t, csv))
	if err != nil {
		t.Fatalf("ReadOrders failed: %v", err)
	}

	if len(orders) != 1 {
		t.Fatalf("Expected 1 order, got %d", len(orders))
	}

	if orders[0].Address != "" {
		t.Errorf("Expected empty Address for missing column, got %q", orders[0].Address)
	}
	if orders[0].OrderNumber != "1" {
		t.Errorf("Expected OrderNumber to be '1', got %q", orders[0].OrderNumber)
	}
}

func TestReadOrdersShortRow(t *testing.T) {
	csv := "Order number,Head,Body,Legs,Address\n" +
		"1,1,2\n"

	orders, err := ReadOrders(writeOrdersCSV(t, csv))
	if err != nil {
		t.Fatalf("ReadOrders failed: %v", err)
	}

	if len(orders) != 1 {
		t.Fatalf("Expected 1 order, got %d", len(orders))
	}

	if orders[0].Legs != "" || orders[0].Address != "" {
		t.Errorf("Expected empty fields past the row length, got %+v", orders[0])
	}
}

func TestReadOrdersEmptyFile(t *testing.T) {
	orders, err := ReadOrders(writeOrdersCSV(t, ""))
	if err != nil {
		t.Fatalf("ReadOrders failed: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("Expected no orders from an empty file, got %d", len(orders))
	}
}

func TestReadOrdersMissingFile(t *testing.T) {
	_, err := ReadOrders(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Error("Expected error for a missing file, got nil")
	}
}
