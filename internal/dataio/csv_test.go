package dataio

import (
	"strings"
	"testing"
)

func TestReadWithHeader(t *testing.T) {
	input := "latency,count\n10,1\n20,2\n30,1\n"

	ds, err := Read(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if len(ds.Names) != 2 {
		t.Fatalf("got %d columns, want 2", len(ds.Names))
	}
	if ds.Names[0] != "latency" || ds.Names[1] != "count" {
		t.Errorf("Names = %v", ds.Names)
	}
	if ds.Values.Rows() != 3 || ds.Values.Cols() != 2 {
		t.Errorf("Values shape = %dx%d, want 3x2", ds.Values.Rows(), ds.Values.Cols())
	}
	if ds.Weights != nil {
		t.Error("Weights should be nil when no weight column is set")
	}
}

func TestReadWeightColumnByName(t *testing.T) {
	input := "latency,count\n10,1\n20,2\n30,1\n"

	ds, err := Read(strings.NewReader(input), Options{WeightColumn: "count"})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if len(ds.Names) != 1 || ds.Names[0] != "latency" {
		t.Errorf("Names = %v, want [latency]", ds.Names)
	}
	want := []float64{1, 2, 1}
	for i, w := range want {
		if ds.Weights[i] != w {
			t.Errorf("Weights[%d] = %v, want %v", i, ds.Weights[i], w)
		}
	}
}

func TestReadWeightColumnByIndex(t *testing.T) {
	input := "a,b\n1,5\n2,6\n"

	ds, err := Read(strings.NewReader(input), Options{WeightColumn: "1"})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(ds.Names) != 1 || ds.Names[0] != "a" {
		t.Errorf("Names = %v, want [a]", ds.Names)
	}
	if ds.Weights[0] != 5 || ds.Weights[1] != 6 {
		t.Errorf("Weights = %v", ds.Weights)
	}
}

func TestReadNoHeader(t *testing.T) {
	input := "1,10\n2,20\n"

	ds, err := Read(strings.NewReader(input), Options{NoHeader: true})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if ds.Names[0] != "col0" || ds.Names[1] != "col1" {
		t.Errorf("Names = %v, want [col0 col1]", ds.Names)
	}
	if ds.Values.At2(1, 1) != 20 {
		t.Errorf("Values(1,1) = %v, want 20", ds.Values.At2(1, 1))
	}
}

func TestReadSkipsNonNumericColumns(t *testing.T) {
	input := "name,value\nalpha,1\nbeta,2\n"

	ds, err := Read(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(ds.Names) != 1 || ds.Names[0] != "value" {
		t.Errorf("Names = %v, want [value]", ds.Names)
	}
}

func TestReadColumnSelection(t *testing.T) {
	input := "a,b,c\n1,2,3\n4,5,6\n"

	ds, err := Read(strings.NewReader(input), Options{Columns: []string{"c", "a"}})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(ds.Names) != 2 || ds.Names[0] != "c" || ds.Names[1] != "a" {
		t.Errorf("Names = %v, want [c a]", ds.Names)
	}
	if ds.Values.At2(0, 0) != 3 || ds.Values.At2(0, 1) != 1 {
		t.Errorf("row 0 = %v,%v want 3,1", ds.Values.At2(0, 0), ds.Values.At2(0, 1))
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
	}{
		{"empty input", "", Options{}},
		{"header only", "a,b\n", Options{}},
		{"no numeric columns", "a,b\nx,y\n", Options{}},
		{"missing weight column", "a\n1\n", Options{WeightColumn: "w"}},
		{"non-numeric weight column", "a,w\n1,x\n", Options{WeightColumn: "w"}},
		{"non-numeric selected column", "a,b\n1,x\n", Options{Columns: []string{"b"}}},
		{"weight index out of range", "a\n1\n", Options{WeightColumn: "5"}},
		{"ragged rows", "a,b\n1,2\n3\n", Options{}},
	}

	for _, test := range tests {
		if _, err := Read(strings.NewReader(test.input), test.opts); err == nil {
			t.Errorf("%s: Read() should fail", test.name)
		}
	}
}
