// functors_test.go file
package utils_test

import (
	"reflect"
	"testing"

	"github.com/joeydtaylor/meander/pkg/internal/utils"
)

func TestMap(t *testing.T) {
	elems := []float64{0.0, 0.25, 0.5, 1.0}
	scaled := utils.Map(elems, func(v float64) float64 {
		return v * 256
	})

	expected := []float64{0, 64, 128, 256}
	if !reflect.DeepEqual(scaled, expected) {
		t.Errorf("Expected %v, got %v", expected, scaled)
	}
}

func TestFilter(t *testing.T) {
	elems := []int{1, 2, 3, 4, 5, 6}
	filteredElems := utils.Filter(elems, func(i int) bool {
		return i%2 == 0 // Keep only even numbers
	})

	expected := []int{2, 4, 6}
	if !reflect.DeepEqual(filteredElems, expected) {
		t.Errorf("Expected %v, got %v", expected, filteredElems)
	}
}

func TestContains(t *testing.T) {
	elems := []string{"ndjson", "gob"}
	if !utils.Contains(elems, "gob") {
		t.Errorf("Expected slice to contain %q", "gob")
	}
	if utils.Contains(elems, "parquet") {
		t.Errorf("Did not expect slice to contain %q", "parquet")
	}
}

func TestGenerateUniqueHash(t *testing.T) {
	a := utils.GenerateUniqueHash()
	b := utils.GenerateUniqueHash()
	if len(a) != 64 {
		t.Errorf("Expected 64 hex characters, got %d", len(a))
	}
	if a == b {
		t.Errorf("Expected distinct hashes, got %q twice", a)
	}
}
