package data

import "testing"

func TestWeightedSum(t *testing.T) {
	table := []WeightedEntry[string]{{Key: "a", Weight: 3}, {Key: "b", Weight: 5}}
	if got := WeightedSum(table); got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}
}

func TestWeightedRandBoundaries(t *testing.T) {
	table := []WeightedEntry[string]{{Key: "a", Weight: 3}, {Key: "b", Weight: 5}}
	cases := []struct {
		draw int
		want string
	}{
		{0, "a"},
		{2, "a"},
		{3, "b"},
		{7, "b"},
	}
	for _, c := range cases {
		got, err := WeightedRand(table, c.draw)
		if err != nil {
			t.Fatalf("draw %d: unexpected error %v", c.draw, err)
		}
		if got != c.want {
			t.Fatalf("draw %d: got %q want %q", c.draw, got, c.want)
		}
	}
}

func TestWeightedRandEmptyTable(t *testing.T) {
	_, err := WeightedRand([]WeightedEntry[string]{}, 0)
	if err == nil {
		t.Fatalf("expected error on empty table")
	}
}

func TestWeightOfMissingKey(t *testing.T) {
	table := []WeightedEntry[string]{{Key: "a", Weight: 3}}
	_, err := WeightOf("missing", table)
	if err == nil {
		t.Fatalf("expected LookupError")
	}
	if _, ok := err.(*LookupError); !ok {
		t.Fatalf("expected *LookupError, got %T", err)
	}
}

func TestWeightOfPresentKey(t *testing.T) {
	table := []WeightedEntry[string]{{Key: "a", Weight: 3}, {Key: "b", Weight: 5}}
	got, err := WeightOf("b", table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}
