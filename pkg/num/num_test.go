package num

import "testing"

func TestClamp(t *testing.T) {
	t.Parallel()

	if got := Clamp(5, 1, 10); got != 5 {
		t.Fatalf("expected 5, got: %d", got)
	}
	if got := Clamp(-3, 1, 10); got != 1 {
		t.Fatalf("expected lower bound 1, got: %d", got)
	}
	if got := Clamp(42.0, 1.0, 10.0); got != 10.0 {
		t.Fatalf("expected upper bound 10, got: %v", got)
	}
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	if Min(2, 3) != 2 || Max(2, 3) != 3 {
		t.Fatalf("expected Min=2 Max=3")
	}
	if Min("a", "b") != "a" || Max("a", "b") != "b" {
		t.Fatalf("expected string ordering")
	}
}

func TestSumExact_NoFloatDrift(t *testing.T) {
	t.Parallel()

	sum, err := SumExact([]string{"0.1", "0.2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.String() != "0.3" {
		t.Fatalf("expected exact 0.3, got: %s", sum)
	}
}

func TestSumExact_ParseError(t *testing.T) {
	t.Parallel()

	if _, err := SumExact([]string{"1", "nope"}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestMeanExact(t *testing.T) {
	t.Parallel()

	mean, err := MeanExact([]string{"1", "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mean.String() != "1.5" {
		t.Fatalf("expected 1.5, got: %s", mean)
	}

	if _, err := MeanExact(nil); err == nil {
		t.Fatalf("expected error for empty input")
	}
}
