package diag

import (
	"math"
	"strconv"
	"testing"
)

func TestItoa(t *testing.T) {
	tests := []int64{
		0,
		1,
		-1,
		9,
		10,
		42,
		-2147483648,
		math.MaxInt64,
		math.MinInt64,
	}
	for _, v := range tests {
		var buf [20]byte
		got := string(Itoa(buf[:], v))
		if want := strconv.FormatInt(v, 10); got != want {
			t.Errorf("Itoa(%d) = %q, want %q", v, got, want)
		}
	}
}

func TestItoaUsesTail(t *testing.T) {
	var buf [20]byte
	got := Itoa(buf[:], 7)
	if len(got) != 1 || &got[0] != &buf[19] {
		t.Fatalf("Itoa(7) returned %d bytes not anchored at the buffer tail", len(got))
	}
}
