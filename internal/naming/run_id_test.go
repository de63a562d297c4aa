package naming

import (
	"math/big"
	"sort"
	"testing"

	"github.com/google/uuid"
)

func TestEncodeRunID(t *testing.T) {
	var zero, full uuid.UUID
	for i := range full {
		full[i] = 0xff
	}
	if got := EncodeRunID(zero); got != "0000000000000000000000000" {
		t.Errorf("zero = %q", got)
	}
	if got := EncodeRunID(full); len(got) != RunIDLen {
		t.Errorf("full = %q (%d chars)", got, len(got))
	}

	u := uuid.MustParse("0190f4a2-7c3e-7abc-8def-0123456789ab")
	n, ok := new(big.Int).SetString(EncodeRunID(u), 36)
	if !ok {
		t.Fatal("not base36")
	}
	var back uuid.UUID
	n.FillBytes(back[:])
	if back != u {
		t.Errorf("decoded %s, want %s", back, u)
	}
}

func TestNewRunID_Ordered(t *testing.T) {
	ids := make([]string, 50)
	for i := range ids {
		id, err := NewRunID()
		if err != nil {
			t.Fatal(err)
		}
		if len(id) != RunIDLen {
			t.Fatalf("id %q has %d chars", id, len(id))
		}
		ids[i] = id
	}
	if !sort.StringsAreSorted(ids) {
		t.Errorf("run ids not in creation order: %v", ids)
	}
}
