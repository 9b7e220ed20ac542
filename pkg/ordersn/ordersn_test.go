package ordersn

import (
	"strings"
	"testing"
)

func TestGen(t *testing.T) {
	sn := Gen(123456789)
	if !strings.HasPrefix(sn, "ORD-") {
		t.Fatalf("expected ORD- prefix, got %s", sn)
	}
	if len(sn) < len("ORD-")+10 {
		t.Fatalf("order number too short: %s", sn)
	}
}

// 同一 ID 编码结果必须稳定，不同 ID 不能撞号
func TestGen_Stable(t *testing.T) {
	if Gen(42) != Gen(42) {
		t.Fatal("order number not deterministic")
	}

	seen := make(map[string]struct{}, 1000)
	for i := int64(1); i <= 1000; i++ {
		sn := Gen(i)
		if _, ok := seen[sn]; ok {
			t.Fatalf("duplicate order number: %s", sn)
		}
		seen[sn] = struct{}{}
	}
}
