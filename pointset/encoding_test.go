package pointset

import "testing"

func TestEncodeDecodePoint_RoundTrip(t *testing.T) {
	orig := []float32{0.0, 1.5, -2.25, 3.75}

	b, err := EncodePoint(orig)
	if err != nil {
		t.Fatalf("EncodePoint failed: %v", err)
	}

	decoded, err := DecodePoint(b)
	if err != nil {
		t.Fatalf("DecodePoint failed: %v", err)
	}
	if len(decoded) != len(orig) {
		t.Fatalf("decoded length = %d, want %d", len(decoded), len(orig))
	}
	for i := range orig {
		if got, want := decoded[i], orig[i]; got != want {
			t.Fatalf("decoded[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestEncodeDecodePoint_Empty(t *testing.T) {
	b, err := EncodePoint(nil)
	if err != nil {
		t.Fatalf("EncodePoint(nil) failed: %v", err)
	}
	if len(b) != 0 {
		t.Fatalf("expected empty blob for nil coordinates, got len=%d", len(b))
	}

	coords, err := DecodePoint(nil)
	if err != nil {
		t.Fatalf("DecodePoint(nil) failed: %v", err)
	}
	if len(coords) != 0 {
		t.Fatalf("expected empty coordinates for nil blob, got len=%d", len(coords))
	}
}

func TestDecodePoint_InvalidLength(t *testing.T) {
	if _, err := DecodePoint([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for blob length not a multiple of 4")
	}
}
