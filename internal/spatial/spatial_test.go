package spatial

import (
	"strings"
	"testing"
)

func TestGridcularDistance(t *testing.T) {
	cases := []struct {
		dx, dy, want int
	}{
		{0, 0, 0},
		{1, 0, 2},
		{0, 1, 2},
		{1, 1, 3},
		{2, 0, 4},
		{2, 1, 5},
	}
	for _, c := range cases {
		if got := GridcularDistance(c.dx, c.dy); got != c.want {
			t.Errorf("GridcularDistance(%d,%d) = %d, want %d", c.dx, c.dy, got, c.want)
		}
	}
}

func TestCirclePointCountMonotonic(t *testing.T) {
	prev := 0
	for r := MinRadius; r <= MaxRadius; r++ {
		n := PointCount(r)
		if n <= prev {
			t.Errorf("PointCount(%d) = %d, expected more points than radius %d (%d)", r, n, r-1, prev)
		}
		prev = n
	}
}

func TestDictionaryAddIsIdempotentUnderRotation(t *testing.T) {
	d := New()
	radius := 2
	offs := Circle(radius)

	base := make([]Stone, len(offs))
	for i, o := range offs {
		if o.DX == 1 && o.DY == 0 {
			base[i] = Black
		} else if o.DX == -1 && o.DY == 0 {
			base[i] = White
		} else {
			base[i] = Empty
		}
	}
	id1 := d.Add(radius, base)

	// 90-degree rotation of the same physical configuration.
	rotated := make([]Stone, len(offs))
	idx := circleIndex(radius)
	for i, o := range offs {
		tx, ty := symmetries[1](o.DX, o.DY)
		rotated[idx[Offset{tx, ty}]] = base[i]
	}
	id2 := d.Add(radius, rotated)

	if id1 != id2 {
		t.Errorf("rotated configuration got a different id: %d vs %d", id1, id2)
	}
	if d.Len(radius) != 1 {
		t.Errorf("expected 1 distinct record, got %d", d.Len(radius))
	}
}

func TestDictionaryAddIsIdempotentUnderColorInversion(t *testing.T) {
	d := New()
	radius := 2
	offs := Circle(radius)

	black := make([]Stone, len(offs))
	white := make([]Stone, len(offs))
	for i, o := range offs {
		if o.DX == 1 && o.DY == 0 {
			black[i] = Black
			white[i] = White
		} else {
			black[i] = Empty
			white[i] = Empty
		}
	}
	id1 := d.Add(radius, black)
	id2 := d.Add(radius, white)
	if id1 != id2 {
		t.Errorf("color-inverted configuration got a different id: %d vs %d", id1, id2)
	}
}

func TestMatchFindsStoredRecord(t *testing.T) {
	d := New()
	radius := 2
	offs := Circle(radius)
	points := make([]Stone, len(offs))
	idx := circleIndex(radius)
	points[idx[Offset{1, 0}]] = Black
	d.Add(radius, points)

	stoneAt := func(dx, dy int) Stone {
		if dx == 1 && dy == 0 {
			return Black
		}
		return Empty
	}
	_, _, ok := d.Match(radius, stoneAt)
	if !ok {
		t.Fatal("expected a match for the stored configuration")
	}

	// A rotated view of the same live neighborhood must also match.
	rotatedStoneAt := func(dx, dy int) Stone {
		if dx == 0 && dy == 1 {
			return Black
		}
		return Empty
	}
	_, _, ok = d.Match(radius, rotatedStoneAt)
	if !ok {
		t.Fatal("expected a match for the rotated configuration")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	d := New()
	radius := 2
	offs := Circle(radius)
	idx := circleIndex(radius)
	points := make([]Stone, len(offs))
	points[idx[Offset{1, 0}]] = Black
	points[idx[Offset{-1, 0}]] = White
	d.Add(radius, points)

	var buf strings.Builder
	if err := d.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	d2 := New()
	if err := d2.Load(strings.NewReader(buf.String())); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d2.Len(radius) != d.Len(radius) {
		t.Fatalf("round trip record count mismatch: %d vs %d", d2.Len(radius), d.Len(radius))
	}

	var buf2 strings.Builder
	if err := d2.Save(&buf2); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if buf.String() != buf2.String() {
		t.Errorf("save/load/save round trip not byte-identical:\n%q\nvs\n%q", buf.String(), buf2.String())
	}
}
