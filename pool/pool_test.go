package pool_test

import (
	"sync"
	"testing"

	"github.com/tessellata/geomem/pool"
)

func TestGetExactLength(t *testing.T) {
	p := pool.New[float64](16)
	buf := p.Get(10)
	if len(buf) != 10 {
		t.Fatalf("len = %d, want 10", len(buf))
	}
	if cap(buf) != 16 {
		t.Errorf("cap = %d, want size class 16", cap(buf))
	}
}

func TestSizeClassRounding(t *testing.T) {
	p := pool.New[int32](16)
	cases := []struct {
		n, class int
	}{
		{1, 4},
		{4, 4},
		{5, 8},
		{100, 128},
		{1024, 1024},
		{1025, 2048},
	}
	for _, c := range cases {
		buf := p.Get(c.n)
		if cap(buf) != c.class {
			t.Errorf("Get(%d): cap = %d, want %d", c.n, cap(buf), c.class)
		}
		p.Put(buf)
	}
}

func TestBufferReuse(t *testing.T) {
	p := pool.New[byte](16)
	b1 := p.Get(128)
	b1[0] = 42
	p.Put(b1)
	b2 := p.Get(64)
	// Same class, so the same storage comes back, dirty.
	if cap(b2) < 128 {
		t.Error("buffer capacity too small; reuse failed")
	}
	if b2[0] != 42 {
		t.Error("expected reused storage, got a fresh buffer")
	}
}

func TestStatsAccounting(t *testing.T) {
	p := pool.New[int64](16)
	a := p.Get(3)
	b := p.Get(300)
	st := p.Stats()
	if st.TotalRented != 2 || st.TotalReturned != 0 || st.Outstanding != 2 {
		t.Fatalf("after 2 gets: %+v", st)
	}
	if st.PerClass[4] != 1 || st.PerClass[512] != 1 {
		t.Errorf("per-class outstanding = %v", st.PerClass)
	}

	p.Put(a)
	p.Put(b)
	st = p.Stats()
	if st.Outstanding != 0 {
		t.Fatalf("after puts: outstanding = %d, want 0", st.Outstanding)
	}
	if len(st.PerClass) != 0 {
		t.Errorf("per-class should be empty, got %v", st.PerClass)
	}
}

func TestPutForeignBuffer(t *testing.T) {
	p := pool.New[float32](16)
	// cap 5 is not a size class; the pool must drop it, not pool it.
	p.Put(make([]float32, 5))
	buf := p.Get(5)
	if cap(buf) != 8 {
		t.Errorf("foreign buffer leaked into a class list: cap = %d", cap(buf))
	}
}

func TestPutNilIsNoop(t *testing.T) {
	p := pool.New[int](16)
	p.Put(nil)
	if st := p.Stats(); st.TotalReturned != 0 {
		t.Errorf("nil put counted: %+v", st)
	}
}

func TestGetNonPositivePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Get(0) did not panic")
		}
	}()
	pool.New[int](16).Get(0)
}

func TestMaxIdleBound(t *testing.T) {
	p := pool.New[byte](2)
	bufs := make([][]byte, 4)
	for i := range bufs {
		bufs[i] = p.Get(8)
	}
	for _, b := range bufs {
		p.Put(b)
	}
	// Only 2 buffers were retained; the next 4 gets allocate 2 fresh.
	seen := map[*byte]bool{}
	for i := 0; i < 4; i++ {
		b := p.Get(8)
		seen[&b[0]] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct buffers, got %d", len(seen))
	}
}

func TestSharedPerTypeIsolation(t *testing.T) {
	type elemA struct{ v int64 }
	type elemB struct{ v int64 }
	pa := pool.Shared[elemA]()
	pb := pool.Shared[elemB]()
	if pa == nil || pb == nil {
		t.Fatal("nil shared pool")
	}
	if pool.Shared[elemA]() != pa {
		t.Error("Shared is not stable per element type")
	}
	before := pb.Stats().TotalRented
	pa.Put(pa.Get(4))
	if pb.Stats().TotalRented != before {
		t.Error("rent against elemA pool leaked into elemB pool")
	}
}

func TestSnapshotAllIncludesSharedPools(t *testing.T) {
	type snapElem struct{ v float64 }
	p := pool.Shared[snapElem]()
	p.Put(p.Get(4))
	snap := pool.SnapshotAll()
	st, ok := snap["pool_test.snapElem"]
	if !ok {
		t.Fatalf("snapshot missing snapElem pool: %v", snap)
	}
	if st.TotalRented < 1 || st.Outstanding != 0 {
		t.Errorf("unexpected snapElem stats: %+v", st)
	}
}

func TestConcurrentGetPut(t *testing.T) {
	p := pool.New[uint32](64)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				b := p.Get(1 + i%100)
				b[0] = uint32(i)
				p.Put(b)
			}
		}()
	}
	wg.Wait()
	st := p.Stats()
	if st.Outstanding != 0 {
		t.Errorf("outstanding = %d after balanced get/put", st.Outstanding)
	}
	if st.TotalRented != 8*500 {
		t.Errorf("rented = %d, want %d", st.TotalRented, 8*500)
	}
}
