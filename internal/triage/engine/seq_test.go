package engine

import "testing"

func TestSeqGuard(t *testing.T) {
	t.Run("single in-flight request commits", func(t *testing.T) {
		g := NewSeqGuard()
		seq := g.Begin("feed")
		if !g.Commit("feed", seq) {
			t.Fatal("lone request should commit")
		}
	})

	t.Run("stale response is discarded", func(t *testing.T) {
		g := NewSeqGuard()
		first := g.Begin("feed")
		second := g.Begin("feed")

		// Newer request resolves first.
		if !g.Commit("feed", second) {
			t.Fatal("newest request should commit")
		}
		if g.Commit("feed", first) {
			t.Fatal("stale request must be discarded")
		}
	})

	t.Run("stale discarded even when it resolves before the newer one", func(t *testing.T) {
		g := NewSeqGuard()
		first := g.Begin("feed")
		second := g.Begin("feed")

		if g.Commit("feed", first) {
			t.Fatal("superseded request must not commit")
		}
		if !g.Commit("feed", second) {
			t.Fatal("newest request should still commit")
		}
	})

	t.Run("resources are independent", func(t *testing.T) {
		g := NewSeqGuard()
		feedSeq := g.Begin("feed")
		_ = g.Begin("suggestions")
		if !g.Commit("feed", feedSeq) {
			t.Fatal("a newer request on another resource must not supersede this one")
		}
	})
}
