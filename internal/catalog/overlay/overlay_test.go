package overlay

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type record struct {
	ID    string
	Title string
}

func (r record) EntityID() string { return r.ID }

type OverlaySuite struct {
	suite.Suite
	store *Store[record]
	base  []record
}

func TestOverlaySuite(t *testing.T) {
	suite.Run(t, new(OverlaySuite))
}

func (s *OverlaySuite) SetupTest() {
	s.store = NewStore[record]()
	s.base = []record{
		{ID: "P1", Title: "base one"},
		{ID: "P2", Title: "base two"},
	}
}

func ids(records []record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func (s *OverlaySuite) TestMergeWithoutMutationsReturnsBase() {
	merged := s.store.Merge(s.base)
	s.Equal([]string{"P1", "P2"}, ids(merged))
}

func (s *OverlaySuite) TestLocalWriteWinsOverBase() {
	s.store.Put(record{ID: "P1", Title: "edited"})

	merged := s.store.Merge(s.base)
	s.Equal([]string{"P1", "P2"}, ids(merged))
	s.Equal("edited", merged[0].Title)
}

func (s *OverlaySuite) TestPurelyLocalRecordsAppendInWriteOrder() {
	s.store.Put(record{ID: "P9", Title: "ninth"})
	s.store.Put(record{ID: "P3", Title: "third"})

	merged := s.store.Merge(s.base)
	s.Equal([]string{"P1", "P2", "P9", "P3"}, ids(merged))
}

func (s *OverlaySuite) TestDeletionMasksBaseRecord() {
	s.store.Delete("P1")

	merged := s.store.Merge(s.base)
	s.Equal([]string{"P2"}, ids(merged))

	// The base keeps producing P1 on every read; it stays masked.
	merged = s.store.Merge(s.base)
	s.Equal([]string{"P2"}, ids(merged))
}

func (s *OverlaySuite) TestDeleteDropsLocalRecordToo() {
	s.store.Put(record{ID: "P3", Title: "local"})
	s.store.Delete("P3")

	s.Equal([]string{"P1", "P2"}, ids(s.store.Merge(s.base)))
}

func (s *OverlaySuite) TestResurrectionClearsTombstone() {
	s.store.Delete("P1")
	s.store.Put(record{ID: "P1", Title: "reborn"})

	merged := s.store.Merge(s.base)
	s.Equal([]string{"P1", "P2"}, ids(merged))
	s.Equal("reborn", merged[0].Title)
}

func (s *OverlaySuite) TestResurrectedLocalRecordAppearsOnce() {
	s.store.Put(record{ID: "P9", Title: "ninth"})
	s.store.Delete("P9")
	s.store.Put(record{ID: "P9", Title: "ninth again"})

	merged := s.store.Merge(s.base)
	s.Equal([]string{"P1", "P2", "P9"}, ids(merged))
	s.Equal("ninth again", merged[2].Title)
}

func (s *OverlaySuite) TestMergeIsIdempotent() {
	s.store.Put(record{ID: "P1", Title: "edited"})
	s.store.Put(record{ID: "P3", Title: "new"})
	s.store.Delete("P2")

	first := s.store.Merge(s.base)
	second := s.store.Merge(s.base)
	s.Equal(first, second)
}

func (s *OverlaySuite) TestMergeToleratesDuplicateBaseIDs() {
	dup := append(s.base, record{ID: "P1", Title: "dup"})
	merged := s.store.Merge(dup)
	s.Equal([]string{"P1", "P2"}, ids(merged))
}

func (s *OverlaySuite) TestConcurrentWritersAndReaders() {
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := range 50 {
				s.store.Put(record{ID: fmt.Sprintf("W%d", i), Title: fmt.Sprintf("v%d", j)})
			}
		}()
		go func() {
			defer wg.Done()
			for range 50 {
				_ = s.store.Merge(s.base)
			}
		}()
	}
	wg.Wait()

	merged := s.store.Merge(s.base)
	s.Len(merged, len(s.base)+8)
}
