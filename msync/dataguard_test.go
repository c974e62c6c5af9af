package msync

import (
	"strings"
	"sync"

	"github.com/10gen/string-factory/mstrings"
)

func (s *unitTestSuite) TestDataGuard() {
	guard := NewDataGuard(42)

	guard.Load(func(v int) {
		s.Assert().Equal(42, v)
	})

	guard.Store(func(v int) int {
		return v + 1
	})

	guard.Load(func(v int) {
		s.Assert().Equal(43, v)
	})
}

func (s *unitTestSuite) TestDataGuard_Factory() {
	guard := NewDataGuard(mstrings.NewFactory())

	// This block is for race detection under -race.
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			guard.Store(func(f *mstrings.Factory) *mstrings.Factory {
				f.Append("o")
				return f
			})
		}()
		go func() {
			defer wg.Done()
			guard.Load(func(f *mstrings.Factory) {
				_ = f.IndexesOf('o')
			})
		}()
	}
	wg.Wait()

	guard.Store(func(f *mstrings.Factory) *mstrings.Factory {
		f.Replace('o', '0')
		return f
	})

	guard.Load(func(f *mstrings.Factory) {
		s.Assert().Equal(strings.Repeat("0", 100), f.String())
		s.Assert().Equal(100, f.Len())
	})
}
