package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/okian/talkscore/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func entry(i int) model.ScoreResult {
	return model.ScoreResult{ID: fmt.Sprintf("r%03d", i), OverallScore: i % 101}
}

func ids(entries []model.ScoreResult) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestRingStore_BasicOperations(t *testing.T) {
	Convey("Given an empty ring store", t, func() {
		ctx := context.Background()
		store := NewRingStore()

		So(store.Cap(), ShouldEqual, 100)
		So(store.Len(ctx), ShouldEqual, 0)

		list, err := store.List(ctx, 0)
		So(err, ShouldBeNil)
		So(list, ShouldBeEmpty)

		Convey("When saving three results", func() {
			for i := 1; i <= 3; i++ {
				So(store.Save(ctx, entry(i)), ShouldBeNil)
			}

			Convey("Then list should return them most recent first", func() {
				list, err := store.List(ctx, 0)
				So(err, ShouldBeNil)
				So(ids(list), ShouldResemble, []string{"r003", "r002", "r001"})
			})

			Convey("Then a limit should return a prefix", func() {
				list, err := store.List(ctx, 2)
				So(err, ShouldBeNil)
				So(ids(list), ShouldResemble, []string{"r003", "r002"})

				list, err = store.List(ctx, 50)
				So(err, ShouldBeNil)
				So(list, ShouldHaveLength, 3)
			})

			Convey("Then a negative limit should be rejected", func() {
				_, err := store.List(ctx, -1)
				So(errors.Is(err, ErrInvalidLimit), ShouldBeTrue)
			})

			Convey("Then clear should empty the store", func() {
				So(store.Clear(ctx), ShouldBeNil)
				So(store.Len(ctx), ShouldEqual, 0)

				So(store.Save(ctx, entry(9)), ShouldBeNil)
				list, _ := store.List(ctx, 0)
				So(ids(list), ShouldResemble, []string{"r009"})
			})
		})
	})
}

func TestRingStore_Eviction(t *testing.T) {
	Convey("Given a store with the default capacity", t, func() {
		ctx := context.Background()
		store := NewRingStore()

		Convey("When saving 101 results", func() {
			for i := 1; i <= 101; i++ {
				So(store.Save(ctx, entry(i)), ShouldBeNil)
			}

			Convey("Then exactly 100 should remain, newest first, oldest evicted", func() {
				list, err := store.List(ctx, 0)
				So(err, ShouldBeNil)
				So(list, ShouldHaveLength, 100)
				So(list[0].ID, ShouldEqual, "r101")
				So(list[99].ID, ShouldEqual, "r002")
				So(ids(list), ShouldNotContain, "r001")
			})
		})
	})

	Convey("Given a small store", t, func() {
		ctx := context.Background()
		store := NewRingStore(WithCapacity(3))

		for i := 1; i <= 7; i++ {
			So(store.Save(ctx, entry(i)), ShouldBeNil)
		}

		list, err := store.List(ctx, 0)
		So(err, ShouldBeNil)
		So(ids(list), ShouldResemble, []string{"r007", "r006", "r005"})
		So(store.Len(ctx), ShouldEqual, 3)
	})

	Convey("Given an invalid capacity option", t, func() {
		So(NewRingStore(WithCapacity(0)).Cap(), ShouldEqual, defaultCapacity)
		So(NewRingStore(WithCapacity(-4)).Cap(), ShouldEqual, defaultCapacity)
	})
}

func TestRingStore_Cancelled(t *testing.T) {
	Convey("Given a cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		store := NewRingStore()

		err := store.Save(ctx, entry(1))
		So(errors.Is(err, context.Canceled), ShouldBeTrue)
		So(store.Len(context.Background()), ShouldEqual, 0)
	})
}

func TestRingStore_Concurrent(t *testing.T) {
	Convey("Given concurrent writers and readers", t, func() {
		ctx := context.Background()
		store := NewRingStore(WithCapacity(50))

		const writers, perWriter = 8, 40
		var wg sync.WaitGroup
		for w := 0; w < writers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := 0; i < perWriter; i++ {
					_ = store.Save(ctx, entry(w*perWriter+i))
				}
			}(w)
		}
		for r := 0; r < 4; r++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < perWriter; i++ {
					list, _ := store.List(ctx, 10)
					if len(list) > 10 {
						panic("limit not honoured")
					}
				}
			}()
		}
		wg.Wait()

		Convey("Then the size bound should hold and entries should be unique", func() {
			list, err := store.List(ctx, 0)
			So(err, ShouldBeNil)
			So(list, ShouldHaveLength, 50)

			seen := make(map[string]bool)
			for _, e := range list {
				So(seen[e.ID], ShouldBeFalse)
				seen[e.ID] = true
			}
		})
	})
}

func BenchmarkRingStore_Save(b *testing.B) {
	ctx := context.Background()
	store := NewRingStore()
	e := entry(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Save(ctx, e)
	}
}

func BenchmarkRingStore_List(b *testing.B) {
	ctx := context.Background()
	store := NewRingStore()
	for i := 0; i < 100; i++ {
		_ = store.Save(ctx, entry(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.List(ctx, 20)
	}
}
