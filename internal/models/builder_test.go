package models

import (
	"fmt"
	"sync"
	"testing"

	"charboard/internal/catalog"

	"github.com/stretchr/testify/require"
)

func TestBuilderRepository_AppendPreservesOrder(t *testing.T) {
	req := require.New(t)
	b := NewBuilderRepository()

	for _, s := range []string{"→", "★", "é", "∞"} {
		b.Append(s)
	}

	req.Equal("→★é∞", b.Text())
	req.Equal(len("→★é∞"), b.Len())
}

func TestBuilderRepository_Clear(t *testing.T) {
	req := require.New(t)
	b := NewBuilderRepository()

	b.Append("abc")
	b.Clear()
	req.Empty(b.Text())
	req.Zero(b.Len())
}

func TestBuilderRepository_Set(t *testing.T) {
	req := require.New(t)
	b := NewBuilderRepository()

	b.Append("old")
	b.Set("new contents")
	req.Equal("new contents", b.Text())
}

func TestBuilderRepository_ConcurrentAppend(t *testing.T) {
	req := require.New(t)
	b := NewBuilderRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Append("x")
		}()
	}
	wg.Wait()

	req.Equal(50, b.Len())
}

func TestSelectionRepository(t *testing.T) {
	req := require.New(t)
	sel := NewSelectionRepository()

	_, ok := sel.Current()
	req.False(ok, "no selection before first click")

	sym := catalog.Symbol{Char: '→', Name: "RIGHTWARDS ARROW", Category: "Arrows"}
	sel.Set(sym)

	got, ok := sel.Current()
	req.True(ok)
	req.Equal(sym, got)

	sel.Clear()
	_, ok = sel.Current()
	req.False(ok)
}

func TestBuilderRepository_ClickSequence(t *testing.T) {
	req := require.New(t)
	b := NewBuilderRepository()

	var want string
	for i := 0; i < 10; i++ {
		s := fmt.Sprintf("%d", i)
		b.Append(s)
		want += s
	}
	req.Equal(want, b.Text())
}
