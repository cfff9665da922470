package forwardlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterator_End(t *testing.T) {
	var zero Iterator[int]
	l := From(1)

	assert.True(t, zero.Equal(l.End()))
	assert.PanicsWithError(t, ErrIteratorEnd.Error(), func() { zero.Value() })
	assert.PanicsWithError(t, ErrIteratorEnd.Error(), func() { zero.Next() })

	it := l.Begin()
	it.Next()
	assert.True(t, it.Equal(l.End()))
	assert.PanicsWithError(t, ErrIteratorEnd.Error(), func() { it.Next() })
}

func TestIterator_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b func(l ForwardList[int]) Iterator[int]
		want bool
	}{
		{
			name: "both begin",
			a:    ForwardList[int].Begin,
			b:    ForwardList[int].Begin,
			want: true,
		},
		{
			name: "begin and end",
			a:    ForwardList[int].Begin,
			b:    ForwardList[int].End,
			want: false,
		},
		{
			name: "equal payload on different nodes",
			a:    ForwardList[int].Begin,
			b: func(l ForwardList[int]) Iterator[int] {
				it := l.Begin()
				it.Next()
				return it
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := From(7, 7)
			a, b := tt.a(l), tt.b(l)
			assert.Equal(t, tt.want, a.Equal(b))
			assert.Equal(t, tt.want, b.Equal(a))
		})
	}
}

func TestIterator_Copy(t *testing.T) {
	l := From("a", "b")
	it := l.Begin()
	saved := it
	it.Next()

	assert.Equal(t, "a", saved.Value())
	assert.Equal(t, "b", it.Value())
	assert.True(t, saved.Equal(l.Begin()))
}
