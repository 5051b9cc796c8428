package pqueue

import (
	"testing"
)

func TestQueue_Push(t *testing.T) {
	type push struct {
		value string
		prior float64
	}
	tests := []struct {
		name     string
		opts     []Option[string]
		pushes   []push
		expected []string
	}{
		{
			name:     "asc_unbounded",
			pushes:   []push{{"c", 3}, {"a", 1}, {"b", 2}},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "cap_drops_tail",
			opts:     []Option[string]{WithCap[string](2)},
			pushes:   []push{{"c", 3}, {"a", 1}, {"d", 4}, {"b", 2}},
			expected: []string{"a", "b"},
		},
		{
			name:     "ties_keep_push_order",
			pushes:   []push{{"x", 1}, {"y", 1}, {"w", 0}, {"z", 1}},
			expected: []string{"w", "x", "y", "z"},
		},
		{
			name:     "ties_at_cap_boundary",
			opts:     []Option[string]{WithCap[string](2)},
			pushes:   []push{{"x", 1}, {"y", 1}, {"z", 1}},
			expected: []string{"x", "y"},
		},
		{
			name:     "zero_cap",
			opts:     []Option[string]{WithCap[string](0)},
			pushes:   []push{{"x", 1}},
			expected: []string{},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q := New(test.opts...)
			for _, p := range test.pushes {
				q.Push(p.value, p.prior)
			}
			got := q.PopAll()
			if len(got) != len(test.expected) {
				t.Fatalf("queue length got: %d, expected: %d", len(got), len(test.expected))
			}
			for i := range got {
				if got[i] != test.expected[i] {
					t.Errorf("queue order got: %v, expected: %v", got, test.expected)
					break
				}
			}
			if q.Len() != 0 {
				t.Errorf("queue must be empty after PopAll, got len %d", q.Len())
			}
		})
	}
}

func TestQueue_Reuse(t *testing.T) {
	q := New(WithCap[int](2))
	q.Push(3, 3)
	q.Push(1, 1)
	if q.Len() != 2 {
		t.Errorf("queue len got: %d, expected: 2", q.Len())
	}
	if got := q.PopAll(); len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("queue order got: %v, expected: [1 3]", got)
	}
	q.Push(5, 0.5)
	if got := q.PopAll(); len(got) != 1 || got[0] != 5 {
		t.Errorf("queue after PopAll got: %v, expected: [5]", got)
	}
}
