package bintree

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeDefaultsToPreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintrav.bintree")
	defer teardown()
	//
	tree := New(createTreeForTest())
	if diff := cmp.Diff([]int{1, 2, 4, 5, 3}, tree.Values()); diff != "" {
		t.Errorf("default traversal mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeInjectedStrategy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintrav.bintree")
	defer teardown()
	//
	root := createTreeForTest()
	c := []struct {
		strategy Strategy[int]
		want     []int
	}{
		{PreOrder[int], []int{1, 2, 4, 5, 3}},
		{InOrder[int], []int{4, 2, 5, 1, 3}},
		{PostOrder[int], []int{4, 5, 2, 3, 1}},
		{PostOrderDoublePush[int], []int{4, 5, 2, 3, 1}},
		{nil, []int{1, 2, 4, 5, 3}},
	}
	for i, x := range c {
		tree := New(root, Traversal(x.strategy))
		if diff := cmp.Diff(x.want, tree.Values()); diff != "" {
			t.Errorf("%d: traversal mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestTreeAllRestarts(t *testing.T) {
	tree := New(createTreeForTest(), Traversal(PostOrder[int]))
	seq := tree.All()
	var first, second []int
	for v := range seq {
		first = append(first, v)
	}
	for v := range seq {
		second = append(second, v)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("expected ranging twice to yield the same values (-first +second):\n%s", diff)
	}
}

func TestTreeSeesMutations(t *testing.T) {
	root := createTreeForTest()
	tree := New(root)
	Inc(root.Left.Left)
	if diff := cmp.Diff([]int{1, 2, 5, 5, 3}, collectSeq(tree.PreOrder())); diff != "" {
		t.Errorf("pre-order after Inc mismatch (-want +got):\n%s", diff)
	}
	Dec(root.Right)
	if diff := cmp.Diff([]int{5, 5, 2, 2, 1}, collectSeq(tree.PostOrder())); diff != "" {
		t.Errorf("post-order after Dec mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{5, 2, 5, 1, 2}, collectSeq(tree.InOrder())); diff != "" {
		t.Errorf("in-order after Inc/Dec mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeEmpty(t *testing.T) {
	var zero Tree[int]
	var nilTree *Tree[int]
	for name, tree := range map[string]*Tree[int]{
		"New(nil)": New[int](nil, Traversal(InOrder[int])),
		"zero":     &zero,
		"nil":      nilTree,
	} {
		assert.True(t, tree.IsEmpty(), name)
		assert.Empty(t, tree.Values(), name)
		assert.Empty(t, collectSeq(tree.PreOrder()), name)
		assert.Empty(t, collectSeq(tree.InOrder()), name)
		assert.Empty(t, collectSeq(tree.PostOrder()), name)
	}
}

func TestTreeIteratorReset(t *testing.T) {
	it := New(createTreeForTest(), Traversal(InOrder[int])).Iterator()
	require.True(t, it.Next())
	assert.Equal(t, 4, it.Value())
	assert.ErrorIs(t, it.Reset(), ErrResetNotSupported)
}

// --- Orders ----------------------------------------------------------------

func TestOrderParse(t *testing.T) {
	for _, o := range []Order{OrderPre, OrderIn, OrderPost, OrderPostDoublePush} {
		p, err := ParseOrder(strings.ToUpper(o.String()))
		require.NoError(t, err)
		assert.Equal(t, o, p)
	}
	_, err := ParseOrder("level")
	assert.ErrorIs(t, err, ErrUnknownOrder)
	assert.Equal(t, "Order(9)", Order(9).String())
}

func TestOrderStrategy(t *testing.T) {
	root := createTreeForTest()
	c := []struct {
		order Order
		want  []int
	}{
		{OrderPre, []int{1, 2, 4, 5, 3}},
		{OrderIn, []int{4, 2, 5, 1, 3}},
		{OrderPost, []int{4, 5, 2, 3, 1}},
		{OrderPostDoublePush, []int{4, 5, 2, 3, 1}},
		{Order(-1), []int{1, 2, 4, 5, 3}},
	}
	for _, x := range c {
		if diff := cmp.Diff(x.want, collect(StrategyFor[int](x.order)(root))); diff != "" {
			t.Errorf("%s: traversal mismatch (-want +got):\n%s", x.order, diff)
		}
	}
}

// --- Dump ------------------------------------------------------------------

func TestTreeDump(t *testing.T) {
	root := createTreeForTest()
	root.Right.Right = NewNode(6)
	s := Dump(root)
	t.Logf("tree =\n%s", s)
	lines := strings.Split(strings.TrimSpace(s), "\n")
	// root marker, 1, 2, 4, 5, 3, ∅, 6
	if len(lines) != 8 {
		t.Fatalf("expected dump to have 8 lines, has %d", len(lines))
	}
	if !strings.HasSuffix(lines[6], "∅") || !strings.HasSuffix(lines[7], "6") {
		t.Errorf("expected missing left child of 3 to be marked, isn't")
	}
	if Dump[int](nil) != "∅\n" {
		t.Errorf("expected empty tree to dump as ∅, is %q", Dump[int](nil))
	}
}

func collectSeq[T any](seq func(func(T) bool)) []T {
	values := []T{}
	for v := range seq {
		values = append(values, v)
	}
	return values
}
