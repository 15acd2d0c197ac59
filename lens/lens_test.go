package lens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lens-generator/container"
	"lens-generator/flavor"
)

// Fixtures shaped like the code the generator emits.

type user struct {
	id   int
	name string
}

type middle struct {
	inner container.Option[string]
}

type outer struct {
	mid container.Option[middle]
}

func outerMidFr() Accessor[outer, middle] {
	return NewFailableReadable(func(o *outer) *middle {
		return o.mid.Ref()
	})
}

func outerMidFw() Accessor[outer, middle] {
	return NewFailableWritable(func(o *outer) *middle {
		return o.mid.MutRef()
	})
}

func middleInnerFr() Accessor[middle, string] {
	return NewFailableReadable(func(m *middle) *string {
		return m.inner.Ref()
	})
}

func userNameW() Accessor[user, string] {
	return NewWritable(func(u *user) *string {
		return &u.name
	})
}

func userIDR() Accessor[user, int] {
	return NewReadable(func(u *user) *int {
		return &u.id
	})
}

func TestTotalComposition(t *testing.T) {
	type account struct{ owner user }

	ownerW := NewWritable(func(a *account) *user { return &a.owner })

	nameW, err := Compose(ownerW, userNameW())
	require.NoError(t, err)
	assert.Equal(t, flavor.Writable, nameW.Flavor())

	acc := account{owner: user{id: 1, name: "ada"}}

	*nameW.GetMut(&acc) = "grace"
	assert.Equal(t, "grace", acc.owner.name)

	ownerR := NewReadable(func(a *account) *user { return &a.owner })

	idR, err := Compose(ownerR, userIDR())
	require.NoError(t, err)
	assert.Equal(t, flavor.Readable, idR.Flavor())
	assert.Equal(t, 1, *idR.Get(&acc))
}

func TestOptionalChainPresent(t *testing.T) {
	chain, err := Compose(outerMidFr(), middleInnerFr())
	require.NoError(t, err)
	assert.Equal(t, flavor.FailableReadable, chain.Flavor())

	root := outer{mid: container.Some(middle{inner: container.Some("x")})}

	got := chain.TryGet(&root)
	require.NotNil(t, got)
	assert.Equal(t, "x", *got)
}

func TestOptionalChainShortCircuits(t *testing.T) {
	secondLegCalls := 0

	counted := NewFailableReadable(func(m *middle) *string {
		secondLegCalls++
		return m.inner.Ref()
	})

	chain := Then(outerMidFr(), counted)

	root := outer{} // mid is None

	assert.Nil(t, chain.TryGet(&root))
	assert.Zero(t, secondLegCalls, "second leg must not run when the first is absent")

	root.mid.Insert(middle{inner: container.Some("y")})
	require.NotNil(t, chain.TryGet(&root))
	assert.Equal(t, 1, secondLegCalls)
}

func TestFailableWriteChain(t *testing.T) {
	innerFw := NewFailableWritable(func(m *middle) *string {
		return m.inner.MutRef()
	})

	chain := Then(outerMidFw(), innerFw)
	require.Equal(t, flavor.FailableWritable, chain.Flavor())

	root := outer{mid: container.Some(middle{inner: container.Some("old")})}

	ref := chain.TryGetMut(&root)
	require.NotNil(t, ref)

	*ref = "new"
	assert.Equal(t, "new", *root.mid.Ref().inner.Ref())

	empty := outer{}
	assert.Nil(t, chain.TryGetMut(&empty))
}

func TestCrossFamilyCompositionRejected(t *testing.T) {
	_, err := Compose(outerMidFr(), NewFailableWritable(func(m *middle) *string {
		return m.inner.MutRef()
	}))
	assert.ErrorIs(t, err, flavor.ErrUndefinedComposition)

	assert.Panics(t, func() {
		Then(userNameW(), NewReadable(func(s *string) *int { return nil }))
	})
}

func TestOwnedComposition(t *testing.T) {
	userO := NewOwned(func(o outer) user { return user{id: 9, name: "moved"} })
	nameR := NewReadable(func(u *user) *string { return &u.name })

	chain, err := Compose(userO, nameR)
	require.NoError(t, err)
	assert.Equal(t, flavor.Owned, chain.Flavor())
	assert.Equal(t, "moved", chain.Take(outer{}))

	midFo := NewFailableOwned(func(o outer) (middle, bool) {
		return o.mid.Get()
	})
	innerFo := NewFailableOwned(func(m middle) (string, bool) {
		return m.inner.Get()
	})

	foChain, err := Compose(midFo, innerFo)
	require.NoError(t, err)
	assert.Equal(t, flavor.FailableOwned, foChain.Flavor())

	v, ok := foChain.TryTake(outer{mid: container.Some(middle{inner: container.Some("z")})})
	require.True(t, ok)
	assert.Equal(t, "z", v)

	_, ok = foChain.TryTake(outer{})
	assert.False(t, ok)
}

func TestOwnedThenFailableRead(t *testing.T) {
	midO := NewOwned(func(o outer) middle {
		m, _ := o.mid.Get()
		return m
	})

	chain, err := Compose(midO, middleInnerFr())
	require.NoError(t, err)
	assert.Equal(t, flavor.FailableOwned, chain.Flavor())

	v, ok := chain.TryTake(outer{mid: container.Some(middle{inner: container.Some("w")})})
	require.True(t, ok)
	assert.Equal(t, "w", v)

	_, ok = chain.TryTake(outer{mid: container.Some(middle{})})
	assert.False(t, ok)
}

func TestReuseStability(t *testing.T) {
	chain := Then(outerMidFr(), middleInnerFr())
	root := outer{mid: container.Some(middle{inner: container.Some("stable")})}

	first := chain.TryGet(&root)
	require.NotNil(t, first)

	for range 10 {
		got := chain.TryGet(&root)
		assert.Same(t, first, got)
		assert.Equal(t, "stable", *got)
	}

	// Copying an accessor shares the function table, it never re-derives.
	clone := chain
	assert.Same(t, first, clone.TryGet(&root))
}

func TestOperationFlavorMismatches(t *testing.T) {
	fr := outerMidFr()

	assert.Panics(t, func() { fr.Get(&outer{}) })
	assert.Panics(t, func() { fr.GetMut(&outer{}) })
	assert.Panics(t, func() { fr.Take(outer{}) })
	assert.Panics(t, func() { fr.Embed(middle{}) })

	// Try-forms degrade instead of panicking.
	assert.Nil(t, fr.TryGetMut(&outer{}))

	_, ok := fr.TryTake(outer{})
	assert.False(t, ok)

	r := userIDR()
	u := user{id: 3}
	assert.Nil(t, r.TryGetMut(&u), "read flavor grants no mutation")
}
