package lens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lens-generator/flavor"
)

// status is shaped like a generated tagged union: a sealed interface with
// pointer variants.
type status interface{ isStatus() }

type statusActive struct{ User user }

type statusInactive struct{}

func (*statusActive) isStatus()   {}
func (*statusInactive) isStatus() {}

func statusActiveCaseW() Accessor[status, user] {
	return NewCaseWritable(
		func(s *status) *user {
			if a, ok := (*s).(*statusActive); ok {
				return &a.User
			}

			return nil
		},
		func(u user) status {
			return &statusActive{User: u}
		},
	)
}

func statusInactiveCaseR() Accessor[status, Unit] {
	return NewCaseReadable(
		func(s *status) *Unit {
			if _, ok := (*s).(*statusInactive); ok {
				return UnitRef()
			}

			return nil
		},
		func(Unit) status {
			return &statusInactive{}
		},
	)
}

func TestCaseExtractMatchingTag(t *testing.T) {
	caseW := statusActiveCaseW()

	var s status = &statusActive{User: user{id: 1}}

	got := caseW.TryGetMut(&s)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.id)

	got.name = "renamed"
	assert.Equal(t, "renamed", s.(*statusActive).User.name)
}

func TestCaseExtractNonMatchingTag(t *testing.T) {
	caseW := statusActiveCaseW()

	var s status = &statusInactive{}

	assert.Nil(t, caseW.TryGet(&s))
	assert.Nil(t, caseW.TryGetMut(&s))
}

func TestCaseRoundTrip(t *testing.T) {
	caseW := statusActiveCaseW()

	payload := user{id: 42, name: "ada"}
	embedded := caseW.Embed(payload)

	extracted := caseW.TryGet(&embedded)
	require.NotNil(t, extracted)
	assert.Equal(t, payload, *extracted)
}

func TestCaseNonMembership(t *testing.T) {
	activeW := statusActiveCaseW()
	inactiveR := statusInactiveCaseR()

	embeddedActive := activeW.Embed(user{id: 7})
	assert.Nil(t, inactiveR.TryGet(&embeddedActive))

	embeddedInactive := inactiveR.Embed(Unit{})
	assert.Nil(t, activeW.TryGet(&embeddedInactive))
}

func TestPayloadLessCaseSharedSentinel(t *testing.T) {
	inactiveR := statusInactiveCaseR()

	var a status = &statusInactive{}

	var b status = &statusInactive{}

	// Every payload-less extraction points at the one process-wide sentinel.
	assert.Same(t, UnitRef(), inactiveR.TryGet(&a))
	assert.Same(t, inactiveR.TryGet(&a), inactiveR.TryGet(&b))
}

func TestCaseComposesAsFailable(t *testing.T) {
	caseW := statusActiveCaseW()
	nameW := NewWritable(func(u *user) *string { return &u.name })

	chain, err := Compose(caseW, nameW)
	require.NoError(t, err)
	assert.Equal(t, flavor.FailableWritable, chain.Flavor())

	var s status = &statusActive{User: user{name: "before"}}

	ref := chain.TryGetMut(&s)
	require.NotNil(t, ref)
	*ref = "after"
	assert.Equal(t, "after", s.(*statusActive).User.name)

	var inactive status = &statusInactive{}

	assert.Nil(t, chain.TryGetMut(&inactive))

	// The embed capability does not survive composition.
	assert.Panics(t, func() { chain.Embed("x") })
}
