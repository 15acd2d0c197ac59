package flavor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeTotalLegsStayTotal(t *testing.T) {
	tests := []struct {
		name string
		a, b Enum
		want Enum
	}{
		{"readable chain", Readable, Readable, Readable},
		{"writable chain", Writable, Writable, Writable},
		{"owned then readable", Owned, Readable, Owned},
		{"owned then owned", Owned, Owned, Owned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compose(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.False(t, got.IsFailable())
		})
	}
}

func TestComposeFailableLegInfects(t *testing.T) {
	tests := []struct {
		name string
		a, b Enum
		want Enum
	}{
		{"failable first", FailableReadable, Readable, FailableReadable},
		{"failable second", Readable, FailableReadable, FailableReadable},
		{"both failable", FailableReadable, FailableReadable, FailableReadable},
		{"failable write first", FailableWritable, Writable, FailableWritable},
		{"failable write second", Writable, FailableWritable, FailableWritable},
		{"owned then failable", Owned, FailableReadable, FailableOwned},
		{"failable owned first", FailableOwned, Readable, FailableOwned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compose(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsFailable())
		})
	}
}

func TestComposeCaseFlavorsDegrade(t *testing.T) {
	got, err := Compose(CaseReadable, Readable)
	require.NoError(t, err)
	assert.Equal(t, FailableReadable, got)

	got, err = Compose(Readable, CaseReadable)
	require.NoError(t, err)
	assert.Equal(t, FailableReadable, got)

	got, err = Compose(CaseWritable, Writable)
	require.NoError(t, err)
	assert.Equal(t, FailableWritable, got)

	got, err = Compose(Writable, CaseWritable)
	require.NoError(t, err)
	assert.Equal(t, FailableWritable, got)
}

func TestComposeCrossFamilyRejected(t *testing.T) {
	pairs := [][2]Enum{
		{Readable, Writable},
		{Writable, Readable},
		{FailableReadable, Writable},
		{Writable, FailableReadable},
		{CaseReadable, Writable},
		{CaseWritable, Readable},
	}

	for _, p := range pairs {
		_, err := Compose(p[0], p[1])
		assert.ErrorIs(t, err, ErrUndefinedComposition, "pair (%s, %s)", p[0], p[1])
	}
}

func TestComposeOwnedOnlyFirstLeg(t *testing.T) {
	pairs := [][2]Enum{
		{Readable, Owned},
		{Writable, Owned},
		{FailableReadable, FailableOwned},
		{CaseReadable, Owned},
	}

	for _, p := range pairs {
		_, err := Compose(p[0], p[1])
		assert.ErrorIs(t, err, ErrUndefinedComposition, "pair (%s, %s)", p[0], p[1])
	}
}

func TestComposeNoMutationThroughConsumingLeg(t *testing.T) {
	_, err := Compose(Owned, Writable)
	assert.ErrorIs(t, err, ErrUndefinedComposition)

	_, err = Compose(FailableOwned, FailableWritable)
	assert.ErrorIs(t, err, ErrUndefinedComposition)
}

func TestComposeInvalidFlavor(t *testing.T) {
	_, err := Compose(Enum(0), Readable)
	assert.ErrorIs(t, err, ErrUndefinedComposition)

	_, err = Compose(Readable, Enum(99))
	assert.ErrorIs(t, err, ErrUndefinedComposition)
}

func TestFamilies(t *testing.T) {
	assert.Equal(t, FamilyRead, Readable.Family())
	assert.Equal(t, FamilyRead, FailableReadable.Family())
	assert.Equal(t, FamilyRead, CaseReadable.Family())
	assert.Equal(t, FamilyWrite, Writable.Family())
	assert.Equal(t, FamilyWrite, FailableWritable.Family())
	assert.Equal(t, FamilyWrite, CaseWritable.Family())
	assert.Equal(t, FamilyOwn, Owned.Family())
	assert.Equal(t, FamilyOwn, FailableOwned.Family())
	assert.Equal(t, FamilyUnknown, Enum(0).Family())
}

func TestSuffixes(t *testing.T) {
	want := map[Enum]string{
		Readable:         "R",
		Writable:         "W",
		FailableReadable: "Fr",
		FailableWritable: "Fw",
		Owned:            "O",
		FailableOwned:    "Fo",
		CaseReadable:     "CaseR",
		CaseWritable:     "CaseW",
	}

	for fl, suffix := range want {
		assert.Equal(t, suffix, fl.Suffix())
	}
}
