package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindRanks(t *testing.T) {
	t.Parallel()

	expected := map[Kind]int{
		KindAny:             0,
		KindNumber:          1,
		KindEnum:            2,
		KindString:          3,
		KindBoolean:         4,
		KindNullOrUndefined: 5,
		KindObject:          6,
	}
	for kind, rank := range expected {
		assert.Equal(t, rank, kind.Rank(), "rank of %s", kind)
	}
}

func TestKindNames(t *testing.T) {
	t.Parallel()

	expected := map[Kind]string{
		KindAny:             "any",
		KindNumber:          "number",
		KindEnum:            "enum",
		KindString:          "string",
		KindBoolean:         "boolean",
		KindNullOrUndefined: "null or undefined",
		KindObject:          "object",
	}
	for kind, name := range expected {
		assert.Equal(t, name, kind.String())
	}
}

func TestKindSetDeduplicatesAndPreservesOrder(t *testing.T) {
	t.Parallel()

	s := NewKindSet(KindNumber, KindString, KindNumber, KindString)
	assert.Equal(t, []Kind{KindNumber, KindString}, s.Kinds())
	assert.Equal(t, "number | string", s.String())
}

func TestKindSetContains(t *testing.T) {
	t.Parallel()

	s := NewKindSet(KindNumber, KindObject)
	assert.True(t, s.Contains(KindNumber))
	assert.True(t, s.Contains(KindObject))
	assert.False(t, s.Contains(KindString))
}

func TestKindSetMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		set      KindSet
		expected Kind
	}{
		{"singleton", NewKindSet(KindNumber), KindNumber},
		{"object beats number", NewKindSet(KindNumber, KindObject), KindObject},
		{"null beats string", NewKindSet(KindString, KindNullOrUndefined), KindNullOrUndefined},
		{"insertion order irrelevant", NewKindSet(KindBoolean, KindNumber), KindBoolean},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.set.Max())
		})
	}
}

func TestKindSetMaxEmpty(t *testing.T) {
	t.Parallel()

	var s KindSet
	assert.True(t, s.Empty())
	assert.Equal(t, KindAny, s.Max())
}
