package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySingletons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    StaticType
		expected Kind
	}{
		{"string", StringType(), KindString},
		{"number", NumberType(), KindNumber},
		{"boolean", BooleanType(), KindBoolean},
		{"null", NullType(), KindNullOrUndefined},
		{"undefined", UndefinedType(), KindNullOrUndefined},
		{"void", VoidType(), KindNullOrUndefined},
		{"any", AnyType(), KindAny},
		{"object", ObjectType(), KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Classify(tt.input)
			require.Equal(t, 1, set.Len())
			assert.Equal(t, tt.expected, set.Kinds()[0])
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	t.Parallel()

	// when several flags are set the higher-priority rule wins
	tests := []struct {
		name     string
		flags    TypeFlag
		expected Kind
	}{
		{"string beats number", FlagString | FlagNumber, KindString},
		{"number beats boolean", FlagNumber | FlagBoolean, KindNumber},
		{"boolean beats null", FlagBoolean | FlagNull, KindBoolean},
		{"null beats any", FlagNull | FlagAny, KindNullOrUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Classify(StaticType{Flags: tt.flags})
			assert.Equal(t, []Kind{tt.expected}, set.Kinds())
		})
	}
}

func TestClassifyUnion(t *testing.T) {
	t.Parallel()

	set := Classify(UnionOf(NumberType(), StringType()))
	assert.Equal(t, []Kind{KindNumber, KindString}, set.Kinds())
	assert.Equal(t, "number | string", set.String())
}

func TestClassifyUnionDeduplicates(t *testing.T) {
	t.Parallel()

	// two numeric literal members collapse to one kind
	set := Classify(UnionOf(NumberType(), NumberType(), StringType()))
	assert.Equal(t, []Kind{KindNumber, KindString}, set.Kinds())
}

func TestClassifyNestedUnion(t *testing.T) {
	t.Parallel()

	set := Classify(UnionOf(UnionOf(StringType(), NullType()), ObjectType()))
	assert.Equal(t, []Kind{KindString, KindNullOrUndefined, KindObject}, set.Kinds())
}

func TestClassifyNeverProducesEnum(t *testing.T) {
	t.Parallel()

	// the enum kind is reserved: no input reaches it
	inputs := []StaticType{
		StringType(), NumberType(), BooleanType(), NullType(),
		UndefinedType(), VoidType(), AnyType(), ObjectType(),
		UnionOf(NumberType(), ObjectType()),
	}
	for _, input := range inputs {
		assert.False(t, Classify(input).Contains(KindEnum))
	}
}

func TestClassifyIsTotalAndDeterministic(t *testing.T) {
	t.Parallel()

	// every flag combination yields a non-empty set, and repeated calls agree
	for flags := TypeFlag(0); flags < 1<<7; flags++ {
		input := StaticType{Flags: flags}
		first := Classify(input)
		second := Classify(input)
		assert.False(t, first.Empty(), "flags %b classified to empty set", flags)
		assert.Equal(t, first.Kinds(), second.Kinds())
	}
}
