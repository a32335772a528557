package mongodb

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type salaryDoc struct {
	Base  decimal.Decimal  `bson:"base"`
	Bonus *decimal.Decimal `bson:"bonus,omitempty"`
}

func TestRegistry_DecimalComoDecimal128(t *testing.T) {
	reg := Registry()
	bonus := decimal.RequireFromString("1250.75")
	raw, err := bson.MarshalWithRegistry(reg, salaryDoc{Base: decimal.RequireFromString("40000.10"), Bonus: &bonus})
	require.NoError(t, err)

	var generic bson.M
	require.NoError(t, bson.Unmarshal(raw, &generic))
	_, ok := generic["base"].(primitive.Decimal128)
	assert.True(t, ok, "base debe guardarse como Decimal128")

	var back salaryDoc
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &back))
	assert.True(t, back.Base.Equal(decimal.RequireFromString("40000.10")))
	require.NotNil(t, back.Bonus)
	assert.True(t, back.Bonus.Equal(bonus))
}

func TestRegistry_DecimalDesdeOtrosTipos(t *testing.T) {
	reg := Registry()
	cases := map[string]bson.M{
		"string": {"base": "12.5"},
		"double": {"base": 12.5},
		"int32":  {"base": int32(12)},
		"int64":  {"base": int64(12)},
	}
	want := map[string]decimal.Decimal{
		"string": decimal.RequireFromString("12.5"),
		"double": decimal.RequireFromString("12.5"),
		"int32":  decimal.NewFromInt(12),
		"int64":  decimal.NewFromInt(12),
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			raw, err := bson.Marshal(doc)
			require.NoError(t, err)
			var out salaryDoc
			require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
			assert.True(t, out.Base.Equal(want[name]), out.Base.String())
		})
	}
}
