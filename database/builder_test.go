package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhereClauseToCondition(t *testing.T) {
	t.Run("equality", func(t *testing.T) {
		clause := &WhereClause{Column: "slug", Operator: "=", Value: "hoodies"}
		condition, value, hasValue := clause.toCondition()

		assert.Equal(t, "slug = ?", condition)
		assert.Equal(t, "hoodies", value)
		assert.True(t, hasValue)
	})

	t.Run("custom operator", func(t *testing.T) {
		clause := &WhereClause{Column: "base_price", Operator: ">=", Value: uint64(1000)}
		condition, value, hasValue := clause.toCondition()

		assert.Equal(t, "base_price >= ?", condition)
		assert.Equal(t, uint64(1000), value)
		assert.True(t, hasValue)
	})

	t.Run("is null carries no value", func(t *testing.T) {
		clause := &WhereClause{Column: "notes", Operator: "IS NULL"}
		condition, value, hasValue := clause.toCondition()

		assert.Equal(t, "notes IS NULL", condition)
		assert.Nil(t, value)
		assert.False(t, hasValue)
	})

	t.Run("in wraps values for expansion", func(t *testing.T) {
		clause := &WhereClause{Column: "id", Operator: "IN", Value: []any{1, 2, 3}}
		condition, _, hasValue := clause.toCondition()

		assert.Equal(t, "id IN (?)", condition)
		assert.True(t, hasValue)
	})
}

func TestQueryBuilderCollectsClauses(t *testing.T) {
	q := Query[struct{}](nil).
		Where("is_active", true).
		WhereOp("base_price", "<=", 5000).
		WhereILike("name", "%hoodie%").
		OrderBy("created_at", DESC).
		Limit(20).
		Offset(40)

	require.Len(t, q.wheres, 3)
	assert.Equal(t, "=", q.wheres[0].Operator)
	assert.Equal(t, "<=", q.wheres[1].Operator)
	assert.Equal(t, "ILIKE", q.wheres[2].Operator)

	require.Len(t, q.orders, 1)
	assert.Equal(t, "created_at", q.orders[0].Column)
	assert.Equal(t, "DESC", q.orders[0].Direction)

	require.NotNil(t, q.limitVal)
	assert.Equal(t, 20, *q.limitVal)
	require.NotNil(t, q.offsetVal)
	assert.Equal(t, 40, *q.offsetVal)
}

func TestWhereGroupBuilder(t *testing.T) {
	q := Query[struct{}](nil).
		Or().
		WhereILike("name", "%tee%").
		WhereILike("description", "%tee%").
		End()

	require.Len(t, q.whereGroups, 1)
	assert.Equal(t, "OR", q.whereGroups[0].Connector)
	assert.Len(t, q.whereGroups[0].Conditions, 2)
}
