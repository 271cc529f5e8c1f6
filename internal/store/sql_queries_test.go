package store

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joycesaquino/customer/models"
)

const selectColumns = "id, first_name, last_name, email, phone, status, created_at, updated_at"

func TestBuildSelectQueries(t *testing.T) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := buildSelectAllCustomersQuery(sb)
	require.NoError(t, err)
	assert.Equal(t, "SELECT "+selectColumns+" FROM customers ORDER BY id", query)
	assert.Empty(t, args)

	query, args, err = buildSelectCustomerByIDQuery(sb, 7)
	require.NoError(t, err)
	assert.Equal(t, "SELECT "+selectColumns+" FROM customers WHERE id = $1", query)
	assert.Equal(t, []any{int64(7)}, args)

	query, args, err = buildSelectCustomerByEmailQuery(sb, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "SELECT "+selectColumns+" FROM customers WHERE email = $1", query)
	assert.Equal(t, []any{"a@example.com"}, args)

	query, args, err = buildExistsByEmailQuery(sb, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 FROM customers WHERE email = $1 LIMIT 1", query)
	assert.Equal(t, []any{"a@example.com"}, args)
}

func TestBuildWriteQueries_Placeholders(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := models.Customer{ID: 3, FirstName: "John", LastName: "Doe", Email: "a@example.com", Status: models.StatusActive}

	tests := []struct {
		name        string
		placeholder squirrel.PlaceholderFormat
		wantInsert  string
		wantUpdate  string
		wantDelete  string
	}{
		{
			name:        "postgres",
			placeholder: squirrel.Dollar,
			wantInsert:  "VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING " + selectColumns,
			wantUpdate:  "updated_at = $6 WHERE id = $7 RETURNING " + selectColumns,
			wantDelete:  "DELETE FROM customers WHERE id = $1",
		},
		{
			name:        "sqlite",
			placeholder: squirrel.Question,
			wantInsert:  "VALUES (?,?,?,?,?,?,?) RETURNING " + selectColumns,
			wantUpdate:  "updated_at = ? WHERE id = ? RETURNING " + selectColumns,
			wantDelete:  "DELETE FROM customers WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := squirrel.StatementBuilder.PlaceholderFormat(tt.placeholder)

			query, args, err := buildInsertCustomerQuery(sb, c, now)
			require.NoError(t, err)
			assert.Contains(t, query, "INSERT INTO customers")
			assert.Contains(t, query, tt.wantInsert)
			assert.NotContains(t, query, "(id,")
			assert.Len(t, args, 7)
			assert.Equal(t, now, args[5])
			assert.Equal(t, now, args[6])

			query, args, err = buildUpdateCustomerQuery(sb, c, now)
			require.NoError(t, err)
			assert.Contains(t, query, "UPDATE customers SET first_name = ")
			assert.Contains(t, query, tt.wantUpdate)
			assert.NotContains(t, query, "created_at =")
			assert.Len(t, args, 7)
			assert.Equal(t, int64(3), args[6])

			query, args, err = buildDeleteCustomerQuery(sb, c.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDelete, query)
			assert.Equal(t, []any{int64(3)}, args)
		})
	}
}
