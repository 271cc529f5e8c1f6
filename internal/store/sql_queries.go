package store

import (
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/joycesaquino/customer/models"
)

const customersTable = "customers"

// customerColumns is the column order every customer query selects and
// returns; scanCustomer reads values in the same order.
var customerColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"status",
	"created_at",
	"updated_at",
}

var returningCustomerColumns = "RETURNING " + strings.Join(customerColumns, ", ")

func buildSelectAllCustomersQuery(sb squirrel.StatementBuilderType) (string, []any, error) {
	return sb.Select(customerColumns...).
		From(customersTable).
		OrderBy("id").
		ToSql()
}

func buildSelectCustomerByIDQuery(sb squirrel.StatementBuilderType, id models.CustomerID) (string, []any, error) {
	return sb.Select(customerColumns...).
		From(customersTable).
		Where(squirrel.Eq{"id": int64(id)}).
		ToSql()
}

func buildSelectCustomerByEmailQuery(sb squirrel.StatementBuilderType, email string) (string, []any, error) {
	return sb.Select(customerColumns...).
		From(customersTable).
		Where(squirrel.Eq{"email": email}).
		ToSql()
}

func buildExistsByEmailQuery(sb squirrel.StatementBuilderType, email string) (string, []any, error) {
	return sb.Select("1").
		From(customersTable).
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
}

// buildInsertCustomerQuery stamps both timestamps with now.
func buildInsertCustomerQuery(sb squirrel.StatementBuilderType, c models.Customer, now time.Time) (string, []any, error) {
	return sb.Insert(customersTable).
		Columns("first_name", "last_name", "email", "phone", "status", "created_at", "updated_at").
		Values(c.FirstName, c.LastName, c.Email, c.Phone, c.Status, now, now).
		Suffix(returningCustomerColumns).
		ToSql()
}

// buildUpdateCustomerQuery overwrites the five mutable fields and restamps
// updated_at. created_at is never written.
func buildUpdateCustomerQuery(sb squirrel.StatementBuilderType, c models.Customer, now time.Time) (string, []any, error) {
	return sb.Update(customersTable).
		Set("first_name", c.FirstName).
		Set("last_name", c.LastName).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("status", c.Status).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": int64(c.ID)}).
		Suffix(returningCustomerColumns).
		ToSql()
}

func buildDeleteCustomerQuery(sb squirrel.StatementBuilderType, id models.CustomerID) (string, []any, error) {
	return sb.Delete(customersTable).
		Where(squirrel.Eq{"id": int64(id)}).
		ToSql()
}
