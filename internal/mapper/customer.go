// Package mapper converts customers between their persistence and transport
// representations.
//
// Every function is pure and nil-propagating: a nil input yields a nil output.
// In particular ToDTOList maps a nil slice to a nil slice, not to an empty one.
package mapper

import "github.com/joycesaquino/customer/models"

// ToDTO copies every field of customer, including the store-assigned id and
// timestamps, into the output shape.
func ToDTO(customer *models.Customer) *models.CustomerDTO {
	if customer == nil {
		return nil
	}

	return &models.CustomerDTO{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Phone:     clonePhone(customer.Phone),
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
		Status:    customer.Status,
	}
}

// ToEntity builds an unsaved customer from the create input. The id and both
// timestamps stay unset until the store assigns them. An unset status
// defaults to ACTIVE.
func ToEntity(create *models.CustomerCreate) *models.Customer {
	if create == nil {
		return nil
	}

	return &models.Customer{
		FirstName: create.FirstName,
		LastName:  create.LastName,
		Email:     create.Email,
		Phone:     clonePhone(create.Phone),
		Status:    create.Status.OrDefault(),
	}
}

// UpdateEntity returns a copy of customer with the five mutable fields
// replaced by those of update. The id and timestamps are carried over
// untouched. customer itself is never modified.
//
// A nil customer yields nil; a nil update yields customer unchanged.
func UpdateEntity(customer *models.Customer, update *models.CustomerUpdate) *models.Customer {
	if customer == nil {
		return nil
	}
	if update == nil {
		return customer
	}

	updated := *customer
	updated.FirstName = update.FirstName
	updated.LastName = update.LastName
	updated.Email = update.Email
	updated.Phone = clonePhone(update.Phone)
	updated.Status = update.Status.OrDefault()

	return &updated
}

// ToDTOList maps customers element-wise, preserving order and length.
func ToDTOList(customers []models.Customer) []models.CustomerDTO {
	if customers == nil {
		return nil
	}

	dtos := make([]models.CustomerDTO, 0, len(customers))
	for i := range customers {
		dtos = append(dtos, *ToDTO(&customers[i]))
	}

	return dtos
}

func clonePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	p := *phone
	return &p
}
