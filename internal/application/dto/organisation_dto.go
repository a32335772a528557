package dto

import "time"

// CreateOrganisationRequest entrada para crear una organisation.
type CreateOrganisationRequest struct {
	OrganisationName string     `json:"organisationName" validate:"required,max=200"`
	OnboardDate      *time.Time `json:"onboardDate"`
	PaymentStatus    string     `json:"paymentStatus" validate:"omitempty,oneof=Paid Unpaid Pending"`
}

// UpdateOrganisationRequest actualización parcial; sólo se aplican los campos presentes.
type UpdateOrganisationRequest struct {
	OrganisationName *string    `json:"organisationName" validate:"omitempty,max=200"`
	OnboardDate      *time.Time `json:"onboardDate"`
	PaymentStatus    *string    `json:"paymentStatus" validate:"omitempty,oneof=Paid Unpaid Pending"`
}

type OrganisationResponse struct {
	ID               string    `json:"id"`
	OrganisationName string    `json:"organisationName"`
	OnboardDate      time.Time `json:"onboardDate"`
	PaymentStatus    string    `json:"paymentStatus"`
	OrganisationID   string    `json:"organisationId"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
