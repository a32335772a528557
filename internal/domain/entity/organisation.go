package entity

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// PaymentStatus estado de pago de una organisation (tenant).
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentPending PaymentStatus = "Pending"
)

// Valid informa si el estado pertenece al enum.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPaid, PaymentUnpaid, PaymentPending:
		return true
	}
	return false
}

// Organisation representa un tenant. Sólo Superadmin la crea y gestiona.
// OrganisationName y OrganisationID son únicos globalmente.
type Organisation struct {
	ID               string        `json:"id" bson:"_id"`
	OrganisationName string        `json:"organisationName" bson:"organisationName"`
	OnboardDate      time.Time     `json:"onboardDate" bson:"onboardDate"`
	PaymentStatus    PaymentStatus `json:"paymentStatus" bson:"paymentStatus"`
	OrganisationID   string        `json:"organisationId" bson:"organisationId"`
	CreatedAt        time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// NormalizeOrganisationName recorta espacios y normaliza a NFC para que la unicidad
// no dependa de la forma de composición de los caracteres acentuados.
func NormalizeOrganisationName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
