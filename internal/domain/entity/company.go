package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company es el perfil de empresa de un usuario dentro de una organisation: marca, estructura
// salarial, condiciones de empleo, beneficios, cumplimiento y políticas.
// A lo sumo una Company activa por (Organisation, CreatedBy); se desactiva, nunca se borra.
type Company struct {
	ID              string             `json:"id" bson:"_id"`
	Organisation    string             `json:"organisation" bson:"organisation"`
	Profile         CompanyProfile     `json:"profile" bson:"profile"`
	Branding        Branding           `json:"branding" bson:"branding"`
	SalaryStructure SalaryStructure    `json:"salaryStructure" bson:"salaryStructure"`
	EmploymentTerms EmploymentTerms    `json:"employmentTerms" bson:"employmentTerms"`
	Benefits        []Benefit          `json:"benefits" bson:"benefits"`
	Compliance      []ComplianceRecord `json:"compliance" bson:"compliance"`
	Policies        Policies           `json:"policies" bson:"policies"`
	Settings        CompanySettings    `json:"settings" bson:"settings"`
	IsActive        bool               `json:"isActive" bson:"isActive"`
	CreatedBy       string             `json:"createdBy" bson:"createdBy"`
	LastModifiedBy  string             `json:"lastModifiedBy" bson:"lastModifiedBy"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CompanyProfile datos de identidad de la empresa.
type CompanyProfile struct {
	CompanyName        string      `json:"companyName" bson:"companyName"`
	Industry           string      `json:"industry" bson:"industry"`
	CompanyType        string      `json:"companyType" bson:"companyType"`
	Description        string      `json:"description,omitempty" bson:"description,omitempty"`
	Website            string      `json:"website,omitempty" bson:"website,omitempty"`
	FoundedYear        int         `json:"foundedYear,omitempty" bson:"foundedYear,omitempty"`
	EmployeeCount      int         `json:"employeeCount,omitempty" bson:"employeeCount,omitempty"`
	RegistrationNumber string      `json:"registrationNumber,omitempty" bson:"registrationNumber,omitempty"`
	TaxID              string      `json:"taxId,omitempty" bson:"taxId,omitempty"`
	Address            Address     `json:"address" bson:"address"`
	ContactInfo        ContactInfo `json:"contactInfo" bson:"contactInfo"`
}

type Address struct {
	Street     string `json:"street,omitempty" bson:"street,omitempty"`
	City       string `json:"city,omitempty" bson:"city,omitempty"`
	State      string `json:"state,omitempty" bson:"state,omitempty"`
	Country    string `json:"country,omitempty" bson:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
}

type ContactInfo struct {
	Email         string `json:"email" bson:"email"`
	Phone         string `json:"phone" bson:"phone"`
	ContactPerson string `json:"contactPerson" bson:"contactPerson"`
}

// Branding identidad visual usada en las cartas de oferta.
type Branding struct {
	LogoURL        string `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty" bson:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty" bson:"secondaryColor,omitempty"`
	FontFamily     string `json:"fontFamily,omitempty" bson:"fontFamily,omitempty"`
	LetterheadURL  string `json:"letterheadUrl,omitempty" bson:"letterheadUrl,omitempty"`
	EmailSignature string `json:"emailSignature,omitempty" bson:"emailSignature,omitempty"`
}

// SalaryStructure cómo se descompone el CTC de la empresa.
type SalaryStructure struct {
	Currency        string            `json:"currency,omitempty" bson:"currency,omitempty"`
	PayFrequency    string            `json:"payFrequency,omitempty" bson:"payFrequency,omitempty"` // monthly, biweekly, weekly
	BasicPercentage decimal.Decimal   `json:"basicPercentage" bson:"basicPercentage"`
	HRAPercentage   decimal.Decimal   `json:"hraPercentage" bson:"hraPercentage"`
	Components      []SalaryComponent `json:"components" bson:"components"`
}

// SalaryComponent Type: earning | deduction. CalculationType: fixed | percentage.
type SalaryComponent struct {
	Name            string          `json:"name" bson:"name"`
	Type            string          `json:"type" bson:"type"`
	CalculationType string          `json:"calculationType" bson:"calculationType"`
	Value           decimal.Decimal `json:"value" bson:"value"`
	IsTaxable       bool            `json:"isTaxable" bson:"isTaxable"`
}

// EmploymentTerms condiciones estándar de contratación.
type EmploymentTerms struct {
	ProbationPeriodMonths int         `json:"probationPeriodMonths,omitempty" bson:"probationPeriodMonths,omitempty"`
	NoticePeriodDays      int         `json:"noticePeriodDays,omitempty" bson:"noticePeriodDays,omitempty"`
	WorkingHoursPerWeek   int         `json:"workingHoursPerWeek,omitempty" bson:"workingHoursPerWeek,omitempty"`
	WorkingDays           []string    `json:"workingDays,omitempty" bson:"workingDays,omitempty"`
	LeavePolicy           LeavePolicy `json:"leavePolicy" bson:"leavePolicy"`
}

type LeavePolicy struct {
	AnnualLeave int `json:"annualLeave,omitempty" bson:"annualLeave,omitempty"`
	SickLeave   int `json:"sickLeave,omitempty" bson:"sickLeave,omitempty"`
	CasualLeave int `json:"casualLeave,omitempty" bson:"casualLeave,omitempty"`
}

// Policies textos de políticas que se insertan en las ofertas.
type Policies struct {
	CodeOfConduct   string            `json:"codeOfConduct,omitempty" bson:"codeOfConduct,omitempty"`
	RemoteWork      string            `json:"remoteWork,omitempty" bson:"remoteWork,omitempty"`
	Confidentiality string            `json:"confidentiality,omitempty" bson:"confidentiality,omitempty"`
	NonCompete      string            `json:"nonCompete,omitempty" bson:"nonCompete,omitempty"`
	Leave           string            `json:"leave,omitempty" bson:"leave,omitempty"`
	Other           map[string]string `json:"other,omitempty" bson:"other,omitempty"`
}

// CompanySettings preferencias operativas del módulo de ofertas.
type CompanySettings struct {
	OfferValidityDays int    `json:"offerValidityDays,omitempty" bson:"offerValidityDays,omitempty"`
	DefaultTemplateID string `json:"defaultTemplateId,omitempty" bson:"defaultTemplateId,omitempty"`
	RequireApproval   bool   `json:"requireApproval" bson:"requireApproval"`
	Timezone          string `json:"timezone,omitempty" bson:"timezone,omitempty"`
	DateFormat        string `json:"dateFormat,omitempty" bson:"dateFormat,omitempty"`
}

// Tipos de beneficio.
const (
	BenefitMonetary    = "monetary"
	BenefitNonMonetary = "non-monetary"
	BenefitInsurance   = "insurance"
	BenefitAllowance   = "allowance"
	BenefitEquity      = "equity"
)

// BenefitTypes enumera los tipos válidos de beneficio.
var BenefitTypes = []string{BenefitMonetary, BenefitNonMonetary, BenefitInsurance, BenefitAllowance, BenefitEquity}

type Benefit struct {
	Name         string           `json:"name" bson:"name"`
	Type         string           `json:"type" bson:"type"`
	Value        decimal.Decimal  `json:"value" bson:"value"`
	IsMandatory  bool             `json:"isMandatory" bson:"isMandatory"`
	Description  string           `json:"description,omitempty" bson:"description,omitempty"`
	AnnualValue  *decimal.Decimal `json:"annualValue,omitempty" bson:"annualValue,omitempty"`
	MonthlyValue *decimal.Decimal `json:"monthlyValue,omitempty" bson:"monthlyValue,omitempty"`
}

var monthsPerYear = decimal.NewFromInt(12)

// BenefitList devuelve los beneficios con valores anual/mensual derivados entre sí cuando sólo
// uno está presente. Para beneficios monetarios o asignaciones sin ninguno de los dos, Value se
// toma como importe mensual. No modifica la empresa.
func (c *Company) BenefitList() []Benefit {
	out := make([]Benefit, 0, len(c.Benefits))
	for _, b := range c.Benefits {
		switch {
		case b.AnnualValue != nil && b.MonthlyValue == nil:
			m := b.AnnualValue.Div(monthsPerYear).Round(2)
			b.MonthlyValue = &m
		case b.MonthlyValue != nil && b.AnnualValue == nil:
			a := b.MonthlyValue.Mul(monthsPerYear).Round(2)
			b.AnnualValue = &a
		case b.AnnualValue == nil && b.MonthlyValue == nil &&
			(b.Type == BenefitMonetary || b.Type == BenefitAllowance) && !b.Value.IsZero():
			m := b.Value
			a := b.Value.Mul(monthsPerYear).Round(2)
			b.MonthlyValue, b.AnnualValue = &m, &a
		}
		out = append(out, b)
	}
	return out
}

// Estados de un registro de cumplimiento.
const (
	ComplianceCompliant    = "compliant"
	CompliancePending      = "pending"
	ComplianceNonCompliant = "non_compliant"
	ComplianceExpired      = "expired"
)

type ComplianceRecord struct {
	Standard          string     `json:"standard" bson:"standard"`
	Description       string     `json:"description,omitempty" bson:"description,omitempty"`
	IsRequired        bool       `json:"isRequired" bson:"isRequired"`
	Status            string     `json:"status" bson:"status"`
	ExpiryDate        *time.Time `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
	CertificateNumber string     `json:"certificateNumber,omitempty" bson:"certificateNumber,omitempty"`
}

// Satisfied informa si el registro cuenta como cumplido a la fecha now.
func (r ComplianceRecord) Satisfied(now time.Time) bool {
	if r.Status != ComplianceCompliant {
		return false
	}
	return r.ExpiryDate == nil || !r.ExpiryDate.Before(now)
}

// IsCompliant es falso si algún registro obligatorio no está cumplido (estado distinto de
// compliant o vencido).
func (c *Company) IsCompliant(now time.Time) bool {
	for _, r := range c.Compliance {
		if r.IsRequired && !r.Satisfied(now) {
			return false
		}
	}
	return true
}

// PendingCompliance devuelve los registros obligatorios no cumplidos a la fecha now.
func (c *Company) PendingCompliance(now time.Time) []ComplianceRecord {
	var out []ComplianceRecord
	for _, r := range c.Compliance {
		if r.IsRequired && !r.Satisfied(now) {
			out = append(out, r)
		}
	}
	return out
}
