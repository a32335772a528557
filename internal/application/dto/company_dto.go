package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
)

// CompanySections secciones de primer nivel de una empresa. Una sección presente en la
// petición reemplaza la almacenada; las ausentes (nil) no se tocan.
type CompanySections struct {
	Profile         *ProfileInput           `json:"profile"`
	Branding        *BrandingInput          `json:"branding"`
	SalaryStructure *SalaryStructureInput   `json:"salaryStructure"`
	EmploymentTerms *entity.EmploymentTerms `json:"employmentTerms"`
	Benefits        []BenefitInput          `json:"benefits" validate:"omitempty,dive"`
	Compliance      []ComplianceInput       `json:"compliance" validate:"omitempty,dive"`
	Policies        *entity.Policies        `json:"policies"`
	Settings        *entity.CompanySettings `json:"settings"`
}

// SetupCompanyRequest entrada de POST /user/company/setup (alta o actualización de la empresa
// activa del usuario en la organisation).
type SetupCompanyRequest struct {
	Organisation string `json:"organisation" validate:"required"`
	CompanySections
}

// UpdateCompanyRequest entrada de PUT /user/company/config/:id.
type UpdateCompanyRequest struct {
	CompanySections
}

type ProfileInput struct {
	CompanyName        string            `json:"companyName" validate:"required,max=200"`
	Industry           string            `json:"industry" validate:"required"`
	CompanyType        string            `json:"companyType" validate:"required"`
	Description        string            `json:"description"`
	Website            string            `json:"website" validate:"omitempty,url"`
	FoundedYear        int               `json:"foundedYear" validate:"omitempty,gte=1800,lte=2100"`
	EmployeeCount      int               `json:"employeeCount" validate:"omitempty,gte=0"`
	RegistrationNumber string            `json:"registrationNumber"`
	TaxID              string            `json:"taxId"`
	Address            *entity.Address   `json:"address"`
	ContactInfo        *ContactInfoInput `json:"contactInfo"`
}

type ContactInfoInput struct {
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	ContactPerson string `json:"contactPerson"`
}

type BrandingInput struct {
	LogoURL        string `json:"logoUrl" validate:"omitempty,url"`
	PrimaryColor   string `json:"primaryColor" validate:"omitempty,hexcolor"`
	SecondaryColor string `json:"secondaryColor" validate:"omitempty,hexcolor"`
	FontFamily     string `json:"fontFamily"`
	LetterheadURL  string `json:"letterheadUrl" validate:"omitempty,url"`
	EmailSignature string `json:"emailSignature"`
}

type SalaryStructureInput struct {
	Currency        string                 `json:"currency" validate:"omitempty,len=3"`
	PayFrequency    string                 `json:"payFrequency" validate:"omitempty,oneof=monthly biweekly weekly"`
	BasicPercentage decimal.Decimal        `json:"basicPercentage"`
	HRAPercentage   decimal.Decimal        `json:"hraPercentage"`
	Components      []SalaryComponentInput `json:"components" validate:"omitempty,dive"`
}

type SalaryComponentInput struct {
	Name            string          `json:"name" validate:"required"`
	Type            string          `json:"type" validate:"required,oneof=earning deduction"`
	CalculationType string          `json:"calculationType" validate:"required,oneof=fixed percentage"`
	Value           decimal.Decimal `json:"value"`
	IsTaxable       bool            `json:"isTaxable"`
}

type BenefitInput struct {
	Name         string           `json:"name" validate:"required"`
	Type         string           `json:"type" validate:"required,oneof=monetary non-monetary insurance allowance equity"`
	Value        decimal.Decimal  `json:"value"`
	IsMandatory  bool             `json:"isMandatory"`
	Description  string           `json:"description"`
	AnnualValue  *decimal.Decimal `json:"annualValue"`
	MonthlyValue *decimal.Decimal `json:"monthlyValue"`
}

type ComplianceInput struct {
	Standard          string     `json:"standard" validate:"required"`
	Description       string     `json:"description"`
	IsRequired        bool       `json:"isRequired"`
	Status            string     `json:"status" validate:"omitempty,oneof=compliant pending non_compliant expired"`
	ExpiryDate        *time.Time `json:"expiryDate"`
	CertificateNumber string     `json:"certificateNumber"`
}

// CompanyResponse documento completo de la empresa.
type CompanyResponse struct {
	ID              string                    `json:"id"`
	Organisation    string                    `json:"organisation"`
	Profile         entity.CompanyProfile     `json:"profile"`
	Branding        entity.Branding           `json:"branding"`
	SalaryStructure entity.SalaryStructure    `json:"salaryStructure"`
	EmploymentTerms entity.EmploymentTerms    `json:"employmentTerms"`
	Benefits        []entity.Benefit          `json:"benefits"`
	Compliance      []entity.ComplianceRecord `json:"compliance"`
	Policies        entity.Policies           `json:"policies"`
	Settings        entity.CompanySettings    `json:"settings"`
	IsActive        bool                      `json:"isActive"`
	CreatedBy       string                    `json:"createdBy"`
	LastModifiedBy  string                    `json:"lastModifiedBy"`
	CreatedAt       time.Time                 `json:"createdAt"`
	UpdatedAt       time.Time                 `json:"updatedAt"`
}

// CompanyProfileResponse empresa con las referencias a organisation y usuarios resueltas.
type CompanyProfileResponse struct {
	CompanyResponse
	OrganisationRef *OrganisationRef `json:"organisationRef,omitempty"`
	CreatedByRef    *Ref             `json:"createdByRef,omitempty"`
	ModifiedByRef   *Ref             `json:"lastModifiedByRef,omitempty"`
}

type OrganisationRef struct {
	ID               string `json:"id"`
	OrganisationName string `json:"organisationName"`
	OrganisationID   string `json:"organisationId"`
}

// CompanySetupResponse subconjunto devuelto tras el setup.
type CompanySetupResponse struct {
	ID           string                `json:"id"`
	Organisation string                `json:"organisation"`
	Profile      entity.CompanyProfile `json:"profile"`
	IsActive     bool                  `json:"isActive"`
	CreatedBy    string                `json:"createdBy"`
	Created      bool                  `json:"created"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

type CompanyBenefitsResponse struct {
	CompanyID string           `json:"companyId"`
	Benefits  []entity.Benefit `json:"benefits"`
}

type CompanyComplianceResponse struct {
	CompanyID   string                    `json:"companyId"`
	IsCompliant bool                      `json:"isCompliant"`
	Compliance  []entity.ComplianceRecord `json:"compliance"`
	Pending     []entity.ComplianceRecord `json:"pending"`
}
