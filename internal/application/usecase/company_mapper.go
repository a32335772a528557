package usecase

import (
	"strings"

	"github.com/jhoicas/offerdesk-api/internal/application/dto"
	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
)

// applyCompanySections reemplaza cada sección presente en in; las ausentes se conservan.
func applyCompanySections(c *entity.Company, in dto.CompanySections) {
	if in.Profile != nil {
		c.Profile = profileFromInput(in.Profile)
	}
	if in.Branding != nil {
		c.Branding = entity.Branding{
			LogoURL:        in.Branding.LogoURL,
			PrimaryColor:   in.Branding.PrimaryColor,
			SecondaryColor: in.Branding.SecondaryColor,
			FontFamily:     in.Branding.FontFamily,
			LetterheadURL:  in.Branding.LetterheadURL,
			EmailSignature: in.Branding.EmailSignature,
		}
	}
	if in.SalaryStructure != nil {
		s := in.SalaryStructure
		components := make([]entity.SalaryComponent, 0, len(s.Components))
		for _, sc := range s.Components {
			components = append(components, entity.SalaryComponent{
				Name:            strings.TrimSpace(sc.Name),
				Type:            sc.Type,
				CalculationType: sc.CalculationType,
				Value:           sc.Value,
				IsTaxable:       sc.IsTaxable,
			})
		}
		c.SalaryStructure = entity.SalaryStructure{
			Currency:        strings.ToUpper(s.Currency),
			PayFrequency:    s.PayFrequency,
			BasicPercentage: s.BasicPercentage,
			HRAPercentage:   s.HRAPercentage,
			Components:      components,
		}
	}
	if in.EmploymentTerms != nil {
		c.EmploymentTerms = *in.EmploymentTerms
	}
	if in.Benefits != nil {
		benefits := make([]entity.Benefit, 0, len(in.Benefits))
		for _, b := range in.Benefits {
			benefits = append(benefits, entity.Benefit{
				Name:         strings.TrimSpace(b.Name),
				Type:         b.Type,
				Value:        b.Value,
				IsMandatory:  b.IsMandatory,
				Description:  b.Description,
				AnnualValue:  b.AnnualValue,
				MonthlyValue: b.MonthlyValue,
			})
		}
		c.Benefits = benefits
	}
	if in.Compliance != nil {
		records := make([]entity.ComplianceRecord, 0, len(in.Compliance))
		for _, r := range in.Compliance {
			status := r.Status
			if status == "" {
				status = entity.CompliancePending
			}
			records = append(records, entity.ComplianceRecord{
				Standard:          strings.TrimSpace(r.Standard),
				Description:       r.Description,
				IsRequired:        r.IsRequired,
				Status:            status,
				ExpiryDate:        r.ExpiryDate,
				CertificateNumber: r.CertificateNumber,
			})
		}
		c.Compliance = records
	}
	if in.Policies != nil {
		c.Policies = *in.Policies
	}
	if in.Settings != nil {
		c.Settings = *in.Settings
	}
}

func profileFromInput(in *dto.ProfileInput) entity.CompanyProfile {
	p := entity.CompanyProfile{
		CompanyName:        strings.TrimSpace(in.CompanyName),
		Industry:           strings.TrimSpace(in.Industry),
		CompanyType:        strings.TrimSpace(in.CompanyType),
		Description:        in.Description,
		Website:            in.Website,
		FoundedYear:        in.FoundedYear,
		EmployeeCount:      in.EmployeeCount,
		RegistrationNumber: in.RegistrationNumber,
		TaxID:              in.TaxID,
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.ContactInfo != nil {
		p.ContactInfo = entity.ContactInfo{
			Email:         strings.TrimSpace(in.ContactInfo.Email),
			Phone:         strings.TrimSpace(in.ContactInfo.Phone),
			ContactPerson: strings.TrimSpace(in.ContactInfo.ContactPerson),
		}
	}
	return p
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	benefits := c.Benefits
	if benefits == nil {
		benefits = []entity.Benefit{}
	}
	compliance := c.Compliance
	if compliance == nil {
		compliance = []entity.ComplianceRecord{}
	}
	return &dto.CompanyResponse{
		ID:              c.ID,
		Organisation:    c.Organisation,
		Profile:         c.Profile,
		Branding:        c.Branding,
		SalaryStructure: c.SalaryStructure,
		EmploymentTerms: c.EmploymentTerms,
		Benefits:        benefits,
		Compliance:      compliance,
		Policies:        c.Policies,
		Settings:        c.Settings,
		IsActive:        c.IsActive,
		CreatedBy:       c.CreatedBy,
		LastModifiedBy:  c.LastModifiedBy,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
