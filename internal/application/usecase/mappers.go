package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/application/validation"
	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

// now devuelve la hora de registro; Postgres guarda microsegundos.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// canonicalID valida un UUID y lo devuelve en forma canónica (minúsculas).
func canonicalID(raw, what string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", domain.InvalidInput("invalid " + what + " id: " + raw)
	}
	return id.String(), nil
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func toDocument(docType, docID string) entity.Document {
	return entity.Document{Type: strings.TrimSpace(docType), ID: strings.TrimSpace(docID)}
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:               c.ID,
		Username:         c.Username,
		Name:             c.Name,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Greeting:         c.Greeting,
		Farewell:         c.Farewell,
		BirthDate:        c.BirthDate.Format(validation.DateLayout),
		PhoneNumber:      c.PhoneNumber,
		Country:          c.Country,
		City:             c.City,
		PlanID:           c.PlanID,
		RegistrationDate: c.RegisteredAt,
	}
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	out := &dto.UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		DocumentType:     u.Document.Type,
		DocumentID:       u.Document.ID,
		PhoneNumber:      u.PhoneNumber,
		Importance:       u.Importance,
		AllowCall:        u.AllowCall,
		AllowSMS:         u.AllowSMS,
		AllowEmail:       u.AllowEmail,
		RegistrationDate: u.RegisteredAt,
	}
	if u.BirthDate != nil {
		s := u.BirthDate.Format(validation.DateLayout)
		out.BirthDate = &s
	}
	return out
}

func entityToManagerResponse(m *entity.Manager) *dto.ManagerResponse {
	if m == nil {
		return nil
	}
	return &dto.ManagerResponse{
		ID:               m.ID,
		Username:         m.Username,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		RegistrationDate: m.RegisteredAt,
	}
}

func entityToMembershipResponse(m *entity.Membership) *dto.MembershipResponse {
	return &dto.MembershipResponse{
		CompanyID:    m.CompanyID,
		UserID:       m.UserID,
		DocumentType: m.Document.Type,
		DocumentID:   m.Document.ID,
		CreatedAt:    m.CreatedAt,
	}
}
