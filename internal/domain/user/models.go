package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freelancernow/internal/domain/document"
)

// Type distinguishes the two sides of the marketplace.
type Type string

const (
	TypeFreelancer Type = "freelancer"
	TypeCompany    Type = "company"
)

// Domain errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidUserType      = errors.New("user type must be freelancer or company")
	ErrDocumentTypeMismatch = errors.New("freelancers must register a CPF and companies a CNPJ")
	ErrInvalidInput         = errors.New("invalid input")
)

// Codes for profile rules, alongside the document.Code values.
const (
	CodeDocumentTypeMismatch document.Code = "document_type_mismatch"
	CodeInvalidUserType      document.Code = "invalid_user_type"
)

// ValidationCode maps a profile validation error to a machine-readable code.
// It reports false for errors that are not validation failures.
func ValidationCode(err error) (document.Code, bool) {
	switch {
	case errors.Is(err, ErrDocumentTypeMismatch):
		return CodeDocumentTypeMismatch, true
	case errors.Is(err, ErrInvalidUserType):
		return CodeInvalidUserType, true
	default:
		return document.CodeOf(err)
	}
}

// User is a marketplace profile. Document holds the CPF or CNPJ in its
// formatted form.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	UserType     Type      `json:"userType"`
	Document     string    `json:"cpfCnpj,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Experience   string    `json:"experience,omitempty"`
	Area         string    `json:"area,omitempty"` // waiter, cook, bartender...
	Location     string    `json:"location,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicProfile is what other users see. The taxpayer document is never exposed.
type PublicProfile struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	UserType     Type   `json:"userType"`
	Bio          string `json:"bio,omitempty"`
	Experience   string `json:"experience,omitempty"`
	Area         string `json:"area,omitempty"`
	Location     string `json:"location,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:           u.ID,
		Name:         u.Name,
		UserType:     u.UserType,
		Bio:          u.Bio,
		Experience:   u.Experience,
		Area:         u.Area,
		Location:     u.Location,
		ProfileImage: u.ProfileImage,
	}
}

type CreateParams struct {
	Email    string
	Name     string
	UserType Type
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if strings.TrimSpace(p.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !IsValidType(p.UserType) {
		return ErrInvalidUserType
	}
	return nil
}

// UpdateProfileParams carries a partial profile update. Nil fields are left
// untouched; an empty Document clears the stored one.
type UpdateProfileParams struct {
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Document   *string `json:"cpfCnpj,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	Experience *string `json:"experience,omitempty"`
	Area       *string `json:"area,omitempty"`
	Location   *string `json:"location,omitempty"`
	UserType   *Type   `json:"userType,omitempty"`
}

// Validate checks the update against the user's current type. A supplied
// document must be a valid CPF or CNPJ matching the effective user type.
func (p UpdateProfileParams) Validate(current Type) error {
	if p.UserType != nil && !IsValidType(*p.UserType) {
		return ErrInvalidUserType
	}

	effective := current
	if p.UserType != nil {
		effective = *p.UserType
	}

	if p.Document == nil || document.Clean(*p.Document) == "" {
		return nil
	}

	res := document.Validate(*p.Document)
	if err := res.Err(); err != nil {
		return err
	}
	return CheckDocumentType(effective, res.Type)
}

// Normalize returns a copy with the document reformatted and text fields trimmed.
func (p UpdateProfileParams) Normalize() UpdateProfileParams {
	out := p
	if p.Document != nil {
		formatted := document.Format(*p.Document)
		out.Document = &formatted
	}
	out.Name = trimmed(p.Name)
	out.Phone = trimmed(p.Phone)
	out.Area = trimmed(p.Area)
	out.Location = trimmed(p.Location)
	return out
}

// CheckDocumentType enforces CPF for freelancers and CNPJ for companies.
func CheckDocumentType(userType Type, docType document.Type) error {
	switch {
	case userType == TypeFreelancer && docType == document.TypeCPF:
		return nil
	case userType == TypeCompany && docType == document.TypeCNPJ:
		return nil
	default:
		return ErrDocumentTypeMismatch
	}
}

// IsValidType checks if the provided user type is valid.
func IsValidType(t Type) bool {
	return t == TypeFreelancer || t == TypeCompany
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
