package utils

import (
	"DentalDesk/models"
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidResetCode   = errors.New("invalid reset code")
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateNewUser validates account-creation input.
func ValidateNewUser(user models.User, password string) error {
	if !user.Role.Valid() {
		return ErrInvalidRole
	}
	err := validation.ValidateStruct(&user,
		validation.Field(&user.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&user.Email, validation.Required, is.Email),
		validation.Field(&user.FirstName, validation.Required),
		validation.Field(&user.LastName, validation.Required),
	)
	if err != nil {
		return err
	}
	return validatePassword(password)
}

// ValidateNewPatient checks required fields and formats on patient input.
func ValidateNewPatient(patient models.Patient) error {
	return validation.ValidateStruct(&patient,
		validation.Field(&patient.FirstName, validation.Required),
		validation.Field(&patient.LastName, validation.Required),
		validation.Field(&patient.DateOfBirth, validation.Required, validation.Match(dateRegex).Error("must be a YYYY-MM-DD date")),
		validation.Field(&patient.Phone, validation.Required),
		validation.Field(&patient.Email, is.Email),
	)
}

// ValidateNewAppointment checks required fields on appointment input.
func ValidateNewAppointment(appointment models.Appointment) error {
	return validation.ValidateStruct(&appointment,
		validation.Field(&appointment.PatientID, validation.Required),
		validation.Field(&appointment.DoctorID, validation.Required),
		validation.Field(&appointment.StartTime, validation.Required),
		validation.Field(&appointment.EndTime, validation.Required),
		validation.Field(&appointment.Duration, validation.Required, validation.Min(1)),
		validation.Field(&appointment.Type, validation.Required),
	)
}

// ValidatePasswordReset validates the reset code and new password.
func ValidatePasswordReset(resetCode, newPassword string) error {
	return validation.Errors{
		"resetCode": validation.Validate(resetCode, validation.Required.Error("invalid reset code")),
		"password":  validation.Validate(newPassword, validation.Required, validation.By(passwordRule)),
	}.Filter()
}

func passwordRule(value interface{}) error {
	password, _ := value.(string)
	return validatePassword(password)
}

// validatePassword checks the password for length and complexity.
func validatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}

	return nil
}
