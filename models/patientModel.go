package models

import (
	"time"
)

// Address is a postal address stored inline on the patient row.
type Address struct {
	Street     *string `gorm:"column:address_street" json:"street,omitempty"`
	City       *string `gorm:"column:address_city" json:"city,omitempty"`
	PostalCode *string `gorm:"column:address_postal_code" json:"postal_code,omitempty"`
	Country    *string `gorm:"column:address_country" json:"country,omitempty"`
}

// EmergencyContact is the optional contact stored inline on the patient row.
type EmergencyContact struct {
	Name         *string `gorm:"column:emergency_contact_name" json:"name,omitempty"`
	Relationship *string `gorm:"column:emergency_contact_relationship" json:"relationship,omitempty"`
	Phone        *string `gorm:"column:emergency_contact_phone" json:"phone,omitempty"`
}

// Patient model
type Patient struct {
	ID               string           `gorm:"primaryKey;column:id" json:"id"`
	FirstName        string           `gorm:"column:first_name;not null" json:"first_name"`
	LastName         string           `gorm:"column:last_name;not null;index" json:"last_name"`
	DateOfBirth      string           `gorm:"column:date_of_birth;not null" json:"date_of_birth"`
	Gender           *string          `gorm:"column:gender;check:gender IN ('male', 'female', 'other')" json:"gender,omitempty"`
	AMKA             *string          `gorm:"column:amka;index" json:"amka,omitempty"`
	Phone            string           `gorm:"column:phone;not null;index" json:"phone"`
	Email            *string          `gorm:"column:email;index" json:"email,omitempty"`
	Address          Address          `gorm:"embedded" json:"address"`
	EmergencyContact EmergencyContact `gorm:"embedded" json:"emergency_contact"`
	Occupation       *string          `gorm:"column:occupation" json:"occupation,omitempty"`
	CreatedAt        time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	Appointments     []Appointment    `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patients"
}
