package domain

import (
	"errors"
	"time"
)

// PropertyStatus represents the market state of a listing.
type PropertyStatus string

const (
	PropertyAvailable   PropertyStatus = "AVAILABLE"
	PropertySold        PropertyStatus = "SOLD"
	PropertyRented      PropertyStatus = "RENTED"
	PropertyUnavailable PropertyStatus = "UNAVAILABLE"
)

// PropertyType classifies a listing.
type PropertyType string

const (
	TypeHouse      PropertyType = "HOUSE"
	TypeApartment  PropertyType = "APARTMENT"
	TypeCondo      PropertyType = "CONDO"
	TypeLand       PropertyType = "LAND"
	TypeCommercial PropertyType = "COMMERCIAL"
)

var ErrPropertyNotFound = errors.New("property not found")

// ValidPropertyStatus reports whether s is an enumerated listing status.
func ValidPropertyStatus(s PropertyStatus) bool {
	switch s {
	case PropertyAvailable, PropertySold, PropertyRented, PropertyUnavailable:
		return true
	}
	return false
}

// ValidPropertyType reports whether t is an enumerated listing type.
func ValidPropertyType(t PropertyType) bool {
	switch t {
	case TypeHouse, TypeApartment, TypeCondo, TypeLand, TypeCommercial:
		return true
	}
	return false
}

// Property is a listing. OwnerID is assigned from the authenticated creator
// at creation time and never changes afterwards.
type Property struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	OwnerID     string         `json:"owner_id" bson:"owner_id"`
	Address     string         `json:"address" bson:"address"`
	City        string         `json:"city" bson:"city"`
	State       string         `json:"state" bson:"state"`
	PostalCode  string         `json:"postal_code" bson:"postal_code"`
	Price       float64        `json:"price" bson:"price"`
	Bedrooms    int            `json:"bedrooms" bson:"bedrooms"`
	Bathrooms   int            `json:"bathrooms" bson:"bathrooms"`
	AreaSqft    float64        `json:"area_sqft,omitempty" bson:"area_sqft,omitempty"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
	Type        PropertyType   `json:"type" bson:"type"`
	Status      PropertyStatus `json:"status" bson:"status"`
	ImageRefs   []string       `json:"image_refs,omitempty" bson:"image_refs,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
