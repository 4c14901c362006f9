// Package models defines the client-side data shapes exchanged with the
// DummyJSON auth API.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Credentials is the login pair. It lives only in the login flow and is
// never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is a read-only snapshot of the /auth/me payload. A fetch replaces it
// wholesale; it is never mutated in place.
type User struct {
	ID         int     `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	MaidenName string  `json:"maidenName"`
	Age        int     `json:"age"`
	Gender     string  `json:"gender"`
	Phone      string  `json:"phone"`
	BirthDate  string  `json:"birthDate"`
	Image      string  `json:"image"`
	BloodGroup string  `json:"bloodGroup"`
	Height     float64 `json:"height"`
	Weight     float64 `json:"weight"`
	EyeColor   string  `json:"eyeColor"`
	Hair       Hair    `json:"hair"`
	Address    Address `json:"address"`
	Company    Company `json:"company"`
	Role       string  `json:"role"`
}

type Hair struct {
	Color string `json:"color"`
	Type  string `json:"type"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Address struct {
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	StateCode   string      `json:"stateCode"`
	PostalCode  string      `json:"postalCode"`
	Coordinates Coordinates `json:"coordinates"`
	Country     string      `json:"country"`
}

// Company is the employment sub-record.
type Company struct {
	Department string  `json:"department"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Address    Address `json:"address"`
}

// Field is one labelled value of the profile view.
type Field struct {
	Label string
	Value string
}

// AddressLine composes "<street>, <city>, <state> <postal code>".
func (u User) AddressLine() string {
	return fmt.Sprintf("%s, %s, %s %s", u.Address.Address, u.Address.City, u.Address.State, u.Address.PostalCode)
}

// CompanyLine composes "<company> - <title>".
func (u User) CompanyLine() string {
	return fmt.Sprintf("%s - %s", u.Company.Name, u.Company.Title)
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Fields lists the values the profile screen must surface, in display order.
func (u User) Fields() []Field {
	return []Field{
		{Label: "User ID", Value: strconv.Itoa(u.ID)},
		{Label: "Email", Value: u.Email},
		{Label: "First Name", Value: u.FirstName},
		{Label: "Last Name", Value: u.LastName},
		{Label: "Phone", Value: u.Phone},
		{Label: "Address", Value: u.AddressLine()},
		{Label: "Company", Value: u.CompanyLine()},
		{Label: "Role", Value: u.Role},
	}
}
