package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	FullName string `form:"fullName" validate:"required"`
	Email    string `form:"email" validate:"required,report_email"`
	Website  string `form:"websiteURL" validate:"required,website"`
	Money    string `form:"moneyInvolved" validate:"required,oneof=yes no"`
	Amount   string `form:"investmentAmount" validate:"required_if=Money yes"`
	Contact  string `form:"contactMethods" validate:"omitempty,oneof=full limited none"`
}

func valid() sample {
	return sample{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Website:  "https://coinmax.example.io/invest",
		Money:    "no",
	}
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(valid()))
}

func TestStruct_MissingInDeclarationOrder(t *testing.T) {
	s := valid()
	s.FullName = ""
	s.Money = "yes"
	s.Website = ""

	err := Struct(s)
	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"fullName", "websiteURL", "investmentAmount"}, verr.Missing)
	assert.Empty(t, verr.Invalid)
	assert.Equal(t, "Missing required fields: fullName, websiteURL, investmentAmount", verr.Message())
}

func TestStruct_Invalid(t *testing.T) {
	s := valid()
	s.Email = "not-an-email"
	s.Contact = "carrier pigeon"

	err := Struct(s)
	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"email", "contactMethods"}, verr.Invalid)
	assert.Equal(t, "Invalid fields: email, contactMethods", verr.Message())
}

func TestStruct_MissingWinsInMessage(t *testing.T) {
	s := valid()
	s.FullName = ""
	s.Money = "maybe"

	err := Struct(s)
	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Missing required fields: fullName", verr.Message())
	assert.Equal(t, "Missing required fields: fullName; Invalid fields: moneyInvolved", verr.Error())
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("first.last@mail.example.co"))
	assert.True(t, IsValidEmail("a-b@c.io"))
	assert.False(t, IsValidEmail("a@b"))
	assert.False(t, IsValidEmail("a@b.museum"))
	assert.False(t, IsValidEmail("a b@c.io"))
}
