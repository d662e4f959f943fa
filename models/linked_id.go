package models

// LinkedIDType identifies which item field a linked custom field mirrors.
// Values are grouped per item type (1xx login, 3xx card, 4xx identity) and
// are part of the wire format.
type LinkedIDType int

const (
	LinkedIDUsername LinkedIDType = 100
	LinkedIDPassword LinkedIDType = 101

	LinkedIDCardholderName LinkedIDType = 300
	LinkedIDCardExpMonth   LinkedIDType = 301
	LinkedIDCardExpYear    LinkedIDType = 302
	LinkedIDCardCode       LinkedIDType = 303
	LinkedIDCardBrand      LinkedIDType = 304
	LinkedIDCardNumber     LinkedIDType = 305

	LinkedIDIdentityTitle          LinkedIDType = 400
	LinkedIDIdentityMiddleName     LinkedIDType = 401
	LinkedIDIdentityAddress1       LinkedIDType = 402
	LinkedIDIdentityAddress2       LinkedIDType = 403
	LinkedIDIdentityAddress3       LinkedIDType = 404
	LinkedIDIdentityCity           LinkedIDType = 405
	LinkedIDIdentityState          LinkedIDType = 406
	LinkedIDIdentityPostalCode     LinkedIDType = 407
	LinkedIDIdentityCountry        LinkedIDType = 408
	LinkedIDIdentityCompany        LinkedIDType = 409
	LinkedIDIdentityEmail          LinkedIDType = 410
	LinkedIDIdentityPhone          LinkedIDType = 411
	LinkedIDIdentitySSN            LinkedIDType = 412
	LinkedIDIdentityUsername       LinkedIDType = 413
	LinkedIDIdentityPassportNumber LinkedIDType = 414
	LinkedIDIdentityLicenseNumber  LinkedIDType = 415
	LinkedIDIdentityFirstName      LinkedIDType = 416
	LinkedIDIdentityLastName       LinkedIDType = 417
	LinkedIDIdentityFullName       LinkedIDType = 418
)

// LinkedFieldOption describes one autofill-linkable field of an item type:
// a translation key for the UI and an accessor resolving the current value.
type LinkedFieldOption struct {
	Name  string
	Value func(v *CipherView) string
}

// linkedFieldRegistry is the static registration table mapping each linked
// field id to its accessor, built once per item type. No reflection is
// involved; adding an item type means adding its block here.
var linkedFieldRegistry = map[CipherType]map[LinkedIDType]LinkedFieldOption{
	CipherTypeLogin: {
		LinkedIDUsername: {Name: "username", Value: func(v *CipherView) string { return v.Login.Username }},
		LinkedIDPassword: {Name: "password", Value: func(v *CipherView) string { return v.Login.Password }},
	},
	CipherTypeCard: {
		LinkedIDCardholderName: {Name: "cardholderName", Value: func(v *CipherView) string { return v.Card.CardholderName }},
		LinkedIDCardExpMonth:   {Name: "expirationMonth", Value: func(v *CipherView) string { return v.Card.ExpMonth }},
		LinkedIDCardExpYear:    {Name: "expirationYear", Value: func(v *CipherView) string { return v.Card.ExpYear }},
		LinkedIDCardCode:       {Name: "securityCode", Value: func(v *CipherView) string { return v.Card.Code }},
		LinkedIDCardBrand:      {Name: "brand", Value: func(v *CipherView) string { return v.Card.Brand }},
		LinkedIDCardNumber:     {Name: "number", Value: func(v *CipherView) string { return v.Card.Number }},
	},
	CipherTypeIdentity: {
		LinkedIDIdentityTitle:          {Name: "title", Value: func(v *CipherView) string { return v.Identity.Title }},
		LinkedIDIdentityMiddleName:     {Name: "middleName", Value: func(v *CipherView) string { return v.Identity.MiddleName }},
		LinkedIDIdentityAddress1:       {Name: "address1", Value: func(v *CipherView) string { return v.Identity.Address1 }},
		LinkedIDIdentityAddress2:       {Name: "address2", Value: func(v *CipherView) string { return v.Identity.Address2 }},
		LinkedIDIdentityAddress3:       {Name: "address3", Value: func(v *CipherView) string { return v.Identity.Address3 }},
		LinkedIDIdentityCity:           {Name: "cityTown", Value: func(v *CipherView) string { return v.Identity.City }},
		LinkedIDIdentityState:          {Name: "stateProvince", Value: func(v *CipherView) string { return v.Identity.State }},
		LinkedIDIdentityPostalCode:     {Name: "zipPostalCode", Value: func(v *CipherView) string { return v.Identity.PostalCode }},
		LinkedIDIdentityCountry:        {Name: "country", Value: func(v *CipherView) string { return v.Identity.Country }},
		LinkedIDIdentityCompany:        {Name: "company", Value: func(v *CipherView) string { return v.Identity.Company }},
		LinkedIDIdentityEmail:          {Name: "email", Value: func(v *CipherView) string { return v.Identity.Email }},
		LinkedIDIdentityPhone:          {Name: "phone", Value: func(v *CipherView) string { return v.Identity.Phone }},
		LinkedIDIdentitySSN:            {Name: "ssn", Value: func(v *CipherView) string { return v.Identity.SSN }},
		LinkedIDIdentityUsername:       {Name: "username", Value: func(v *CipherView) string { return v.Identity.Username }},
		LinkedIDIdentityPassportNumber: {Name: "passportNumber", Value: func(v *CipherView) string { return v.Identity.PassportNumber }},
		LinkedIDIdentityLicenseNumber:  {Name: "licenseNumber", Value: func(v *CipherView) string { return v.Identity.LicenseNumber }},
		LinkedIDIdentityFirstName:      {Name: "firstName", Value: func(v *CipherView) string { return v.Identity.FirstName }},
		LinkedIDIdentityLastName:       {Name: "lastName", Value: func(v *CipherView) string { return v.Identity.LastName }},
		LinkedIDIdentityFullName:       {Name: "fullName", Value: func(v *CipherView) string { return v.Identity.FullName() }},
	},
}

// LinkedFieldOptions returns the linkable fields for an item type. The
// returned map is shared; callers must not mutate it.
func LinkedFieldOptions(t CipherType) map[LinkedIDType]LinkedFieldOption {
	return linkedFieldRegistry[t]
}
