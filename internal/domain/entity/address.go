// Package entity contains the core business objects of the project.
package entity

// Address is the delivery address of the installation. It is a singleton
// record updated with merge semantics: fields absent from a patch keep
// their prior value.
type Address struct {
	Town  string
	Phone string
}

// AddressPatch carries a partial address update. A nil field leaves the
// corresponding Address field untouched.
type AddressPatch struct {
	Town  *string
	Phone *string
}
