package ledgerdelivery

import (
	"github.com/go-petr/balance-ledger/pkg/amountpkg"
	"github.com/go-playground/validator/v10"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
)

// ValidAddress validates whether the field is an account address.
var ValidAddress validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		_, err := address.StringToUint160(s)
		return err == nil
	}

	return false
}

// ValidInt128 validates whether the field is a decimal integer in the signed 128-bit range.
var ValidInt128 validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		_, err := amountpkg.Parse(s)
		return err == nil
	}

	return false
}
