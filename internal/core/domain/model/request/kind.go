package request

import (
	"fmt"

	"fleetyard/internal/pkg/errs"
)

// Kind discriminates the two request flavors. A pickup request has no delivery
// address: the client collects the vehicle from the service yard. A delivery
// request carries an address the vehicle is transported to.
type Kind int

const (
	// KindUnspecified is the invalid zero value.
	KindUnspecified Kind = iota

	// Pickup means the client collects the vehicle from the yard.
	Pickup

	// Delivery means the vehicle is transported to a client address.
	Delivery
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnspecified: "unspecified",
		Pickup:          "pickup",
		Delivery:        "delivery",
	}
}

// Validate checks that the Kind is one of the two defined flavors.
func (k Kind) Validate() error {
	if k != Pickup && k != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%d is not a valid request kind", k))
	}
	return nil
}

// String returns "pickup" or "delivery", or "unspecified" for the zero value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unspecified"
}
