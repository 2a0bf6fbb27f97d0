package repository

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Key namespaces, one per calculator.
const (
	NamespaceVehicleValue = "vehicle_value"
	NamespaceRiskRating   = "risk_rating"
)

const keyPrefix = "insurance-agent"

// CacheKey builds "<prefix>:<namespace>:<xxhash64 hex>" from the given parts.
// Parts are length-prefixed before hashing so ("ab","c") and ("a","bc") differ.
func CacheKey(namespace string, parts ...string) string {
	d := xxhash.New()
	for _, p := range parts {
		_, _ = d.WriteString(strconv.Itoa(len(p)))
		_, _ = d.WriteString(":")
		_, _ = d.WriteString(p)
	}
	return keyPrefix + ":" + namespace + ":" + strconv.FormatUint(d.Sum64(), 16)
}
