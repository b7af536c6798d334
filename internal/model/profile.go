package model

import (
	"fmt"
	"strings"
)

// BusinessProfile selects which classification and opportunity rule sets
// apply during a diagnosis run. Exactly one profile per run.
type BusinessProfile string

// Supported business profiles.
const (
	ProfileRetail  BusinessProfile = "retail"
	ProfileService BusinessProfile = "service"
	ProfileTrade   BusinessProfile = "trade"
)

// ParseBusinessProfile converts user input into a BusinessProfile.
// An unknown variant is a caller error and fails loudly rather than
// silently defaulting.
func ParseBusinessProfile(s string) (BusinessProfile, error) {
	p := BusinessProfile(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case ProfileRetail, ProfileService, ProfileTrade:
		return p, nil
	default:
		return "", fmt.Errorf("unknown business profile %q (want retail, service or trade)", s)
	}
}

// Valid reports whether the profile is one of the supported variants.
func (p BusinessProfile) Valid() bool {
	switch p {
	case ProfileRetail, ProfileService, ProfileTrade:
		return true
	}
	return false
}
