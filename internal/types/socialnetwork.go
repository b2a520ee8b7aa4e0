package types

import (
	"strings"

	ierr "github.com/rosterkit/roster/internal/errors"
)

// SocialNetworks is a flag set over the closed enumeration of social media
// affiliations. Each network occupies one bit position, so a value holds zero
// or more networks at once. Named combinations are themselves valid values.
type SocialNetworks uint8

const (
	NetworkTwitter SocialNetworks = 1 << iota
	NetworkFacebook
	NetworkPinterest
	NetworkInstagram
)

// NetworkAll is the named combination of every supported network.
const NetworkAll = NetworkTwitter | NetworkFacebook | NetworkPinterest | NetworkInstagram

// networkNames is ordered by bit position for stable String output.
var networkNames = []struct {
	flag SocialNetworks
	name string
}{
	{NetworkTwitter, "twitter"},
	{NetworkFacebook, "facebook"},
	{NetworkPinterest, "pinterest"},
	{NetworkInstagram, "instagram"},
}

// ParseSocialNetwork resolves a single network name to its flag value.
func ParseSocialNetwork(name string) (SocialNetworks, error) {
	for _, n := range networkNames {
		if n.name == strings.ToLower(strings.TrimSpace(name)) {
			return n.flag, nil
		}
	}
	return 0, ierr.NewError("unknown social network").
		WithHintf("Social network must be one of twitter, facebook, pinterest or instagram, got %q", name).
		Mark(ierr.ErrValidation)
}

// Has reports whether every bit of flag is set. The zero value answers false
// for any non-zero flag.
func (s SocialNetworks) Has(flag SocialNetworks) bool {
	if flag == 0 {
		return false
	}
	return s&flag == flag
}

// Union returns the set with every bit of flags added.
func (s SocialNetworks) Union(flags SocialNetworks) SocialNetworks {
	return s | flags
}

// Difference returns the set with every bit of flags removed.
func (s SocialNetworks) Difference(flags SocialNetworks) SocialNetworks {
	return s &^ flags
}

func (s SocialNetworks) IsEmpty() bool {
	return s == 0
}

// Validate rejects values carrying bits outside the closed enumeration.
func (s SocialNetworks) Validate() error {
	if s&^NetworkAll != 0 {
		return ierr.NewError("invalid social network flags").
			WithHint("Social network value carries bits outside the supported set").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (s SocialNetworks) String() string {
	if s == 0 {
		return "none"
	}
	names := make([]string, 0, len(networkNames))
	for _, n := range networkNames {
		if s.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}
