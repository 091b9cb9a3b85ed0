package inventory

import (
	"net"
	"sort"

	"weft/internal/models"
)

const (
	maxNameLen = 255
	maxTagLen  = 64
	minVlanID  = 1
	maxVlanID  = 4094
)

// Field rules run before any database work; uniqueness and referential
// rules are the store's job.

func validateName(name string) error {
	if name == "" || len(name) > maxNameLen {
		return validationErr("name must be 1..%d characters", maxNameLen)
	}
	return nil
}

func validateTenant(t *models.Tenant) error {
	return validateName(t.Name)
}

func validateVrf(v *models.Vrf) error {
	return validateName(v.Name)
}

func validateSvi(s *models.Svi) error {
	if err := validateName(s.Name); err != nil {
		return err
	}
	if s.VlanID < minVlanID || s.VlanID > maxVlanID {
		return validationErr("vlan_id must be within %d..%d", minVlanID, maxVlanID)
	}
	if s.IPAddressVirtual != nil {
		if _, _, err := net.ParseCIDR(*s.IPAddressVirtual); err != nil {
			return validationErr("ip_address_virtual is not a valid CIDR: %q", *s.IPAddressVirtual)
		}
	}
	for _, tag := range s.Tags {
		if tag == "" || len(tag) > maxTagLen {
			return validationErr("tags entries must be 1..%d characters", maxTagLen)
		}
	}
	return nil
}

// normalizeTags collapses duplicates and fixes the canonical ascending
// order clients see on readback.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
