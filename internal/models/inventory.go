package models

// Relations are declared on the parent side only: the child also carries
// the parent's PK field name, and a child-side belongs-to tag would make
// gorm guess has-one and put the FK on the wrong table.

// Tenant — administrative owner of overlay networks. MacVrfVniBase is the
// base VNI from which per-tenant MAC-VRF VNIs are derived.
type Tenant struct {
	TenantID      uint   `gorm:"column:tenant_id;primaryKey" json:"tenant_id"`
	Name          string `gorm:"type:varchar(255);not null;uniqueIndex:ux_tenants_name" json:"name"`
	MacVrfVniBase int32  `gorm:"not null" json:"mac_vrf_vni_base"`

	Vrfs []Vrf `gorm:"foreignKey:TenantID;references:TenantID;constraint:OnDelete:RESTRICT" json:"-"`
}

// Vrf — isolated routing table inside a tenant. VrfVni is unique
// system-wide, the name only within its tenant.
type Vrf struct {
	VrfID    uint   `gorm:"column:vrf_id;primaryKey" json:"vrf_id"`
	TenantID uint   `gorm:"not null;uniqueIndex:ux_vrfs_tenant_name,priority:1" json:"tenant_id"`
	Name     string `gorm:"type:varchar(255);not null;uniqueIndex:ux_vrfs_tenant_name,priority:2" json:"name"`
	VrfVni   int32  `gorm:"column:vrf_vni;not null;uniqueIndex:ux_vrfs_vni" json:"vrf_vni"`

	Svis []Svi `gorm:"foreignKey:VrfID;references:VrfID;constraint:OnDelete:RESTRICT" json:"-"`
}

// gorm would pluralize to "vrves"
func (Vrf) TableName() string { return "vrfs" }

// Svi — L3 interface on a VLAN inside a VRF. IPAddressVirtual is stored
// verbatim as submitted (varchar, not the postgres cidr type, which would
// strip host bits); validity is checked before any write.
type Svi struct {
	SviID            uint    `gorm:"column:svi_id;primaryKey" json:"svi_id"`
	VrfID            uint    `gorm:"not null;uniqueIndex:ux_svis_vrf_name,priority:1" json:"vrf_id"`
	VlanID           int     `gorm:"not null;check:vlan_id BETWEEN 1 AND 4094" json:"vlan_id"`
	Name             string  `gorm:"type:varchar(255);not null;uniqueIndex:ux_svis_vrf_name,priority:2" json:"name"`
	Enabled          bool    `gorm:"not null" json:"enabled"`
	IPAddressVirtual *string `gorm:"column:ip_address_virtual;type:varchar(64)" json:"ip_address_virtual,omitempty"`

	// Tags live in svi_tags; the repo keeps this in canonical ascending
	// order, deduplicated.
	Tags []string `gorm:"-" json:"tags"`

	TagRows []SviTag `gorm:"foreignKey:SviID;references:SviID;constraint:OnDelete:CASCADE" json:"-"`
}

// SviTag — child row of an SVI, no standalone lifecycle.
type SviTag struct {
	SviID uint   `gorm:"column:svi_id;primaryKey;autoIncrement:false;not null"`
	Tag   string `gorm:"type:varchar(64);primaryKey;not null"`
}
