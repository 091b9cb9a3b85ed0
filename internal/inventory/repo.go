package inventory

import (
	"errors"

	"weft/internal/models"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// ── Tenants CRUD ────────────────────────────────────────────

func (r *Repo) CreateTenant(t *models.Tenant) error {
	if err := validateTenant(t); err != nil {
		return err
	}
	t.TenantID = 0 // server-assigned
	if err := r.db.Create(t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return conflictErr("tenant %q already exists", t.Name)
		}
		return dbErr(err)
	}
	return nil
}

func (r *Repo) GetTenant(id uint) (*models.Tenant, error) {
	var t models.Tenant
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, dbErr(err)
	}
	return &t, nil
}

// UpdateTenant — full replacement of the mutable fields; the path id wins
// over anything in the body. Read and write share one transaction so a
// concurrent delete surfaces as not-found instead of a silent no-op.
func (r *Repo) UpdateTenant(id uint, in *models.Tenant) (*models.Tenant, error) {
	if err := validateTenant(in); err != nil {
		return nil, err
	}
	var t models.Tenant
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, id).Error; err != nil {
			return err
		}
		t.Name = in.Name
		t.MacVrfVniBase = in.MacVrfVniBase
		res := tx.Save(&t)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, errNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, conflictErr("tenant %q already exists", in.Name)
		}
		return nil, dbErr(err)
	}
	return &t, nil
}

func (r *Repo) DeleteTenant(id uint) error {
	tx := r.db.Delete(&models.Tenant{}, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrForeignKeyViolated) {
			return validationErr("tenant %d is still referenced by a vrf", id)
		}
		return dbErr(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errNotFound
	}
	return nil
}

func (r *Repo) ListTenants() ([]models.Tenant, error) {
	out := []models.Tenant{}
	if err := r.db.Order("tenant_id").Find(&out).Error; err != nil {
		return nil, dbErr(err)
	}
	return out, nil
}
