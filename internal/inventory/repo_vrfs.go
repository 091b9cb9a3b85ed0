package inventory

import (
	"errors"

	"weft/internal/models"

	"gorm.io/gorm"
)

// ── VRFs CRUD ───────────────────────────────────────────────

func (r *Repo) CreateVrf(v *models.Vrf) error {
	if err := validateVrf(v); err != nil {
		return err
	}
	v.VrfID = 0
	if err := r.db.Create(v).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return conflictErr("vrf name or vni already in use")
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return validationErr("tenant %d does not exist", v.TenantID)
		}
		return dbErr(err)
	}
	return nil
}

func (r *Repo) GetVrf(id uint) (*models.Vrf, error) {
	var v models.Vrf
	if err := r.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, dbErr(err)
	}
	return &v, nil
}

func (r *Repo) UpdateVrf(id uint, in *models.Vrf) (*models.Vrf, error) {
	if err := validateVrf(in); err != nil {
		return nil, err
	}
	var v models.Vrf
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&v, id).Error; err != nil {
			return err
		}
		v.TenantID = in.TenantID
		v.Name = in.Name
		v.VrfVni = in.VrfVni
		res := tx.Save(&v)
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
			return nil, conflictErr("vrf name or vni already in use")
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, validationErr("tenant %d does not exist", in.TenantID)
		}
		return nil, dbErr(err)
	}
	return &v, nil
}

func (r *Repo) DeleteVrf(id uint) error {
	tx := r.db.Delete(&models.Vrf{}, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrForeignKeyViolated) {
			return validationErr("vrf %d is still referenced by an svi", id)
		}
		return dbErr(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errNotFound
	}
	return nil
}

func (r *Repo) ListVrfs() ([]models.Vrf, error) {
	out := []models.Vrf{}
	if err := r.db.Order("vrf_id").Find(&out).Error; err != nil {
		return nil, dbErr(err)
	}
	return out, nil
}
