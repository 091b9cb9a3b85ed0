package inventory

import (
	"errors"

	"weft/internal/models"

	"gorm.io/gorm"
)

// ── SVIs CRUD ───────────────────────────────────────────────
//
// An SVI and its tag set move together: every write runs in one
// transaction, so a failed tag insert takes the row with it.

func (r *Repo) CreateSvi(s *models.Svi) error {
	if err := validateSvi(s); err != nil {
		return err
	}
	tags := normalizeTags(s.Tags)
	s.SviID = 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}
		return insertTags(tx, s.SviID, tags)
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return conflictErr("svi %q already exists in vrf %d", s.Name, s.VrfID)
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return validationErr("vrf %d does not exist", s.VrfID)
		}
		return dbErr(err)
	}
	s.Tags = tags
	return nil
}

func (r *Repo) GetSvi(id uint) (*models.Svi, error) {
	var s models.Svi
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, dbErr(err)
	}
	tags, err := r.sviTags(r.db, id)
	if err != nil {
		return nil, dbErr(err)
	}
	s.Tags = tags
	return &s, nil
}

// UpdateSvi replaces the mutable fields and the whole tag set.
func (r *Repo) UpdateSvi(id uint, in *models.Svi) (*models.Svi, error) {
	if err := validateSvi(in); err != nil {
		return nil, err
	}
	tags := normalizeTags(in.Tags)
	var s models.Svi
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&s, id).Error; err != nil {
			return err
		}
		s.VrfID = in.VrfID
		s.VlanID = in.VlanID
		s.Name = in.Name
		s.Enabled = in.Enabled
		s.IPAddressVirtual = in.IPAddressVirtual
		res := tx.Save(&s)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("svi_id = ?", id).Delete(&models.SviTag{}).Error; err != nil {
			return err
		}
		return insertTags(tx, id, tags)
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, errNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, conflictErr("svi %q already exists in vrf %d", in.Name, in.VrfID)
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, validationErr("vrf %d does not exist", in.VrfID)
		}
		return nil, dbErr(err)
	}
	s.Tags = tags
	return &s, nil
}

// DeleteSvi — tag rows go with the SVI (FK cascade).
func (r *Repo) DeleteSvi(id uint) error {
	tx := r.db.Delete(&models.Svi{}, id)
	if tx.Error != nil {
		return dbErr(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errNotFound
	}
	return nil
}

func (r *Repo) ListSvis() ([]models.Svi, error) {
	out := []models.Svi{}
	if err := r.db.Order("svi_id").Find(&out).Error; err != nil {
		return nil, dbErr(err)
	}
	if len(out) == 0 {
		return out, nil
	}

	// one query for all tag rows, then bucket by svi
	ids := make([]uint, 0, len(out))
	for _, s := range out {
		ids = append(ids, s.SviID)
	}
	var rows []models.SviTag
	if err := r.db.Where("svi_id IN ?", ids).Order("svi_id, tag").Find(&rows).Error; err != nil {
		return nil, dbErr(err)
	}
	bySvi := make(map[uint][]string, len(out))
	for _, row := range rows {
		bySvi[row.SviID] = append(bySvi[row.SviID], row.Tag)
	}
	for i := range out {
		if tags := bySvi[out[i].SviID]; tags != nil {
			out[i].Tags = tags
		} else {
			out[i].Tags = []string{}
		}
	}
	return out, nil
}

func (r *Repo) sviTags(tx *gorm.DB, id uint) ([]string, error) {
	var rows []models.SviTag
	if err := tx.Where("svi_id = ?", id).Order("tag").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Tag)
	}
	return out, nil
}

func insertTags(tx *gorm.DB, sviID uint, tags []string) error {
	if len(tags) == 0 {
		return nil
	}
	rows := make([]models.SviTag, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, models.SviTag{SviID: sviID, Tag: t})
	}
	return tx.Create(&rows).Error
}
