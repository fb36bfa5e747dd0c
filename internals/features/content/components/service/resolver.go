package service

import (
	"strings"

	"gorm.io/gorm"

	"tamilmandram_backend/internals/features/content/components/model"
)

// Resolve fetches the component records for a logical page, optionally
// narrowed by type and slug, ordered for rendering. An empty result is a
// valid outcome - pages with no content render their fallback, they do not
// error.
func Resolve(db *gorm.DB, page, typ, slug string) ([]model.ComponentModel, error) {
	q := db.Model(&model.ComponentModel{}).
		Where("component_page = ?", strings.TrimSpace(page))

	if t := strings.TrimSpace(typ); t != "" {
		q = q.Where("component_type = ?", t)
	}
	if s := strings.TrimSpace(slug); s != "" {
		q = q.Where("component_slug = ?", s)
	}

	var records []model.ComponentModel
	if err := q.Order("component_order ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
