package service

import "github.com/marsestates/brokerage-api/internal/modules/model"

// ResolveGalleryImages decides what gallery a unit shows. A unit with
// at least one image of its own shows exactly those. A unit with none
// borrows the project's current gallery, remapped to the unit id for
// shape compatibility; the borrowed rows are never persisted.
func ResolveGalleryImages(unitID int, own []model.UnitImage, projectImages []model.ProjectImage) []model.UnitImage {
	if len(own) > 0 {
		return own
	}
	borrowed := make([]model.UnitImage, 0, len(projectImages))
	for _, img := range projectImages {
		borrowed = append(borrowed, model.UnitImage{
			ID:       img.ID,
			UnitID:   unitID,
			ImageURL: img.ImageURL,
		})
	}
	return borrowed
}
