package catalog

import (
	"sort"

	"goldenthread/pkg/models"
)

// Resolve performs the left outer join of locations against dramas through
// the link table, producing one MarkerGroup per renderable location in the
// locations slice's original order.
//
// Rules:
//   - a location at the (0, 0) sentinel is excluded outright, even when
//     links reference it;
//   - a link whose drama id does not resolve still yields a view, with
//     the drama title replaced by the UnknownDramaTitle sentinel and the
//     drama metadata left empty;
//   - a location with no links at all yields a single NoDramaTitle view,
//     so the marker stays clickable with informative content;
//   - views inside a group sort ascending by order_in_trip.
//
// Links pointing at unknown location ids contribute nothing: locations
// drive marker existence, not links.
func Resolve(dramas []models.DramaRecord, locations []models.LocationRecord, links []models.LinkRecord) []models.MarkerGroup {
	dramaByID := make(map[string]models.DramaRecord, len(dramas))
	for _, d := range dramas {
		dramaByID[d.ID] = d
	}
	linksByLocation := make(map[string][]models.LinkRecord, len(locations))
	for _, l := range links {
		linksByLocation[l.LocationID] = append(linksByLocation[l.LocationID], l)
	}

	groups := make([]models.MarkerGroup, 0, len(locations))
	for _, loc := range locations {
		if !loc.HasPosition() {
			continue
		}

		group := models.MarkerGroup{
			LocationID: loc.ID,
			NameEn:     loc.NameEn,
			NameTh:     loc.NameTh,
			Address:    loc.Address,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
		}

		for _, link := range linksByLocation[loc.ID] {
			view := models.LocationMarkerView{
				LocationID:   loc.ID,
				NameEn:       loc.NameEn,
				NameTh:       loc.NameTh,
				Address:      loc.Address,
				Latitude:     loc.Latitude,
				Longitude:    loc.Longitude,
				SceneNotes:   link.SceneNotes,
				OrderInTrip:  link.OrderInTrip,
				CarTravelMin: link.CarTravelMin,
			}
			if drama, ok := dramaByID[link.DramaID]; ok {
				view.DramaID = drama.ID
				view.TitleEn = drama.TitleEn
				view.TitleTh = drama.TitleTh
				view.ReleaseYear = drama.ReleaseYear
			} else {
				view.TitleEn = models.UnknownDramaTitle
			}
			group.Views = append(group.Views, view)
		}

		if len(group.Views) == 0 {
			group.Views = []models.LocationMarkerView{{
				LocationID: loc.ID,
				NameEn:     loc.NameEn,
				NameTh:     loc.NameTh,
				Address:    loc.Address,
				Latitude:   loc.Latitude,
				Longitude:  loc.Longitude,
				TitleEn:    models.NoDramaTitle,
			}}
		} else {
			sort.SliceStable(group.Views, func(i, j int) bool {
				return group.Views[i].OrderInTrip < group.Views[j].OrderInTrip
			})
		}

		groups = append(groups, group)
	}
	return groups
}
