package engine

import "sort"

// DiffTouches compares two polls of the active contacts, keyed by contact
// id, and splits them into the event lists the Dispatcher takes. Contacts
// that did not move are left out of moved. Each list is ordered by id.
func DiffTouches(prev, cur map[int]Touch) (started, moved, ended []Touch) {
	for id, t := range cur {
		p, ok := prev[id]
		switch {
		case !ok:
			started = append(started, t)
		case p.X != t.X || p.Y != t.Y:
			moved = append(moved, t)
		}
	}
	for id, t := range prev {
		if _, ok := cur[id]; !ok {
			ended = append(ended, t)
		}
	}
	byID(started)
	byID(moved)
	byID(ended)
	return started, moved, ended
}

func byID(ts []Touch) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].ID < ts[j].ID })
}

// FingerTouch converts a contact reported in normalised [0, 1] window
// coordinates, as SDL finger events are, into client pixels for a window of
// w by h.
func FingerTouch(id int64, nx, ny, w, h float64) Touch {
	return Touch{ID: int(id), X: nx * w, Y: ny * h}
}
