// Package record defines the per-day data model: the note text, colored
// markers, day theme, time blocks, and content blocks that attach to a single
// calendar day.
package record

import (
	"sort"
	"strings"
)

// DayRecord is the atomic persisted unit for one calendar day. The zero
// value is the valid "never written" state; readers substitute it whenever a
// day has no stored record. Note and Dots predate the content block model
// and are kept readable for old stores.
type DayRecord struct {
	Note          string      `json:"note"`
	Dots          []ColorCode `json:"dots"`
	DayColor      ColorCode   `json:"dayColor,omitempty"`
	TimeBlocks    []TimeBlock `json:"timeBlocks,omitempty"`
	ContentBlocks Blocks      `json:"contentBlocks,omitempty"`
}

// Empty returns the default record substituted for unwritten days.
func Empty() DayRecord {
	return DayRecord{Dots: []ColorCode{}}
}

// IsEmpty reports whether the record is indistinguishable from "never
// created". Clearing every field returns a day to this state.
func (r DayRecord) IsEmpty() bool {
	return r.Note == "" &&
		len(r.Dots) == 0 &&
		r.DayColor == 0 &&
		len(r.TimeBlocks) == 0 &&
		len(r.ContentBlocks) == 0
}

// Clone returns a deep copy so read-modify-write callers never alias the
// store's in-memory state.
func (r DayRecord) Clone() DayRecord {
	out := r
	out.Dots = append([]ColorCode(nil), r.Dots...)
	out.TimeBlocks = append([]TimeBlock(nil), r.TimeBlocks...)
	if r.ContentBlocks != nil {
		out.ContentBlocks = append(Blocks(nil), r.ContentBlocks...)
		for i, b := range out.ContentBlocks {
			switch v := b.(type) {
			case ChecklistBlock:
				v.Items = append([]ListItem(nil), v.Items...)
				out.ContentBlocks[i] = v
			case BulletsBlock:
				v.Items = append([]ListItem(nil), v.Items...)
				out.ContentBlocks[i] = v
			}
		}
	}
	return out
}

// HasDot reports whether the marker color is already present.
func (r DayRecord) HasDot(c ColorCode) bool {
	for _, d := range r.Dots {
		if d == c {
			return true
		}
	}
	return false
}

// AddDot adds a marker color. Dots are a set; adding a present color is a
// no-op.
func (r *DayRecord) AddDot(c ColorCode) {
	if r.HasDot(c) {
		return
	}
	r.Dots = append(r.Dots, c)
}

// RemoveDot removes a marker color if present.
func (r *DayRecord) RemoveDot(c ColorCode) {
	for i, d := range r.Dots {
		if d == c {
			r.Dots = append(r.Dots[:i], r.Dots[i+1:]...)
			return
		}
	}
}

// AppendNote appends text to the legacy note, separating existing content
// with a newline.
func (r *DayRecord) AppendNote(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if r.Note == "" {
		r.Note = text
		return
	}
	r.Note += "\n" + text
}

// AddTimeBlock inserts a block and restores the sorted-by-start invariant.
func (r *DayRecord) AddTimeBlock(b TimeBlock) {
	r.TimeBlocks = append(r.TimeBlocks, b)
	r.SortTimeBlocks()
}

// RemoveTimeBlock removes the block with the given id and reports whether it
// was found.
func (r *DayRecord) RemoveTimeBlock(id string) bool {
	for i, b := range r.TimeBlocks {
		if b.ID == id {
			r.TimeBlocks = append(r.TimeBlocks[:i], r.TimeBlocks[i+1:]...)
			return true
		}
	}
	return false
}

// SortTimeBlocks sorts blocks by start time. Blocks sharing a start keep
// their relative order.
func (r *DayRecord) SortTimeBlocks() {
	sort.SliceStable(r.TimeBlocks, func(i, j int) bool {
		return r.TimeBlocks[i].startMinutes() < r.TimeBlocks[j].startMinutes()
	})
}

// AddContentBlock appends a block at the end of the sequence.
func (r *DayRecord) AddContentBlock(b ContentBlock) {
	r.ContentBlocks = append(r.ContentBlocks, b)
}

// RemoveContentBlock removes the block with the given id and reports whether
// it was found.
func (r *DayRecord) RemoveContentBlock(id string) bool {
	for i, b := range r.ContentBlocks {
		if b.BlockID() == id {
			r.ContentBlocks = append(r.ContentBlocks[:i], r.ContentBlocks[i+1:]...)
			return true
		}
	}
	return false
}

// MoveContentBlock shifts the block with the given id one position up
// (delta -1) or down (delta +1). Moves past either end are no-ops. Reports
// whether the order changed.
func (r *DayRecord) MoveContentBlock(id string, delta int) bool {
	for i, b := range r.ContentBlocks {
		if b.BlockID() != id {
			continue
		}
		j := i + delta
		if j < 0 || j >= len(r.ContentBlocks) {
			return false
		}
		r.ContentBlocks[i], r.ContentBlocks[j] = r.ContentBlocks[j], r.ContentBlocks[i]
		return true
	}
	return false
}

// ToggleChecklistItem flips the checked state of one checklist item. Reports
// whether the block and item were found.
func (r *DayRecord) ToggleChecklistItem(blockID, itemID string) bool {
	for i, b := range r.ContentBlocks {
		cl, ok := b.(ChecklistBlock)
		if !ok || cl.ID != blockID {
			continue
		}
		for j, item := range cl.Items {
			if item.ID == itemID {
				items := append([]ListItem(nil), cl.Items...)
				items[j].Checked = !items[j].Checked
				cl.Items = items
				r.ContentBlocks[i] = cl
				return true
			}
		}
		return false
	}
	return false
}
