package record

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/daygrid/pkg/dates"
)

// Category classifies a time block. The set is closed; unknown strings are
// rejected at parse time rather than carried through.
type Category string

const (
	CategoryFocus    Category = "focus"
	CategoryHealth   Category = "health"
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryOther    Category = "other"
)

// AllCategories returns the supported categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryFocus,
		CategoryHealth,
		CategoryWork,
		CategoryPersonal,
		CategoryOther,
	}
}

// ParseCategory converts a string to a Category. Empty input defaults to
// CategoryOther.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return CategoryOther, nil
	}
	for _, candidate := range AllCategories() {
		if candidate == c {
			return candidate, nil
		}
	}
	return CategoryOther, fmt.Errorf("record: unknown category %q", raw)
}

// TimeBlock is a scheduled interval within one day. Start and End are
// 24-hour "HH:MM" strings; End is expected to come after Start on the same
// day. Overlapping blocks are allowed.
type TimeBlock struct {
	ID       string   `json:"id"`
	Start    string   `json:"startTime"`
	End      string   `json:"endTime"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
}

// NewTimeBlock validates the time strings and assigns a fresh id.
func NewTimeBlock(start, end, title string, category Category) (TimeBlock, error) {
	if _, err := dates.MinutesOfDay(start); err != nil {
		return TimeBlock{}, fmt.Errorf("record: start: %w", err)
	}
	if _, err := dates.MinutesOfDay(end); err != nil {
		return TimeBlock{}, fmt.Errorf("record: end: %w", err)
	}
	return TimeBlock{
		ID:       uuid.NewString(),
		Start:    start,
		End:      end,
		Title:    title,
		Category: category,
	}, nil
}

// Minutes returns the block's duration in minutes. A block whose end is not
// after its start (including blocks that would cross midnight) reports zero;
// such blocks are excluded from category totals.
func (b TimeBlock) Minutes() int {
	start, err := dates.MinutesOfDay(b.Start)
	if err != nil {
		return 0
	}
	end, err := dates.MinutesOfDay(b.End)
	if err != nil {
		return 0
	}
	if end <= start {
		return 0
	}
	return end - start
}

// startMinutes is the sort key for the per-day ordering invariant. Malformed
// times sort to the start of the day.
func (b TimeBlock) startMinutes() int {
	m, err := dates.MinutesOfDay(b.Start)
	if err != nil {
		return 0
	}
	return m
}
