package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/daygrid/pkg/dates"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/record"
	"tableflip.dev/daygrid/pkg/store"
)

func resolveDay(on *time.Time) (int, time.Month, int, time.Time) {
	t := time.Now()
	if on != nil {
		t = *on
	}
	y, m, d := t.Date()
	return y, m, d, t
}

// Add appends a content block to the end of a day's sequence.
type Add struct {
	Kind record.BlockKind
	// Text carries the payload for text and heading blocks, the code for
	// code blocks, and the url for link blocks.
	Text     string
	Language string
	Title    string
	// Items carries the lines of a checklist or bullets block.
	Items []string
	On    *time.Time

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add content, no persistence")
	}

	block, err := n.build()
	if err != nil {
		return err
	}

	y, m, d, on := resolveDay(n.On)
	r := n.Persistence.Get(y, m, d)
	r.AddContentBlock(block)
	n.Persistence.Set(y, m, d, r)

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title(on.Format(dates.LayoutUS))
	pp.ContentBlocks(r.ContentBlocks)
	return nil
}

func (n *Add) build() (record.ContentBlock, error) {
	id := record.NewBlockID()
	switch n.Kind {
	case record.KindText:
		return record.TextBlock{ID: id, Text: n.Text}, nil
	case record.KindHeading:
		return record.HeadingBlock{ID: id, Text: n.Text}, nil
	case record.KindChecklist:
		items := make([]record.ListItem, 0, len(n.Items))
		for _, text := range n.Items {
			items = append(items, record.NewListItem(text))
		}
		return record.ChecklistBlock{ID: id, Items: items}, nil
	case record.KindBullets:
		items := make([]record.ListItem, 0, len(n.Items))
		for _, text := range n.Items {
			items = append(items, record.NewListItem(text))
		}
		return record.BulletsBlock{ID: id, Items: items}, nil
	case record.KindCode:
		return record.CodeBlock{ID: id, Language: n.Language, Code: n.Text}, nil
	case record.KindLink:
		return record.LinkBlock{ID: id, URL: n.Text, Title: n.Title}, nil
	case record.KindDivider:
		return record.DividerBlock{ID: id}, nil
	default:
		return nil, fmt.Errorf("content: unknown block kind %q", n.Kind)
	}
}

// Remove deletes a content block by id.
type Remove struct {
	ID string
	On *time.Time

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove content, no persistence")
	}

	y, m, d, on := resolveDay(n.On)
	r := n.Persistence.Get(y, m, d)
	if !r.RemoveContentBlock(n.ID) {
		return fmt.Errorf("content: no block %q on %s", n.ID, on.Format(dates.LayoutISO))
	}
	n.Persistence.Set(y, m, d, r)

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title(on.Format(dates.LayoutUS))
	pp.ContentBlocks(r.ContentBlocks)
	return nil
}

// Move shifts a content block one position up or down. Moves past either end
// leave the order unchanged.
type Move struct {
	ID        string
	Direction string // "up" or "down"
	On        *time.Time

	Persistence store.Persistence
}

func (n *Move) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not move content, no persistence")
	}

	var delta int
	switch strings.ToLower(n.Direction) {
	case "up":
		delta = -1
	case "down":
		delta = +1
	default:
		return fmt.Errorf("content: direction must be up or down, got %q", n.Direction)
	}

	y, m, d, on := resolveDay(n.On)
	r := n.Persistence.Get(y, m, d)
	if r.MoveContentBlock(n.ID, delta) {
		n.Persistence.Set(y, m, d, r)
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title(on.Format(dates.LayoutUS))
	pp.ContentBlocks(r.ContentBlocks)
	return nil
}

// Check toggles one checklist item.
type Check struct {
	BlockID string
	ItemID  string
	On      *time.Time

	Persistence store.Persistence
}

func (n *Check) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not check item, no persistence")
	}

	y, m, d, on := resolveDay(n.On)
	r := n.Persistence.Get(y, m, d)
	if !r.ToggleChecklistItem(n.BlockID, n.ItemID) {
		return fmt.Errorf("content: no checklist item %s/%s on %s",
			n.BlockID, n.ItemID, on.Format(dates.LayoutISO))
	}
	n.Persistence.Set(y, m, d, r)

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title(on.Format(dates.LayoutUS))
	pp.ContentBlocks(r.ContentBlocks)
	return nil
}
