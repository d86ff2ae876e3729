package record

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// BlockKind discriminates the content block union in the persisted JSON.
type BlockKind string

const (
	KindText      BlockKind = "text"
	KindHeading   BlockKind = "heading"
	KindChecklist BlockKind = "checklist"
	KindBullets   BlockKind = "bullets"
	KindCode      BlockKind = "code"
	KindLink      BlockKind = "link"
	KindDivider   BlockKind = "divider"
)

// ContentBlock is one unit of free-form day-notes content. The set of
// implementations is closed; decoding an unknown kind is an error so no data
// is silently dropped.
type ContentBlock interface {
	BlockID() string
	Kind() BlockKind
}

// ListItem is one entry of a checklist or bullets block.
type ListItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked,omitempty"`
}

// NewListItem assigns a fresh id to a list item.
func NewListItem(text string) ListItem {
	return ListItem{ID: uuid.NewString(), Text: text}
}

type TextBlock struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type HeadingBlock struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type ChecklistBlock struct {
	ID    string     `json:"id"`
	Items []ListItem `json:"items"`
}

type BulletsBlock struct {
	ID    string     `json:"id"`
	Items []ListItem `json:"items"`
}

type CodeBlock struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	Code     string `json:"code"`
}

type LinkBlock struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type DividerBlock struct {
	ID string `json:"id"`
}

func (b TextBlock) BlockID() string      { return b.ID }
func (b HeadingBlock) BlockID() string   { return b.ID }
func (b ChecklistBlock) BlockID() string { return b.ID }
func (b BulletsBlock) BlockID() string   { return b.ID }
func (b CodeBlock) BlockID() string      { return b.ID }
func (b LinkBlock) BlockID() string      { return b.ID }
func (b DividerBlock) BlockID() string   { return b.ID }

func (TextBlock) Kind() BlockKind      { return KindText }
func (HeadingBlock) Kind() BlockKind   { return KindHeading }
func (ChecklistBlock) Kind() BlockKind { return KindChecklist }
func (BulletsBlock) Kind() BlockKind   { return KindBullets }
func (CodeBlock) Kind() BlockKind      { return KindCode }
func (LinkBlock) Kind() BlockKind      { return KindLink }
func (DividerBlock) Kind() BlockKind   { return KindDivider }

// NewBlockID mints an id for a freshly created block.
func NewBlockID() string {
	return uuid.NewString()
}

// Blocks is an ordered content block sequence. Array position is the
// ordering key; reordering is first-class and the order is persisted exactly
// as arranged.
type Blocks []ContentBlock

// MarshalJSON encodes each block as a flat object carrying a "type"
// discriminator next to its payload fields.
func (bs Blocks) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, 0, len(bs))
	for _, b := range bs {
		raw, err := marshalBlock(b)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the tagged union. An absent or null array becomes an
// empty sequence; an unknown type tag is an error.
func (bs *Blocks) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	blocks := make(Blocks, 0, len(raws))
	for _, raw := range raws {
		b, err := unmarshalBlock(raw)
		if err != nil {
			return err
		}
		blocks = append(blocks, b)
	}
	*bs = blocks
	return nil
}

func marshalBlock(b ContentBlock) ([]byte, error) {
	type tag struct {
		Type BlockKind `json:"type"`
	}
	switch v := b.(type) {
	case TextBlock:
		return json.Marshal(struct {
			tag
			TextBlock
		}{tag{KindText}, v})
	case HeadingBlock:
		return json.Marshal(struct {
			tag
			HeadingBlock
		}{tag{KindHeading}, v})
	case ChecklistBlock:
		return json.Marshal(struct {
			tag
			ChecklistBlock
		}{tag{KindChecklist}, v})
	case BulletsBlock:
		return json.Marshal(struct {
			tag
			BulletsBlock
		}{tag{KindBullets}, v})
	case CodeBlock:
		return json.Marshal(struct {
			tag
			CodeBlock
		}{tag{KindCode}, v})
	case LinkBlock:
		return json.Marshal(struct {
			tag
			LinkBlock
		}{tag{KindLink}, v})
	case DividerBlock:
		return json.Marshal(struct {
			tag
			DividerBlock
		}{tag{KindDivider}, v})
	default:
		return nil, fmt.Errorf("record: unsupported content block %T", b)
	}
}

func unmarshalBlock(raw json.RawMessage) (ContentBlock, error) {
	var probe struct {
		Type BlockKind `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	var target ContentBlock
	var err error
	switch probe.Type {
	case KindText:
		var b TextBlock
		err = json.Unmarshal(raw, &b)
		target = b
	case KindHeading:
		var b HeadingBlock
		err = json.Unmarshal(raw, &b)
		target = b
	case KindChecklist:
		var b ChecklistBlock
		err = json.Unmarshal(raw, &b)
		target = b
	case KindBullets:
		var b BulletsBlock
		err = json.Unmarshal(raw, &b)
		target = b
	case KindCode:
		var b CodeBlock
		err = json.Unmarshal(raw, &b)
		target = b
	case KindLink:
		var b LinkBlock
		err = json.Unmarshal(raw, &b)
		target = b
	case KindDivider:
		var b DividerBlock
		err = json.Unmarshal(raw, &b)
		target = b
	default:
		return nil, fmt.Errorf("record: unknown content block type %q", probe.Type)
	}
	if err != nil {
		return nil, err
	}
	return target, nil
}
