package view

import (
	"net/url"

	"github.com/alexandernizov/mogakco/internal/domain"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

type Color string

const (
	PrimaryDefault   Color = "primaryDefault"
	PrimarySecondary Color = "primarySecondary"
)

const (
	WithdrawnUserName = "탈퇴한 유저"

	AvatarPlaceholder = "person"
	AvatarFallback    = "person.fill"

	BubbleMaxWidth = 200.0
	timeFormat     = "15:04"
)

// ChatCell is the layout state of one chat bubble.
type ChatCell struct {
	Text string
	Name string
	Time string

	NameHidden   bool
	AvatarHidden bool
	// Avatar is an image URL or one of the placeholder symbols.
	Avatar string

	Alignment      Alignment
	Background     Color
	MaxBubbleWidth float64

	constrained bool
}

func NewChatCell() *ChatCell {
	c := &ChatCell{Background: PrimarySecondary}
	c.PrepareForReuse()
	return c
}

// PrepareForReuse clears everything a previous chat left on the cell.
func (c *ChatCell) PrepareForReuse() {
	c.Avatar = AvatarPlaceholder
	c.Text = ""
	c.Name = ""
	c.Time = ""
	c.NameHidden = false
	c.AvatarHidden = false
	c.Alignment = AlignLeft
	c.MaxBubbleWidth = 0
	c.constrained = false
}

// Constrained reports whether the bubble has been laid out since the last
// reuse.
func (c *ChatCell) Constrained() bool {
	return c.constrained
}

// LayoutChat renders chat. A missing sender flag or sender renders as the
// other-side bubble of a withdrawn user.
func (c *ChatCell) LayoutChat(chat domain.Chat) {
	switch {
	case chat.IsFromCurrentUser == nil || chat.User == nil:
		c.layoutOthersBubble(nil)
	case *chat.IsFromCurrentUser:
		c.layoutMyBubble()
	default:
		c.layoutOthersBubble(chat.User)
	}

	c.Text = chat.Message
	c.Time = chat.Date.Format(timeFormat)
}

func (c *ChatCell) layoutOthersBubble(user *domain.User) {
	c.Alignment = AlignLeft
	c.MaxBubbleWidth = BubbleMaxWidth
	c.Background = PrimarySecondary
	c.constrained = true

	c.Name = WithdrawnUserName
	c.Avatar = AvatarFallback
	if user == nil {
		return
	}

	c.Name = user.Name
	if validImageURL(user.ProfileImageURL) {
		c.Avatar = user.ProfileImageURL
	}
}

func (c *ChatCell) layoutMyBubble() {
	c.Alignment = AlignRight
	c.MaxBubbleWidth = BubbleMaxWidth
	c.Background = PrimaryDefault
	c.constrained = true

	c.NameHidden = true
	c.AvatarHidden = true
}

func validImageURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
