package view

import "github.com/alexandernizov/mogakco/internal/domain"

const (
	ItemHeight      = 60.0
	SectionTopInset = 16.0
	LineSpacing     = 12.0
)

// MessageList is the scrolling list of chat bubbles. Cells leaving the list
// go to a reuse pool and are reset before they show another chat.
type MessageList struct {
	Frame       Rect
	BottomInset float64
	Cells       []*ChatCell
	Refreshing  bool
	// ScrolledTo is the index scrolled into view, -1 when never scrolled.
	ScrolledTo int

	pool []*ChatCell
}

func NewMessageList() *MessageList {
	return &MessageList{ScrolledTo: -1}
}

func (l *MessageList) Reload(chats []domain.Chat) {
	for i := len(l.Cells) - 1; i >= 0; i-- {
		l.pool = append(l.pool, l.Cells[i])
	}
	l.Cells = l.Cells[:0]

	for _, chat := range chats {
		cell := l.dequeue()
		cell.LayoutChat(chat)
		l.Cells = append(l.Cells, cell)
	}
}

func (l *MessageList) dequeue() *ChatCell {
	if n := len(l.pool); n > 0 {
		cell := l.pool[n-1]
		l.pool = l.pool[:n-1]
		cell.PrepareForReuse()
		return cell
	}
	return NewChatCell()
}

func (l *MessageList) ContentHeight() float64 {
	n := float64(len(l.Cells))
	if n == 0 {
		return SectionTopInset
	}
	return SectionTopInset + n*ItemHeight + (n-1)*LineSpacing
}

func (l *MessageList) ScrollToLast() {
	l.ScrolledTo = len(l.Cells) - 1
}
