package terminal

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/alexandernizov/mogakco/internal/client/view"
)

// Render draws screen as plain text. It must run on the main loop.
func Render(screen view.Screen) string {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", screen.Title())

	switch s := screen.(type) {
	case *view.LoginScreen:
		renderLogin(&b, s)
	case *view.SignupScreen:
		renderSignup(&b, s)
	case *view.ChatListScreen:
		renderChatList(&b, s)
	case *view.ChatScreen:
		renderChat(&b, s)
	}
	return b.String()
}

func renderLogin(b *strings.Builder, s *view.LoginScreen) {
	fmt.Fprintf(b, "email:    %s\n", s.Email)
	fmt.Fprintf(b, "password: %s\n", strings.Repeat("*", len([]rune(s.Password))))
	renderErr(b, s.Err)
}

func renderSignup(b *strings.Builder, s *view.SignupScreen) {
	w := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
	for _, f := range view.AllSignupFields() {
		v := s.Fields[f]
		if f == view.FieldPassword {
			v = strings.Repeat("*", len([]rune(v)))
		}
		fmt.Fprintf(w, "%s:\t%s\n", f, v)
	}
	_ = w.Flush()
	renderErr(b, s.Err)
}

func renderChatList(b *strings.Builder, s *view.ChatListScreen) {
	if s.Refreshing {
		b.WriteString("(refreshing)\n")
	}
	if len(s.Rooms) == 0 {
		b.WriteString("no rooms\n")
	}
	w := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
	for i, room := range s.Rooms {
		fmt.Fprintf(w, "%d\t%s\t%d members\n", i+1, room.StudyID, len(room.UserIDs))
	}
	_ = w.Flush()
	renderErr(b, s.Err)
}

func renderChat(b *strings.Builder, s *view.ChatScreen) {
	if s.List.Refreshing {
		b.WriteString("(loading older messages)\n")
	}
	for _, cell := range s.List.Cells {
		if cell.Alignment == view.AlignRight {
			fmt.Fprintf(b, "%60s  %s\n", cell.Text, cell.Time)
			continue
		}
		fmt.Fprintf(b, "[%s] %s  %s\n", cell.Name, cell.Text, cell.Time)
	}
	if !s.DimOverlayHidden {
		b.WriteString("-- menu --\n")
		for i, menu := range s.SidebarMenus {
			fmt.Fprintf(b, "  %d. %s\n", i+1, menu)
		}
	}
	fmt.Fprintf(b, "> %s\n", s.ComposerText)
}

func renderErr(b *strings.Builder, err error) {
	if err != nil {
		fmt.Fprintf(b, "error: %v\n", err)
	}
}
