package tui

import (
	"net/url"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/clipscope/internal/adapters/driven/transfer"
	"github.com/custodia-labs/clipscope/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

// readCmd parses the system clipboard.
func (a *App) readCmd() tea.Cmd {
	ctx, inspector := a.ctx, a.ports.Inspector
	return func() tea.Msg {
		return messages.ParseCompleted{Result: inspector.Read(ctx)}
	}
}

// pasteCmd parses bracketed-paste text. Text made only of paths to
// existing files is parsed as a drop of those files.
func (a *App) pasteCmd(text string) tea.Cmd {
	ctx, inspector := a.ctx, a.ports.Inspector
	return func() tea.Msg {
		payload, origin := payloadFromPaste(text)
		return messages.ParseCompleted{Result: inspector.Parse(ctx, payload, origin)}
	}
}

// copyCmd writes the selected item back to the clipboard. HTML items keep
// their format unless plain is set.
func (a *App) copyCmd(plain bool) tea.Cmd {
	if a.ports.WriteBack == nil {
		return errorCmd(errWriteBackUnavailable)
	}
	item := a.items.SelectedItem()
	if item == nil || item.Text == "" {
		return errorCmd(errNothingToCopy)
	}

	format := domain.FormatPlain
	if !plain && item.Kind == domain.KindHTML {
		format = domain.FormatHTML
	}

	ctx, writeBack, text := a.ctx, a.ports.WriteBack, item.Text
	return func() tea.Msg {
		return messages.CopyCompleted{Result: writeBack.WriteBack(ctx, text, format)}
	}
}

// restoreCmd makes a history entry current.
func (a *App) restoreCmd(id string) tea.Cmd {
	inspector := a.ports.Inspector
	return func() tea.Msg {
		result, err := inspector.Restore(id)
		return messages.HistoryRestored{ID: id, Result: result, Err: err}
	}
}

// toggleWatch starts or stops the clipboard watcher.
func (a *App) toggleWatch() tea.Cmd {
	if a.sub != nil {
		a.sub.Disable()
		a.sub = nil
		return func() tea.Msg { return messages.WatchToggled{Active: false} }
	}
	if !a.ports.CanWatch() {
		return errorCmd(errWatchUnavailable)
	}

	sub, err := a.ports.Listeners.Enable(a.ctx, a.ports.PasteSource(), func(r domain.ParseResult) {
		a.send(messages.ParseCompleted{Result: r})
	})
	if err != nil {
		return func() tea.Msg { return messages.WatchToggled{Err: err} }
	}
	a.sub = sub

	go func() {
		<-sub.Done()
		if err := sub.Err(); err != nil {
			a.send(messages.WatchStopped{Err: err})
		}
	}()

	return func() tea.Msg { return messages.WatchToggled{Active: true} }
}

// send delivers a message from a listener goroutine to the update loop.
func (a *App) send(msg tea.Msg) {
	select {
	case a.events <- msg:
	case <-a.quit:
	case <-a.ctx.Done():
	}
}

// waitForEvent blocks until a listener delivers a message.
func (a *App) waitForEvent() tea.Cmd {
	events, quit, ctx := a.events, a.quit, a.ctx
	return func() tea.Msg {
		select {
		case msg := <-events:
			return listenerEvent{msg: msg}
		case <-quit:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg { return messages.ErrorOccurred{Err: err} }
}

// payloadFromPaste builds the payload for pasted text.
func payloadFromPaste(text string) (driven.Payload, domain.Origin) {
	if files := pastedFiles(text); len(files) > 0 {
		dt := transfer.NewDataTransfer()
		for _, f := range files {
			dt.AddFile(f)
		}
		return dt, domain.OriginDrop
	}
	return transfer.NewDataTransfer().SetData(string(domain.KindPlainText), text), domain.OriginPaste
}

// pastedFiles opens every line of text as a file. It returns nil unless
// every non-empty line names an existing regular file.
func pastedFiles(text string) []driven.File {
	var files []driven.File
	for _, line := range strings.Split(text, "\n") {
		path := pastedPath(line)
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return nil
		}
		f, err := transfer.OpenFile(path)
		if err != nil {
			return nil
		}
		files = append(files, f)
	}
	return files
}

// pastedPath strips the quoting and file:// prefix terminals add to
// dragged-in paths.
func pastedPath(line string) string {
	line = strings.TrimSpace(line)
	line = strings.Trim(line, `'"`)
	if rest, ok := strings.CutPrefix(line, "file://"); ok {
		if unescaped, err := url.PathUnescape(rest); err == nil {
			return unescaped
		}
		return rest
	}
	return strings.ReplaceAll(line, `\ `, " ")
}
