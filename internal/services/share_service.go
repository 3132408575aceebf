package services

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	"task-tracker/internal/domain"
)

// ShareTitle is the title handed to the platform share target
const ShareTitle = "Task Details"

// ClipboardNotice is shown after the clipboard fallback
const ClipboardNotice = "Task details copied to clipboard!"

// Sharer is a platform share target
type Sharer interface {
	Available() bool
	Share(ctx context.Context, title, text string) error
}

// Clipboard writes text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes through github.com/atotto/clipboard
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// CommandSharer shares through an external command such as termux-share.
// The text is written to the command's stdin and the title is exported as TK_SHARE_TITLE.
type CommandSharer struct {
	Command  string
	lookPath func(string) (string, error)
}

// NewCommandSharer creates a sharer for a configured command line
func NewCommandSharer(command string) *CommandSharer {
	return &CommandSharer{Command: command, lookPath: exec.LookPath}
}

// Available reports whether the command is configured and on PATH
func (c *CommandSharer) Available() bool {
	fields := strings.Fields(c.Command)
	if len(fields) == 0 {
		return false
	}
	_, err := c.lookPath(fields[0])
	return err == nil
}

// Share runs the command and waits for it to exit
func (c *CommandSharer) Share(ctx context.Context, title, text string) error {
	fields := strings.Fields(c.Command)
	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Env = append(os.Environ(), "TK_SHARE_TITLE="+title)
	return cmd.Run()
}

// shareServiceImpl implements the ShareService interface
type shareServiceImpl struct {
	sharer      Sharer
	clipboard   Clipboard
	timeService TimeService
	dateLayout  string
	logger      zerolog.Logger
}

// NewShareService creates a ShareService. A nil sharer means no platform share is available.
func NewShareService(sharer Sharer, cb Clipboard, timeService TimeService, dateLayout string, logger zerolog.Logger) ShareService {
	if cb == nil {
		cb = SystemClipboard{}
	}
	return &shareServiceImpl{
		sharer:      sharer,
		clipboard:   cb,
		timeService: timeService,
		dateLayout:  dateLayout,
		logger:      logger.With().Str("component", "share").Logger(),
	}
}

// FormatShareText renders the plain-text block for a task. Absent due date and
// notes leave blank lines behind; the block as a whole is trimmed.
func (s *shareServiceImpl) FormatShareText(task domain.Task) string {
	var due, notes string
	if task.HasDueDate() {
		due = "Due Date: " + s.timeService.FormatDueDate(task.DueDate, s.dateLayout)
	}
	if task.HasNotes() {
		notes = "Notes: " + task.Notes
	}

	lines := []string{
		"Task: " + task.Text,
		"Category: " + task.Category,
		"Priority: " + task.Priority,
		due,
		notes,
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Share never fails. A platform share error, including the user cancelling, is only logged.
func (s *shareServiceImpl) Share(ctx context.Context, task domain.Task) ShareResult {
	text := s.FormatShareText(task)

	if s.sharer != nil && s.sharer.Available() {
		if err := s.sharer.Share(ctx, ShareTitle, text); err != nil {
			s.logger.Error().Err(err).Int64("id", task.ID).Msg("error sharing")
		}
		return ShareResult{Method: ShareMethodPlatform, Text: text}
	}

	if err := s.clipboard.WriteAll(text); err != nil {
		s.logger.Warn().Err(err).Int64("id", task.ID).Msg("clipboard write failed")
	}
	return ShareResult{Method: ShareMethodClipboard, Text: text, Notice: ClipboardNotice}
}
