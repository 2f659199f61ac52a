package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/utils/timer"
)

// MessageType selects the symbol and color of a message.
type MessageType int

const (
	// ErrorType is rendered red with a ✗ symbol.
	ErrorType MessageType = iota
	// WarningType is rendered yellow with a ⚠ symbol.
	WarningType
	// ActivityType is rendered uncolored with a ► symbol.
	ActivityType
	// SuccessType is rendered green with a ✔ symbol.
	SuccessType
	// InfoType is rendered blue with an ℹ symbol.
	InfoType
	// TitleType is rendered bold and prefixed by an emoji.
	TitleType
)

// Message is a single notification.
type Message struct {
	Type    MessageType
	Content string
	Args    []any
	// Emoji prefixes TitleType messages. Defaults to ℹ️.
	Emoji string
	// Timer, when set on a SuccessType message, appends the stage and total durations.
	Timer timer.Timer
	// Writer defaults to os.Stdout.
	Writer io.Writer
}

// Errorf writes an error message.
func Errorf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ErrorType, Content: format, Args: args, Writer: writer})
}

// Warningf writes a warning message.
func Warningf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: WarningType, Content: format, Args: args, Writer: writer})
}

// Activityf writes an activity message.
func Activityf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ActivityType, Content: format, Args: args, Writer: writer})
}

// Successf writes a success message.
func Successf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Writer: writer})
}

// SuccessWithTimerf writes a success message followed by the timing block of tmr.
func SuccessWithTimerf(writer io.Writer, tmr timer.Timer, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Timer: tmr, Writer: writer})
}

// Infof writes an informational message.
func Infof(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: InfoType, Content: format, Args: args, Writer: writer})
}

// Titlef writes a stage title prefixed by emoji.
func Titlef(writer io.Writer, emoji, format string, args ...any) {
	WriteMessage(Message{Type: TitleType, Content: format, Args: args, Emoji: emoji, Writer: writer})
}

// WriteMessage renders msg to its writer.
//
// Stage separation (a blank line before each title) is handled by wrapping the
// command's writer in a StageSeparatingWriter.
func WriteMessage(msg Message) {
	if msg.Writer == nil {
		msg.Writer = os.Stdout
	}

	content := msg.Content
	if len(msg.Args) > 0 {
		content = fmt.Sprintf(msg.Content, msg.Args...)
	}

	style := styleFor(msg.Type)

	if msg.Type == TitleType {
		emoji := msg.Emoji
		if emoji == "" {
			emoji = "ℹ️"
		}

		_, err := style.color.Fprintf(msg.Writer, "%s %s\n", emoji, content)
		reportWriteError(err)

		return
	}

	content = indentContinuationLines(content, style.symbol)

	_, err := style.color.Fprintf(msg.Writer, "%s%s\n", style.symbol, content)
	reportWriteError(err)

	if msg.Type == SuccessType && msg.Timer != nil {
		total, stage := msg.Timer.GetTiming()

		_, err = style.color.Fprintf(msg.Writer, "⏲ current: %s\n  total:  %s\n", stage, total)
		reportWriteError(err)
	}
}

type style struct {
	symbol string
	color  *fcolor.Color
}

func styleFor(msgType MessageType) style {
	switch msgType {
	case ErrorType:
		return style{symbol: "✗ ", color: fcolor.New(fcolor.FgRed)}
	case WarningType:
		return style{symbol: "⚠ ", color: fcolor.New(fcolor.FgYellow)}
	case ActivityType:
		return style{symbol: "► ", color: fcolor.New(fcolor.Reset)}
	case SuccessType:
		return style{symbol: "✔ ", color: fcolor.New(fcolor.FgGreen)}
	case InfoType:
		return style{symbol: "ℹ ", color: fcolor.New(fcolor.FgBlue)}
	case TitleType:
		return style{symbol: "", color: fcolor.New(fcolor.Reset, fcolor.Bold)}
	default:
		return style{symbol: "", color: fcolor.New(fcolor.Reset)}
	}
}

// reportWriteError logs to stderr; a failed notification must not fail the command.
func reportWriteError(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "notify: failed to print message: %v\n", err)
	}
}

// indentContinuationLines aligns the lines after the first with the text after the symbol.
func indentContinuationLines(content, symbol string) string {
	if symbol == "" || !strings.Contains(content, "\n") {
		return content
	}

	indent := strings.Repeat(" ", len([]rune(symbol)))
	lines := strings.Split(content, "\n")

	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = indent + lines[i]
		}
	}

	return strings.Join(lines, "\n")
}
