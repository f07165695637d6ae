package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeDone   Type = "done"
	TypeUndo   Type = "undo"
	TypeDelete Type = "delete"
	TypeExport Type = "export"
	TypeTheme  Type = "theme"
	TypeStats  Type = "stats"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Name      string
	Frequency string
	Target    int
}

type MarkArgs struct {
	Date string
}

type DeleteArgs struct {
	Target string
}

type ExportArgs struct {
	Path string
}

type ThemeArgs struct {
	Name string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Done   *MarkArgs
	Undo   *MarkArgs
	Delete *DeleteArgs
	Export *ExportArgs
	Theme  *ThemeArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDone:
		return parseMark(input, TypeDone, args)
	case TypeUndo:
		return parseMark(input, TypeUndo, args)
	case TypeDelete:
		return parseDelete(input, args)
	case TypeExport:
		return parseExport(input, args)
	case TypeTheme:
		return parseTheme(input, args)
	case TypeStats:
		return Command{Type: TypeStats, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd accepts "add <name...> [@daily|@weekly|@monthly] [xN]" where the
// trailing tokens set frequency and per-day target.
func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a habit name"}
	}

	out := AddArgs{Frequency: "daily", Target: 1}
	nameParts := make([]string, 0, len(args))
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "@"):
			out.Frequency = strings.TrimPrefix(lower, "@")
		case len(lower) > 1 && lower[0] == 'x' && isDigits(lower[1:]):
			n, err := strconv.Atoi(lower[1:])
			if err != nil || n <= 0 {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("bad target %q", arg)}
			}
			out.Target = n
		default:
			nameParts = append(nameParts, arg)
		}
	}

	out.Name = strings.TrimSpace(strings.Join(nameParts, " "))
	if out.Name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a habit name"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseMark(raw string, typ Type, args []string) (Command, error) {
	mark := MarkArgs{}
	if len(args) > 0 {
		mark.Date = strings.TrimSpace(args[0])
	}
	cmd := Command{Type: typ, Raw: raw}
	if typ == TypeDone {
		cmd.Done = &mark
	} else {
		cmd.Undo = &mark
	}
	return cmd, nil
}

func parseDelete(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delete requires a target"}
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{Target: strings.ToLower(args[0])}}, nil
}

func parseExport(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "export requires a destination path"}
	}
	return Command{Type: TypeExport, Raw: raw, Export: &ExportArgs{Path: strings.Join(args, " ")}}, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "theme requires light or dark"}
	}
	name := strings.ToLower(args[0])
	if name != "light" && name != "dark" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown theme: %s", name)}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Name: name}}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
