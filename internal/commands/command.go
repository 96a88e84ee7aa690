package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/leettrack/internal/filter"
)

type Type string

const (
	TypeToggle   Type = "toggle"
	TypeDone     Type = "done"
	TypeUndone   Type = "undone"
	TypeSearch   Type = "search"
	TypeLevel    Type = "level"
	TypeStatus   Type = "status"
	TypeClear    Type = "clear"
	TypeExpand   Type = "expand"
	TypeCollapse Type = "collapse"
	TypeReset    Type = "reset"
	TypeReport   Type = "report"
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

type ToggleArgs struct {
	Item string
}

// CategoryArgs names the category for done and undone.
type CategoryArgs struct {
	Category string
}

type SearchArgs struct {
	Term string
}

type LevelArgs struct {
	Difficulty filter.Difficulty
}

type StatusArgs struct {
	Status filter.Status
}

// ExpandArgs targets one category, or every category when All is set.
type ExpandArgs struct {
	Category string
	All      bool
}

type Command struct {
	Type     Type
	Raw      string
	Toggle   *ToggleArgs
	Category *CategoryArgs
	Search   *SearchArgs
	Level    *LevelArgs
	Status   *StatusArgs
	Expand   *ExpandArgs
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
	case TypeToggle:
		return parseToggle(input, args)
	case TypeDone, TypeUndone:
		return parseCategory(input, Type(head), args)
	case TypeSearch:
		return Command{Type: TypeSearch, Raw: input, Search: &SearchArgs{Term: strings.Join(args, " ")}}, nil
	case TypeLevel:
		return parseLevel(input, args)
	case TypeStatus:
		return parseStatus(input, args)
	case TypeExpand, TypeCollapse:
		return parseExpand(input, Type(head), args)
	case TypeClear, TypeReset, TypeReport:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", head)}
		}
		return Command{Type: Type(head), Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseToggle(raw string, args []string) (Command, error) {
	item := strings.TrimSpace(strings.Join(args, " "))
	if item == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "toggle requires an item"}
	}
	return Command{Type: TypeToggle, Raw: raw, Toggle: &ToggleArgs{Item: item}}, nil
}

func parseCategory(raw string, typ Type, args []string) (Command, error) {
	category := strings.TrimSpace(strings.Join(args, " "))
	if category == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a category", typ)}
	}
	return Command{Type: typ, Raw: raw, Category: &CategoryArgs{Category: category}}, nil
}

func parseLevel(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "level requires one of all, easy, medium, hard"}
	}
	d, err := filter.ParseDifficulty(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeLevel, Raw: raw, Level: &LevelArgs{Difficulty: d}}, nil
}

func parseStatus(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "status requires one of all, done, undone"}
	}
	s, err := filter.ParseStatus(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeStatus, Raw: raw, Status: &StatusArgs{Status: s}}, nil
}

func parseExpand(raw string, typ Type, args []string) (Command, error) {
	target := strings.TrimSpace(strings.Join(args, " "))
	if target == "" || strings.EqualFold(target, "all") {
		return Command{Type: typ, Raw: raw, Expand: &ExpandArgs{All: true}}, nil
	}
	return Command{Type: typ, Raw: raw, Expand: &ExpandArgs{Category: target}}, nil
}
