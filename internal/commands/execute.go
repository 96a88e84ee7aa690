package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Toggle   func(ToggleArgs) (Result, error)
	Done     func(CategoryArgs) (Result, error)
	Undone   func(CategoryArgs) (Result, error)
	Search   func(SearchArgs) (Result, error)
	Level    func(LevelArgs) (Result, error)
	Status   func(StatusArgs) (Result, error)
	Clear    func() (Result, error)
	Expand   func(ExpandArgs) (Result, error)
	Collapse func(ExpandArgs) (Result, error)
	Reset    func() (Result, error)
	Report   func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeToggle:
		if handlers.Toggle == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Toggle(*cmd.Toggle)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Done(*cmd.Category)
	case TypeUndone:
		if handlers.Undone == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Undone(*cmd.Category)
	case TypeSearch:
		if handlers.Search == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Search(*cmd.Search)
	case TypeLevel:
		if handlers.Level == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Level(*cmd.Level)
	case TypeStatus:
		if handlers.Status == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Status(*cmd.Status)
	case TypeClear:
		if handlers.Clear == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Clear()
	case TypeExpand:
		if handlers.Expand == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Expand(*cmd.Expand)
	case TypeCollapse:
		if handlers.Collapse == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Collapse(*cmd.Expand)
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Reset()
	case TypeReport:
		if handlers.Report == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Report()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
