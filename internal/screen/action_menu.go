package screen

import (
	"fmt"

	"go-warehouse-ws/internal/apperror"
)

type Action string

const (
	ActionMoveToFolder         Action = "move-to-folder"
	ActionViewMovement         Action = "movement"
	ActionViewStockByWarehouse Action = "stock-by-warehouse"
	ActionDelete               Action = "delete"
)

type ActionItem struct {
	Action Action `json:"action"`
	Label  string `json:"label"`
}

var actionItems = []ActionItem{
	{Action: ActionMoveToFolder, Label: "Move to folder"},
	{Action: ActionViewMovement, Label: "Product movement"},
	{Action: ActionViewStockByWarehouse, Label: "Stock by warehouse"},
	{Action: ActionDelete, Label: "Delete"},
}

// Actions lists the menu entries in display order.
func Actions() []ActionItem {
	return append([]ActionItem(nil), actionItems...)
}

func ParseAction(s string) (Action, error) {
	for _, item := range actionItems {
		if string(item.Action) == s {
			return item.Action, nil
		}
	}
	return "", apperror.NewValidationError(fmt.Sprintf("unknown action %q", s))
}

// ActionMenu tracks which action modal is open. At most one is open.
type ActionMenu struct {
	open Action
}

// Open shows the modal for action, replacing any open one.
func (m *ActionMenu) Open(action Action) error {
	if _, err := ParseAction(string(action)); err != nil {
		return err
	}
	m.open = action
	return nil
}

func (m *ActionMenu) Close() {
	m.open = ""
}

// Current returns the open modal, or "" when none is open.
func (m *ActionMenu) Current() Action {
	return m.open
}

func (m *ActionMenu) IsOpen(action Action) bool {
	return m.open != "" && m.open == action
}
