// Package ui contains the Bubble Tea program that renders a menu.Machine.
// The Model owns no navigation rules of its own: it turns key presses into
// menu events, hands them to the machine together with the filter text, and
// applies the returned directive.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Filter editing keys (internal/ui/input.go) are consumed first. The
//     remaining keys (internal/ui/navigation.go) move the cursor or become
//     Confirm, CustomInput, Autocomplete and Cancel events.
//   - Reload rebuilds the visible list from the machine and replaces the
//     filter text with the machine's input. Fallback leaves the screen as it
//     is. Exit records an Outcome and quits the program.
//
// State ownership:
//   - The machine holds the menu, its entries and the add/change selections.
//   - internal/ui/state.Level holds what is only presentation: the filtered
//     rows, the cursor, the filter text and the viewport offset.
package ui
