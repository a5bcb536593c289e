package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/xonecas/smartline/internal/config"
)

// keyMap holds the configurable bindings. Plain editing keys are fixed and
// live in editKeyHandlers.
type keyMap struct {
	Extend        key.Binding
	Retract       key.Binding
	Complete      key.Binding
	HistoryPrev   key.Binding
	HistoryNext   key.Binding
	HistorySearch key.Binding
	Submit        key.Binding
	Quit          key.Binding
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(keys, "/"), desc))
}

func newKeyMap(k config.KeysConfig) keyMap {
	return keyMap{
		Extend:        binding(k.Extend, "select more"),
		Retract:       binding(k.Retract, "select less"),
		Complete:      binding(k.Complete, "complete"),
		HistoryPrev:   binding([]string{"up"}, "older"),
		HistoryNext:   binding([]string{"down"}, "newer"),
		HistorySearch: binding(k.HistorySearch, "search history"),
		Submit:        binding(k.Submit, "run"),
		Quit:          binding(k.Quit, "quit"),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Extend, k.Retract, k.Complete, k.HistorySearch, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Extend, k.Retract, k.Complete},
		{k.HistoryPrev, k.HistoryNext, k.HistorySearch},
		{k.Submit, k.Quit},
	}
}
