package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Dashboard    key.Binding
	Resources    key.Binding
	Achievements key.Binding
	NextView     key.Binding
	Up           key.Binding
	Down         key.Binding
	PrevStep     key.Binding
	NextStep     key.Binding
	NewGoal      key.Binding
	NewMilestone key.Binding
	Toggle       key.Binding
	Delete       key.Binding
	Bookmark     key.Binding
	Quit         key.Binding
}

var keys = keyMap{
	Dashboard:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "dashboard")),
	Resources:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "resources")),
	Achievements: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "achievements")),
	NextView:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
	Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
	Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
	PrevStep:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "prev milestone")),
	NextStep:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "next milestone")),
	NewGoal:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new goal")),
	NewMilestone: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "add milestone")),
	Toggle:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle milestone")),
	Delete:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete goal")),
	Bookmark:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bookmark")),
	Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Up, k.Down, k.NewGoal, k.NewMilestone, k.Toggle, k.Delete, k.Bookmark, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dashboard, k.Resources, k.Achievements, k.NextView},
		{k.Up, k.Down, k.PrevStep, k.NextStep},
		{k.NewGoal, k.NewMilestone, k.Toggle, k.Delete, k.Bookmark},
		{k.Quit},
	}
}
