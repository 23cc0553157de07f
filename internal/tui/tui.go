// Package tui is the terminal front-end: a dashboard of goals, the resource
// catalog and the achievement badges, switched with 1/2/3 or tab.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Dias221467/waseela/internal/models"
	"github.com/Dias221467/waseela/internal/services"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type view int

const (
	dashboardView view = iota
	resourcesView
	achievementsView
)

var viewNames = []string{"Dashboard", "Resources", "Achievements"}

type inputMode int

const (
	inputNone inputMode = iota
	inputGoal
	inputMilestone
)

// Model is the bubbletea model. It reads and mutates state only through the services.
type Model struct {
	ctx          context.Context
	goals        *services.GoalService
	resources    *services.ResourceService
	achievements *services.AchievementService

	view         view
	goalIdx      int
	milestoneIdx int
	resourceIdx  int

	mode   inputMode
	ti     textinput.Model
	status string
	err    error
	help   help.Model
}

func New(ctx context.Context, goals *services.GoalService, resources *services.ResourceService, achievements *services.AchievementService) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return Model{
		ctx:          ctx,
		goals:        goals,
		resources:    resources,
		achievements: achievements,
		ti:           ti,
		help:         help.New(),
	}
}

// Run starts the program on the alternate screen and blocks until it quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode != inputNone {
		return m.updateInput(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		m.status = ""
		m.err = nil
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Dashboard):
			m.view = dashboardView
		case key.Matches(msg, keys.Resources):
			m.view = resourcesView
		case key.Matches(msg, keys.Achievements):
			m.view = achievementsView
		case key.Matches(msg, keys.NextView):
			m.view = (m.view + 1) % view(len(viewNames))
		default:
			switch m.view {
			case dashboardView:
				return m.updateDashboard(msg)
			case resourcesView:
				return m.updateResources(msg)
			}
		}
	}
	return m, nil
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	goals := m.goals.ListGoals(m.ctx)
	selected, hasGoal := selectedGoal(goals, m.goalIdx)

	switch {
	case key.Matches(msg, keys.Up):
		if m.goalIdx > 0 {
			m.goalIdx--
			m.milestoneIdx = 0
		}
	case key.Matches(msg, keys.Down):
		if m.goalIdx < len(goals)-1 {
			m.goalIdx++
			m.milestoneIdx = 0
		}
	case key.Matches(msg, keys.PrevStep):
		if m.milestoneIdx > 0 {
			m.milestoneIdx--
		}
	case key.Matches(msg, keys.NextStep):
		if hasGoal && m.milestoneIdx < len(selected.Milestones)-1 {
			m.milestoneIdx++
		}
	case key.Matches(msg, keys.NewGoal):
		return m.startInput(inputGoal, "Goal title...")
	case key.Matches(msg, keys.NewMilestone):
		if !hasGoal {
			m.status = "Create a goal first"
			return m, nil
		}
		return m.startInput(inputMilestone, "Milestone...")
	case key.Matches(msg, keys.Toggle):
		if !hasGoal || len(selected.Milestones) == 0 {
			return m, nil
		}
		milestone := selected.Milestones[m.milestoneIdx]
		if _, err := m.goals.ToggleMilestone(m.ctx, selected.ID, milestone.ID); err != nil {
			m.err = err
		}
	case key.Matches(msg, keys.Delete):
		if !hasGoal {
			return m, nil
		}
		if err := m.goals.DeleteGoal(m.ctx, selected.ID); err != nil {
			m.err = err
			return m, nil
		}
		m.status = fmt.Sprintf("Deleted %q", selected.Title)
		if m.goalIdx > 0 && m.goalIdx >= len(goals)-1 {
			m.goalIdx--
		}
		m.milestoneIdx = 0
	}
	return m, nil
}

func (m Model) updateResources(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	resources := m.resources.ListResources(m.ctx, "")

	switch {
	case key.Matches(msg, keys.Up):
		if m.resourceIdx > 0 {
			m.resourceIdx--
		}
	case key.Matches(msg, keys.Down):
		if m.resourceIdx < len(resources)-1 {
			m.resourceIdx++
		}
	case key.Matches(msg, keys.Bookmark):
		if m.resourceIdx >= len(resources) {
			return m, nil
		}
		if _, err := m.resources.ToggleBookmark(m.ctx, resources[m.resourceIdx].ID); err != nil {
			m.err = err
		}
	}
	return m, nil
}

func (m Model) startInput(mode inputMode, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.ti.Placeholder = placeholder
	m.ti.SetValue("")
	return m, m.ti.Focus()
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			text := strings.TrimSpace(m.ti.Value())
			m.status = m.submitInput(text)
			m.mode = inputNone
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		case "esc":
			m.mode = inputNone
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// submitInput applies the finished prompt and returns a status line.
func (m *Model) submitInput(text string) string {
	switch m.mode {
	case inputGoal:
		if text == "" {
			return "Title cannot be empty"
		}
		m.goals.CreateGoal(m.ctx, models.GoalDraft{Title: text})
		m.goalIdx = len(m.goals.ListGoals(m.ctx)) - 1
		m.milestoneIdx = 0
		return fmt.Sprintf("Created %q", text)
	case inputMilestone:
		selected, ok := selectedGoal(m.goals.ListGoals(m.ctx), m.goalIdx)
		if !ok {
			return ""
		}
		if _, err := m.goals.AddMilestone(m.ctx, selected.ID, text); err != nil {
			return err.Error()
		}
	}
	return ""
}

func selectedGoal(goals []models.Goal, idx int) (models.Goal, bool) {
	if idx < 0 || idx >= len(goals) {
		return models.Goal{}, false
	}
	return goals[idx], true
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabs())
	b.WriteString("\n\n")

	switch m.view {
	case dashboardView:
		b.WriteString(m.dashboardView())
	case resourcesView:
		b.WriteString(m.resourcesView())
	case achievementsView:
		b.WriteString(m.achievementsView())
	}

	if m.mode != inputNone {
		b.WriteString("\n" + m.ti.View() + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errorLine(m.err) + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + accentStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.help.View(keys))
	return b.String()
}

func (m Model) tabs() string {
	parts := make([]string, len(viewNames))
	for i, name := range viewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if view(i) == m.view {
			parts[i] = activeTabStyle.Render(label)
		} else {
			parts[i] = mutedStyle.Render(label)
		}
	}
	return titleStyle.Render("Waseela") + "   " + strings.Join(parts, "  ")
}

func (m Model) dashboardView() string {
	goals := m.goals.ListGoals(m.ctx)
	if len(goals) == 0 {
		return mutedStyle.Render("No goals yet. Press n to create one.")
	}

	var b strings.Builder
	for i, g := range goals {
		prefix := "  "
		title := g.Title
		if i == m.goalIdx {
			prefix = selectedStyle.Render("> ")
			title = titleStyle.Render(title)
		}
		if g.Achieved() {
			title = successStyle.Render("✔ ") + title
		}
		fmt.Fprintf(&b, "%s%s  %s\n", prefix, title, helpStyle.Render(progressBar(g.CompletedMilestones(), len(g.Milestones), 20)))

		if i != m.goalIdx {
			continue
		}
		if !time.Time(g.Deadline).IsZero() {
			fmt.Fprintf(&b, "    %s %s\n", pendingStyle.Render("due"), g.Deadline.String())
		}
		for j, ms := range g.Milestones {
			box := mutedStyle.Render(boxUnchecked)
			text := ms.Text
			if ms.Completed {
				box = successStyle.Render(boxChecked)
				text = doneStyle.Render(text)
			}
			cursor := "  "
			if j == m.milestoneIdx {
				cursor = accentStyle.Render("• ")
			}
			fmt.Fprintf(&b, "    %s%s %s\n", cursor, box, text)
		}
	}
	return b.String()
}

func (m Model) resourcesView() string {
	resources := m.resources.ListResources(m.ctx, "")

	var b strings.Builder
	for i, r := range resources {
		prefix := "  "
		if i == m.resourceIdx {
			prefix = selectedStyle.Render("> ")
		}
		mark := mutedStyle.Render("☆")
		if r.Bookmarked {
			mark = pendingStyle.Render("★")
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", prefix, mark, titleStyle.Render(r.Title), mutedStyle.Render("["+string(r.Category)+" · "+string(r.Type)+"]"))
		fmt.Fprintf(&b, "      %s\n", helpStyle.Render(r.Description))
	}
	return b.String()
}

func (m Model) achievementsView() string {
	achs := m.achievements.ListAchievements(m.ctx)
	badges := make([]string, 0, len(achs))
	for _, a := range achs {
		if a.Unlocked {
			badges = append(badges, unlockedBadgeStyle.Render(successStyle.Render("🏆 "+a.Title)+"\n"+a.Description))
		} else {
			badges = append(badges, lockedBadgeStyle.Render("🔒 "+a.Title+"\n"+a.Description))
		}
	}
	if len(badges) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, badges...)
}

func errorLine(err error) string {
	return errorStyle.Render("✖ " + err.Error())
}
