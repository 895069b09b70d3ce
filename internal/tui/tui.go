// Package tui renders the task list and routes every key event into a
// memstore command. The view is a pure function of (store, session,
// theme); bubbletea re-invokes it after each update.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nkaratas/taskpad/internal/model"
	"github.com/nkaratas/taskpad/internal/store/memstore"
	"github.com/nkaratas/taskpad/internal/ui"
)

// listItem adapts a task to bubbles/list.Item.
type listItem struct {
	task model.Task
}

func (i listItem) Title() string       { return i.task.Title }
func (i listItem) Description() string { return i.task.Description }
func (i listItem) FilterValue() string { return i.task.Title }

// Edit form fields, in tab order. Priority is a selector, not a text input.
const (
	fieldTitle = iota
	fieldDescription
	fieldTags
	fieldPriority
	fieldCount
)

// Model is the single bubbletea model for the whole application.
type Model struct {
	store  *memstore.Store
	logger *log.Logger
	list   list.Model

	// Inline add
	adding   bool
	addInput textinput.Model
	addErr   string

	// Edit form; the authoritative buffer lives in store.Session().
	editing    bool
	focus      int
	titleInput textinput.Model
	descInput  textarea.Model
	tagsInput  textinput.Model

	width, height int
}

// Custom delegate to control how items render (single line).
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	title := it.task.Title
	if it.task.Completed {
		box = t.Success.Render(t.BoxChecked)
		title = t.Done.Render(title)
	}

	parts := []string{box, title}
	parts = append(parts, t.PriorityStyle(it.task.Priority).Render("["+it.task.Priority.String()+"]"))
	for _, tag := range it.task.Tags {
		parts = append(parts, t.Tag.Render("#"+tag))
	}
	parts = append(parts, t.Muted.Render("· "+it.task.CreatedTime().Format("Jan 2 15:04")))

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+strings.Join(parts, " "))
}

// New builds the model around an existing store.
func New(st *memstore.Store, logger *log.Logger) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	// Extend help with our bindings
	binds := []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return binds }
	l.AdditionalFullHelpKeys = func() []key.Binding { return binds }

	m := Model{
		store:  st,
		logger: logger,
		list:   l,
		width:  80,
		height: 24,
	}

	m.addInput = textinput.New()
	m.addInput.Prompt = "> "
	m.addInput.Placeholder = "New task title..."
	m.addInput.CharLimit = 200

	m.titleInput = textinput.New()
	m.titleInput.Prompt = "> "
	m.titleInput.CharLimit = 200

	m.descInput = textarea.New()
	m.descInput.Placeholder = "Description..."
	m.descInput.SetHeight(3)

	m.tagsInput = textinput.New()
	m.tagsInput.Prompt = "> "
	m.tagsInput.Placeholder = "comma, separated, tags"
	m.tagsInput.CharLimit = 200

	m.refresh()
	return m
}

// refresh rebuilds the list items and header from the store.
func (m *Model) refresh() {
	tasks := m.store.Tasks()
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, listItem{task: t})
	}
	m.list.SetItems(items)

	t := ui.Current()
	dn, pn := m.store.Stats()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Tasks"),
		t.Success.Render("✔"), dn,
		t.Pending.Render("•"), pn,
		t.Accent.Render("Total"), m.store.Len(),
	)
	m.list.Styles.Title = t.Title
	m.list.Styles.HelpStyle = t.Help
	m.list.Styles.PaginationStyle = t.Help
}

func (m *Model) selectedID() (int64, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return 0, false
	}
	return it.task.ID, true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = sz.Width, sz.Height
	}

	if m.adding {
		return m.updateAdding(msg)
	}
	if m.editing {
		return m.updateEditing(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case " ":
			if id, ok := m.selectedID(); ok {
				m.store.ToggleComplete(id)
				m.logger.Debug("toggled", "id", id)
				idx := m.list.Index()
				m.refresh()
				m.list.Select(idx)
			}
			return m, nil

		case "d":
			if id, ok := m.selectedID(); ok {
				m.store.Delete(id)
				m.logger.Debug("deleted", "id", id)
				m.refresh()
			}
			return m, nil

		case "a":
			m.adding = true
			m.addErr = ""
			m.addInput.SetValue("")
			m.addInput.Focus()
			return m, nil

		case "e":
			if id, ok := m.selectedID(); ok {
				m.enterEdit(id)
			}
			return m, nil

		case "t":
			ui.Toggle()
			m.logger.Debug("theme toggled", "theme", ui.Current().Name)
			idx := m.list.Index()
			m.refresh()
			m.list.Select(idx)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			t, added := m.store.Add(m.addInput.Value())
			if !added {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			m.logger.Debug("added", "id", t.ID, "title", t.Title)
			m.adding = false
			m.addErr = ""
			m.addInput.SetValue("")
			m.addInput.Blur()
			m.refresh()
			m.list.Select(len(m.list.Items()) - 1)
			return m, nil
		case "esc":
			m.adding = false
			m.addErr = ""
			m.addInput.SetValue("")
			m.addInput.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// enterEdit starts the store session and seeds the form inputs from it.
func (m *Model) enterEdit(id int64) {
	if !m.store.StartEdit(id) {
		return
	}
	sess := m.store.Session()
	m.editing = true
	m.focus = fieldTitle
	m.titleInput.SetValue(sess.Title)
	m.titleInput.CursorEnd()
	m.descInput.SetValue(sess.Description)
	m.tagsInput.SetValue(sess.TagsInput)
	m.applyFocus()
	m.logger.Debug("edit started", "id", id)
}

func (m *Model) applyFocus() {
	m.titleInput.Blur()
	m.descInput.Blur()
	m.tagsInput.Blur()
	switch m.focus {
	case fieldTitle:
		m.titleInput.Focus()
	case fieldDescription:
		m.descInput.Focus()
	case fieldTags:
		m.tagsInput.Focus()
	}
	// fieldPriority keeps no text input; arrow keys drive it.
}

// syncSession copies the form inputs into the store's edit buffer, which
// stays the single source of truth for the commit.
func (m *Model) syncSession() {
	sess := m.store.Session()
	if sess == nil {
		return
	}
	sess.Title = m.titleInput.Value()
	sess.Description = m.descInput.Value()
	sess.TagsInput = m.tagsInput.Value()
}

func (m *Model) exitEdit() {
	m.editing = false
	m.titleInput.Blur()
	m.descInput.Blur()
	m.tagsInput.Blur()
}

func (m Model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	sess := m.store.Session()
	if sess == nil {
		// Session vanished (task deleted elsewhere); drop out of the form.
		m.exitEdit()
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			m.store.CancelEdit()
			m.logger.Debug("edit cancelled", "id", sess.TaskID)
			m.exitEdit()
			return m, nil

		case "ctrl+s":
			return m.commit()

		case "enter":
			// Enter inside the description inserts a newline instead of
			// committing; every other field treats it as save.
			if m.focus != fieldDescription {
				return m.commit()
			}

		case "tab":
			m.syncSession()
			m.focus = (m.focus + 1) % fieldCount
			m.applyFocus()
			return m, nil

		case "shift+tab":
			m.syncSession()
			m.focus = (m.focus + fieldCount - 1) % fieldCount
			m.applyFocus()
			return m, nil

		case "left", "right":
			if m.focus == fieldPriority {
				if k.String() == "right" {
					sess.Priority = sess.Priority.Cycle()
				} else {
					// two forward steps wrap back one in a 3-cycle
					sess.Priority = sess.Priority.Cycle().Cycle()
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case fieldDescription:
		m.descInput, cmd = m.descInput.Update(msg)
	case fieldTags:
		m.tagsInput, cmd = m.tagsInput.Update(msg)
	}
	m.syncSession()
	return m, cmd
}

func (m Model) commit() (tea.Model, tea.Cmd) {
	m.syncSession()
	id := m.store.EditingID()
	committed := m.store.CommitEdit()
	m.logger.Debug("edit committed", "id", id, "applied", committed)
	idx := m.list.Index()
	m.exitEdit()
	m.refresh()
	m.list.Select(idx)
	return m, nil
}

func (m Model) View() string {
	t := ui.Current()

	listHeight := m.height - 4
	if m.adding {
		listHeight = m.height - 7
	}
	if m.editing {
		listHeight = m.height - 14
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(m.width-4, listHeight)

	content := m.list.View()
	switch {
	case m.adding:
		title := "Add task"
		if m.addErr != "" {
			title += " — " + t.Error.Render(m.addErr)
		}
		content += "\n" + t.Border.Render(title+"\n"+m.addInput.View())
	case m.editing:
		content += "\n" + t.Border.Render(m.editForm())
	}
	return t.Border.Render(content)
}

// editForm renders the three inputs plus the priority selector.
func (m Model) editForm() string {
	t := ui.Current()
	sess := m.store.Session()
	if sess == nil {
		return ""
	}

	label := func(field int, text string) string {
		if m.focus == field {
			return t.Accent.Render(text)
		}
		return t.Muted.Render(text)
	}

	prio := t.PriorityStyle(sess.Priority).Render("◀ " + sess.Priority.String() + " ▶")

	lines := []string{
		t.Title.Render("Edit task") + "  " + t.Help.Render("tab: next field · enter/ctrl+s: save · esc: cancel"),
		label(fieldTitle, "Title"),
		m.titleInput.View(),
		label(fieldDescription, "Description") + t.Help.Render("  (enter for newline)"),
		m.descInput.View(),
		label(fieldTags, "Tags"),
		m.tagsInput.View(),
		label(fieldPriority, "Priority") + "  " + prio,
	}
	return strings.Join(lines, "\n")
}

// Run starts the interactive program over the given store and blocks
// until the user quits. It returns the theme in effect on exit.
func Run(st *memstore.Store, logger *log.Logger) (string, error) {
	m := New(st, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return ui.Current().Name, fmt.Errorf("run program: %w", err)
	}
	return ui.Current().Name, nil
}
