package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	statusTTL     = 2 * time.Second
	defaultWidth  = 80
	defaultHeight = 24
)

type viewMode int

const (
	modeList viewMode = iota
	modeDetail
	modeConfirmDelete
)

// vaultListItem adapts a vault item to list.DefaultItem.
type vaultListItem struct {
	item models.VaultItem
}

func (i vaultListItem) Title() string { return i.item.Title }

func (i vaultListItem) Description() string {
	if i.item.URL == "" {
		return i.item.Username
	}
	return i.item.Username + "  " + i.item.URL
}

func (i vaultListItem) FilterValue() string {
	return i.item.Title + " " + i.item.Username + " " + i.item.URL
}

type browseModel struct {
	ctx       context.Context
	client    VaultClient
	clipboard Clipboard
	buildInfo models.AppBuildInfo

	list          list.Model
	mode          viewMode
	loading       bool
	status        string
	lastErr       error
	showBuildInfo bool
}

func newBrowseModel(ctx context.Context, client VaultClient, clipboard Clipboard, buildInfo models.AppBuildInfo) browseModel {
	l := list.New(nil, list.NewDefaultDelegate(), defaultWidth, defaultHeight)
	l.Title = "go-pass-vault"
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = listHelpKeys
	l.AdditionalFullHelpKeys = listHelpKeys

	return browseModel{
		ctx:       ctx,
		client:    client,
		clipboard: clipboard,
		buildInfo: buildInfo,
		list:      l,
		loading:   true,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.loadItems()
}

func (m browseModel) loadItems() tea.Cmd {
	return func() tea.Msg {
		items, err := m.client.ListItems(m.ctx)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m browseModel) copyField(label, value string) tea.Cmd {
	return func() tea.Msg {
		if err := m.clipboard.WriteAll(value); err != nil {
			return copiedMsg{label: label, err: err}
		}
		return copiedMsg{label: label}
	}
}

func (m browseModel) deleteItem(item models.VaultItem) tea.Cmd {
	return func() tea.Msg {
		return itemDeletedMsg{title: item.Title, err: m.client.DeleteItem(m.ctx, item.ID)}
	}
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m browseModel) selected() (models.VaultItem, bool) {
	it, ok := m.list.SelectedItem().(vaultListItem)
	if !ok {
		return models.VaultItem{}, false
	}
	return it.item, true
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.items))
		for _, it := range msg.items {
			items = append(items, vaultListItem{item: it})
		}
		return m, m.list.SetItems(items)

	case copiedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.status = msg.label + " copied to clipboard"
		return m, clearStatusLater()

	case itemDeletedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.status = "\"" + msg.title + "\" deleted"
		return m, tea.Batch(m.loadItems(), clearStatusLater())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.lastErr != nil {
		if msg.String() == "enter" || msg.String() == "esc" {
			m.lastErr = nil
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.back) || key.Matches(msg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.mode {
	case modeConfirmDelete:
		item, ok := m.selected()
		switch {
		case key.Matches(msg, keys.yes) && ok:
			m.mode = modeList
			return m, m.deleteItem(item)
		case key.Matches(msg, keys.no):
			m.mode = modeList
		}
		return m, nil

	case modeDetail:
		item, _ := m.selected()
		switch {
		case key.Matches(msg, keys.back):
			m.mode = modeList
		case key.Matches(msg, keys.copy):
			return m, m.copyField("Password", item.Password)
		case key.Matches(msg, keys.copyUser):
			return m, m.copyField("Username", item.Username)
		case key.Matches(msg, keys.delete):
			m.mode = modeConfirmDelete
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
		return m, nil
	}

	// While the filter input is focused every key belongs to the list.
	if m.list.FilterState() != list.Filtering {
		item, ok := m.selected()
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.info):
			m.showBuildInfo = true
			return m, nil
		case key.Matches(msg, keys.reload):
			m.loading = true
			return m, m.loadItems()
		case key.Matches(msg, keys.copy) && ok:
			return m, m.copyField("Password", item.Password)
		case key.Matches(msg, keys.copyUser) && ok:
			return m, m.copyField("Username", item.Username)
		case key.Matches(msg, keys.open) && ok:
			m.mode = modeDetail
			return m, nil
		case key.Matches(msg, keys.delete) && ok:
			m.mode = modeConfirmDelete
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	if m.lastErr != nil {
		return appStyle.Render(dangerBoxStyle.Render("Error\n\n" + humanizeError(m.lastErr) + "\n\nenter / esc close"))
	}
	if m.loading {
		return appStyle.Render("Loading...")
	}

	var body string
	switch m.mode {
	case modeDetail:
		body = m.detailView()
	case modeConfirmDelete:
		item, _ := m.selected()
		body = dangerBoxStyle.Render("Delete \"" + item.Title + "\"?\n\ny yes    n no")
	default:
		body = m.list.View()
	}

	if m.status != "" {
		body += "\n" + statusStyle.Render(m.status)
	}
	return appStyle.Render(body)
}

func (m browseModel) detailView() string {
	item, _ := m.selected()
	data := strings.Join([]string{
		field("Username", item.Username),
		field("Password", maskSecret(item.Password)),
		field("URL", item.URL),
		field("Notes", item.Notes),
		field("Updated", item.UpdatedAt.Local().Format(time.DateTime)),
	}, "\n")

	return renderPage(item.Title, data, "enter copy password  u copy username  d delete  esc back")
}
