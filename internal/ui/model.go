// Package ui implements the terminal storefront: a catalog browser, the
// cart with its order summary, and the checkout confirmation. All cart
// mutations go through the session's primitive-typed API.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/storefront-go/storefront/internal/domain/catalog"
	"github.com/storefront-go/storefront/internal/domain/checkout"
	"github.com/storefront-go/storefront/internal/session"
	"github.com/storefront-go/storefront/pkg/monitor"
)

// page identifies the active view.
type page int

const (
	pageLoading page = iota
	pageFetchFailed
	pageProducts
	pageCart
	pageThanks
)

// Messages produced by background commands.
type (
	productsLoadedMsg []catalog.Product
	fetchFailedMsg    struct{ err error }
	statusTickMsg     time.Time
)

const statusInterval = 5 * time.Second

// Model is the root bubbletea model.
type Model struct {
	ctx     context.Context
	session *session.Session
	source  catalog.Source
	mon     *monitor.Monitor
	styles  Styles

	spinner spinner.Model
	page    page

	products   []catalog.Product
	fetchErr   error
	cursor     int
	cartCursor int

	lastOrder checkout.Summary
	catalogUp bool

	width  int
	height int
}

// New creates the root model. The monitor may be nil, in which case the
// status line is omitted.
func New(ctx context.Context, sess *session.Session, source catalog.Source, mon *monitor.Monitor) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	return Model{
		ctx:       ctx,
		session:   sess,
		source:    source,
		mon:       mon,
		styles:    DefaultStyles(),
		spinner:   sp,
		page:      pageLoading,
		catalogUp: true,
	}
}

// Init kicks off the initial catalog fetch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.fetchCatalog()}
	if m.mon != nil {
		cmds = append(cmds, statusTick())
	}
	return tea.Batch(cmds...)
}

// fetchCatalog loads the product list off the UI loop. The cart is not
// touched until this resolves or fails.
func (m Model) fetchCatalog() tea.Cmd {
	source, ctx := m.source, m.ctx
	return func() tea.Msg {
		products, err := source.Fetch(ctx)
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return productsLoadedMsg(products)
	}
}

func statusTick() tea.Cmd {
	return tea.Tick(statusInterval, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

// Update routes messages to the active page.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case productsLoadedMsg:
		m.products = msg
		m.fetchErr = nil
		m.page = pageProducts
		return m, nil

	case fetchFailedMsg:
		m.fetchErr = msg.err
		m.page = pageFetchFailed
		return m, nil

	case statusTickMsg:
		if m.mon != nil {
			m.catalogUp = m.mon.Healthy()
		}
		return m, statusTick()

	case spinner.TickMsg:
		if m.page != pageLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key := msg.String(); key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	switch m.page {
	case pageFetchFailed:
		if msg.String() == "r" {
			m.page = pageLoading
			return m, tea.Batch(m.spinner.Tick, m.fetchCatalog())
		}
	case pageProducts:
		return m.updateProducts(msg)
	case pageCart:
		return m.updateCart(msg)
	case pageThanks:
		// Any key returns to browsing with a fresh, empty cart.
		m.session.Resume()
		m.page = pageProducts
		return m, nil
	}

	return m, nil
}

// View renders the active page plus the shared status line.
func (m Model) View() string {
	var body string
	switch m.page {
	case pageLoading:
		body = m.viewLoading()
	case pageFetchFailed:
		body = m.viewFetchFailed()
	case pageProducts:
		body = m.viewProducts()
	case pageCart:
		body = m.viewCart()
	case pageThanks:
		body = m.viewThanks()
	}
	return body + m.statusLine()
}

func (m Model) viewLoading() string {
	return m.styles.Header.Render("Storefront") + "\n" +
		m.spinner.View() + " Loading products...\n"
}

func (m Model) viewFetchFailed() string {
	return m.styles.Header.Render("Storefront") + "\n" +
		m.styles.Error.Render("Failed to fetch products") + "\n" +
		m.styles.Help.Render("r retry · q quit") + "\n"
}

func (m Model) statusLine() string {
	if m.mon == nil {
		return ""
	}
	if m.catalogUp {
		return "\n" + m.styles.StatusOK.Render("● catalog online")
	}
	return "\n" + m.styles.StatusKO.Render("● catalog offline")
}
