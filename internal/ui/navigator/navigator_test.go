package navigator

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/ui/view"
)

func TestInit_ActivatesDefaultOnce(t *testing.T) {
	page := view.NewPage(view.DefaultLayout())
	nav := New(page, zerolog.Nop())

	nav.Init()
	assert.Equal(t, domain.SectionOverview, nav.Active())
	assert.Equal(t, []string{"overview"}, page.ActiveNav())
	assert.Equal(t, []string{"overview-section"}, page.ActivePanels())

	nav.Select(domain.SectionBilling)
	nav.Init()
	assert.Equal(t, domain.SectionBilling, nav.Active(), "second Init must not reset the selection")
}

func TestSelect_ExactlyOneActiveAfterEveryClick(t *testing.T) {
	page := view.NewPage(view.DefaultLayout())
	nav := New(page, zerolog.Nop())
	nav.Init()

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		s := domain.Sections[rng.Intn(len(domain.Sections))]
		nav.Select(s)

		require.Equal(t, []string{string(s)}, page.ActiveNav())
		require.Equal(t, []string{s.PanelID()}, page.ActivePanels())
	}
}

func TestSelect_Idempotent(t *testing.T) {
	page := view.NewPage(view.DefaultLayout())
	nav := New(page, zerolog.Nop())
	nav.Init()

	nav.Select(domain.SectionPatients)
	navBefore, panelsBefore := page.ActiveNav(), page.ActivePanels()

	nav.Select(domain.SectionPatients)
	assert.Equal(t, navBefore, page.ActiveNav())
	assert.Equal(t, panelsBefore, page.ActivePanels())
	assert.Equal(t, domain.SectionPatients, nav.Active())
}

func TestSelect_MissingPanelLogsAndLeavesNoPanelActive(t *testing.T) {
	layout := view.Layout{
		Nav:    []view.NavSpec{{Section: "overview"}, {Section: "reports"}},
		Panels: []view.PanelSpec{{ID: "overview-section"}},
	}
	page := view.NewPage(layout)

	var buf bytes.Buffer
	nav := New(page, zerolog.New(&buf))
	nav.Init()

	nav.Select("reports")
	assert.Equal(t, []string{"reports"}, page.ActiveNav())
	assert.Empty(t, page.ActivePanels())
	assert.Contains(t, buf.String(), "no panel for section")
	assert.Contains(t, buf.String(), "reports-section")
}

func TestSelect_BeforeInitCountsAsInitialised(t *testing.T) {
	page := view.NewPage(view.DefaultLayout())
	nav := New(page, zerolog.Nop())

	nav.Select(domain.SectionEmoc)
	nav.Init()
	assert.Equal(t, domain.SectionEmoc, nav.Active())
}
