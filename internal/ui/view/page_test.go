package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	require.Len(t, l.Nav, 6)
	require.Len(t, l.Panels, 6)

	assert.Equal(t, NavSpec{Section: "overview"}, l.Nav[0])
	assert.Equal(t, NavSpec{Section: "emoc", Marker: MarkerEmocOnly}, l.Nav[2])
	assert.Equal(t, PanelSpec{ID: "users-section", Marker: MarkerAdminOnly}, l.Panels[4])
}

func TestPage_MarkersStartHidden(t *testing.T) {
	p := NewPage(DefaultLayout())

	assert.Equal(t, []string{"overview", "patients", "billing"}, p.VisibleSections())
	assert.False(t, p.PanelVisible("emoc-section"))

	p.SetVisible(MarkerEmocOnly, true)
	assert.True(t, p.PanelVisible("emoc-section"))
	assert.False(t, p.PanelVisible("missing-section"))
}

func TestPage_Rows(t *testing.T) {
	p := NewPage(DefaultLayout())
	p.RenderRows(TablePatients, []Row{{Key: "P001"}, {Key: "P002"}})

	p.SetRowVisible(TablePatients, 1, false)
	p.SetRowVisible(TablePatients, 7, false)

	require.Len(t, p.Rows(TablePatients), 2)
	assert.Equal(t, []Row{{Key: "P001"}}, p.VisibleRows(TablePatients))
}

func TestRow_Text(t *testing.T) {
	r := Row{
		Cells:   []Cell{{Text: "P001"}, {Text: "Sarah Ahmed"}},
		Actions: []string{"View", "Edit"},
	}
	assert.Equal(t, "P001 Sarah Ahmed View Edit", r.Text())
}

func TestLoginPage_Defaults(t *testing.T) {
	st := NewLoginPage().State()
	assert.True(t, st.SubmitEnabled)
	assert.Equal(t, LabelSignIn, st.Label)
	assert.False(t, st.ErrorVisible)
}
