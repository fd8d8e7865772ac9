package handler

import (
	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/ui/dashboard"
	"github.com/imagehealth/clinic-dashboard/internal/ui/render"
	"github.com/imagehealth/clinic-dashboard/internal/ui/view"
)

var overviewStats = []statData{
	{ID: view.TextTotalPatients, Label: "Total Patients"},
	{ID: view.TextTodayAppointments, Label: "Today's Appointments"},
	{ID: view.TextEmocCases, Label: "Active EMOC Cases"},
	{ID: view.TextMonthlyRevenue, Label: "Monthly Revenue"},
}

// toPageData flattens the page model into template data. Elements hidden by
// their marker class are left out; rows hidden by search keep their place
// and carry Hidden.
func toPageData(page *view.Page, query string) dashboardPageData {
	data := dashboardPageData{
		UserInfo:     page.Text(view.TextUserInfo),
		ClinicName:   page.Text(view.TextClinicName),
		LogoutPrompt: dashboard.LogoutPrompt,
		Query:        query,
	}

	active := make(map[string]bool)
	for _, s := range page.ActiveNav() {
		active[s] = true
	}
	for _, s := range page.VisibleSections() {
		data.Nav = append(data.Nav, navItemData{
			Section: s,
			Title:   domain.Section(s).Title(),
			Active:  active[s],
		})
	}

	activePanels := make(map[string]bool)
	for _, id := range page.ActivePanels() {
		activePanels[id] = true
	}
	for _, s := range domain.Sections {
		if !page.PanelVisible(s.PanelID()) {
			continue
		}
		p := panelData{
			ID:      s.PanelID(),
			Section: string(s),
			Title:   s.Title(),
			Active:  activePanels[s.PanelID()],
			Search:  s == domain.SectionPatients,
		}
		if s == domain.SectionOverview {
			for _, st := range overviewStats {
				st.Value = page.Text(st.ID)
				p.Stats = append(p.Stats, st)
			}
		}
		if table, ok := view.SectionTables[s]; ok {
			p.Table = &tableData{
				ID:      table,
				Headers: render.Headers[table],
				Rows:    page.Rows(table),
			}
		}
		data.Panels = append(data.Panels, p)
	}
	return data
}
