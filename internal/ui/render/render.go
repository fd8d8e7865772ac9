// Package render maps dashboard records to table rows. Every function is
// pure: one row per record, in input order.
package render

import (
	"strconv"
	"strings"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/ui/view"
)

// Headers are the column titles of each table. The trailing "Actions"
// column holds the row buttons.
var Headers = map[string][]string{
	view.TableActivity: {"Time", "Activity"},
	view.TablePatients: {"ID", "Name", "Age", "Phone", "Last Visit", "Actions"},
	view.TableEmoc:     {"Case ID", "Patient", "Type", "Status", "Admission", "Actions"},
	view.TableBilling:  {"Bill ID", "Patient", "Service", "Amount", "Status", "Date", "Actions"},
	view.TableUsers:    {"Username", "Full Name", "Role", "Clinic", "Status", "Actions"},
	view.TableClinics:  {"Name", "Location", "Phone", "Patients", "Staff", "Actions"},
}

func text(s string) view.Cell {
	return view.Cell{Text: s}
}

// status renders a status badge; the class carries the lower-cased status.
func status(s string) view.Cell {
	return view.Cell{Text: s, Class: "status " + strings.ToLower(s)}
}

func Activity(items []domain.Activity) []view.Row {
	rows := make([]view.Row, len(items))
	for i, a := range items {
		rows[i] = view.Row{
			Key: strconv.Itoa(i),
			Cells: []view.Cell{
				{Text: a.Time, Class: "activity-time"},
				{Text: a.Description, Class: "activity-desc"},
			},
		}
	}
	return rows
}

func Patients(items []domain.Patient) []view.Row {
	rows := make([]view.Row, len(items))
	for i, p := range items {
		rows[i] = view.Row{
			Key:     p.ID,
			Cells:   []view.Cell{text(p.ID), text(p.Name), text(strconv.Itoa(p.Age)), text(p.Phone), text(p.LastVisit)},
			Actions: []string{"View", "Edit"},
		}
	}
	return rows
}

func EmocCases(items []domain.EmocCase) []view.Row {
	rows := make([]view.Row, len(items))
	for i, c := range items {
		rows[i] = view.Row{
			Key:     c.ID,
			Cells:   []view.Cell{text(c.ID), text(c.Patient), text(c.Type), status(c.Status), text(c.Admission)},
			Actions: []string{"View", "Update"},
		}
	}
	return rows
}

func Bills(items []domain.Bill) []view.Row {
	rows := make([]view.Row, len(items))
	for i, b := range items {
		rows[i] = view.Row{
			Key:     b.ID,
			Cells:   []view.Cell{text(b.ID), text(b.Patient), text(b.Service), text(b.Amount), status(b.Status), text(b.Date)},
			Actions: []string{"View", "Print"},
		}
	}
	return rows
}

func Staff(items []domain.StaffMember) []view.Row {
	rows := make([]view.Row, len(items))
	for i, u := range items {
		rows[i] = view.Row{
			Key:     u.Username,
			Cells:   []view.Cell{text(u.Username), text(u.FullName), text(u.Role), text(u.Clinic), status(u.Status)},
			Actions: []string{"Edit", "Disable"},
		}
	}
	return rows
}

func Clinics(items []domain.ClinicSummary) []view.Row {
	rows := make([]view.Row, len(items))
	for i, c := range items {
		rows[i] = view.Row{
			Key:     c.Name,
			Cells:   []view.Cell{text(c.Name), text(c.Location), text(c.Phone), text(strconv.Itoa(c.Patients)), text(strconv.Itoa(c.Staff))},
			Actions: []string{"View", "Edit"},
		}
	}
	return rows
}

// Matches reports whether the rendered text of row contains query, ignoring
// case. The empty query matches every row.
func Matches(row view.Row, query string) bool {
	return strings.Contains(strings.ToLower(row.Text()), strings.ToLower(query))
}

// Filter returns a copy of rows with Hidden set on every row that does not
// match query. No row is removed.
func Filter(rows []view.Row, query string) []view.Row {
	out := make([]view.Row, len(rows))
	for i, r := range rows {
		r.Hidden = !Matches(r, query)
		out[i] = r
	}
	return out
}
