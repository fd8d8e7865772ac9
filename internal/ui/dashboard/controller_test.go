package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/core/service"
	"github.com/imagehealth/clinic-dashboard/internal/infrastructure/fixtures"
	"github.com/imagehealth/clinic-dashboard/internal/ui/event"
	"github.com/imagehealth/clinic-dashboard/internal/ui/session"
	"github.com/imagehealth/clinic-dashboard/internal/ui/view"
)

var (
	admin     = domain.Identity{Username: "admin", FullName: "System Administrator", Role: domain.RoleAdmin, ClinicName: domain.AllClinics, HasEmoc: true}
	counselor = domain.Identity{Username: "counselor_cl1", FullName: "Nasirabad Counselor", Role: domain.RoleCounselor, ClinicName: "Nasirabad Clinic"}
)

type harness struct {
	page     *view.Page
	bus      *event.Bus
	ctrl     *Controller
	provider *session.StaticProvider
}

func setup(t *testing.T, id *domain.Identity, confirm Confirmer) *harness {
	t.Helper()
	repo, err := fixtures.NewRepository()
	require.NoError(t, err)

	h := &harness{
		page:     view.NewPage(view.DefaultLayout()),
		bus:      event.NewBus(),
		provider: &session.StaticProvider{ID: id},
	}
	sc := session.NewContext(h.provider, zerolog.Nop())
	h.ctrl = New(sc, h.page, service.NewDashboardService(repo, zerolog.Nop()), confirm, zerolog.Nop())
	h.ctrl.Attach(h.bus)
	return h
}

func (h *harness) dispatch(t *testing.T, kind event.Kind, target, value string) {
	t.Helper()
	require.NoError(t, h.bus.Dispatch(context.Background(), &event.Event{Kind: kind, Target: target, Value: value}))
}

func visibleKeys(rows []view.Row) []string {
	var out []string
	for _, r := range rows {
		out = append(out, r.Key)
	}
	return out
}

func TestLoad_NoIdentityRedirectsAndStops(t *testing.T) {
	h := setup(t, nil, nil)
	h.dispatch(t, event.Load, "", "")

	assert.Equal(t, view.RouteLogin, h.page.Location())
	assert.Empty(t, h.page.ActivePanels())
	assert.Empty(t, h.page.Rows(view.TablePatients))

	h.dispatch(t, event.Click, view.TargetNav, "patients")
	assert.Empty(t, h.page.ActiveNav(), "clicks are ignored without an identity")
}

func TestLoad_PopulatesPage(t *testing.T) {
	id := admin
	h := setup(t, &id, nil)
	h.dispatch(t, event.Load, "", "")

	assert.Equal(t, "System Administrator (admin)", h.page.Text(view.TextUserInfo))
	assert.Equal(t, "All Clinics", h.page.Text(view.TextClinicName))
	assert.Equal(t, "156", h.page.Text(view.TextTotalPatients))
	assert.Equal(t, "12", h.page.Text(view.TextTodayAppointments))
	assert.Equal(t, "3", h.page.Text(view.TextEmocCases))
	assert.Equal(t, "৳125,000", h.page.Text(view.TextMonthlyRevenue))

	assert.Equal(t, []string{"overview"}, h.page.ActiveNav())
	assert.Equal(t, []string{"overview-section"}, h.page.ActivePanels())
	assert.Len(t, h.page.Rows(view.TableActivity), 5)
	assert.Len(t, h.page.Rows(view.TableUsers), 3)
	assert.Len(t, h.page.Rows(view.TableClinics), 2)

	got, ok := h.ctrl.Identity()
	require.True(t, ok)
	assert.Equal(t, admin, got)
}

func TestLoad_OnlyOnce(t *testing.T) {
	id := admin
	h := setup(t, &id, nil)
	h.dispatch(t, event.Load, "", "")
	h.dispatch(t, event.Click, view.TargetNav, "billing")
	h.dispatch(t, event.Load, "", "")

	assert.Equal(t, domain.SectionBilling, h.ctrl.Active())
}

func TestCounselor_NeverSeesEmoc(t *testing.T) {
	id := counselor
	h := setup(t, &id, nil)
	h.dispatch(t, event.Load, "", "")

	assert.False(t, h.page.MarkerVisible(view.MarkerEmocOnly))
	assert.False(t, h.page.MarkerVisible(view.MarkerAdminOnly))
	assert.Empty(t, h.page.Rows(view.TableEmoc))
	assert.Empty(t, h.page.Rows(view.TableUsers))

	for _, s := range domain.Sections {
		h.dispatch(t, event.Click, view.TargetNav, string(s))
		assert.False(t, h.page.MarkerVisible(view.MarkerEmocOnly))
		assert.NotEqual(t, domain.SectionEmoc, h.ctrl.Active())
	}
	assert.Equal(t, domain.SectionBilling, h.ctrl.Active(), "billing is the last section the counselor may open")
}

func TestNav_ExactlyOneActive(t *testing.T) {
	id := admin
	h := setup(t, &id, nil)
	h.dispatch(t, event.Load, "", "")

	clicks := []string{"patients", "emoc", "emoc", "users", "overview", "clinics", "billing"}
	for _, s := range clicks {
		h.dispatch(t, event.Click, view.TargetNav, s)
		require.Equal(t, []string{s}, h.page.ActiveNav())
		require.Equal(t, []string{s + "-section"}, h.page.ActivePanels())
	}
}

func TestPatientSearch(t *testing.T) {
	id := counselor
	h := setup(t, &id, nil)
	h.dispatch(t, event.Load, "", "")

	h.dispatch(t, event.Input, view.TargetPatientSearch, "Sarah")
	if diff := cmp.Diff([]string{"P001"}, visibleKeys(h.page.VisibleRows(view.TablePatients))); diff != "" {
		t.Fatalf("filtered rows mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, h.page.Rows(view.TablePatients), 3, "non-matching rows are hidden, not removed")

	h.dispatch(t, event.Input, view.TargetPatientSearch, "")
	if diff := cmp.Diff([]string{"P001", "P002", "P003"}, visibleKeys(h.page.VisibleRows(view.TablePatients))); diff != "" {
		t.Fatalf("cleared search mismatch (-want +got):\n%s", diff)
	}
}

func TestLogout(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		id := admin
		var asked string
		h := setup(t, &id, ConfirmFunc(func(p string) bool { asked = p; return true }))
		h.dispatch(t, event.Load, "", "")
		h.dispatch(t, event.Click, view.TargetLogout, "")

		assert.Equal(t, LogoutPrompt, asked)
		assert.True(t, h.provider.Cleared)
		assert.Equal(t, view.RouteLogout, h.page.Location())
		_, ok := h.ctrl.Identity()
		assert.False(t, ok)
	})

	t.Run("declined", func(t *testing.T) {
		id := admin
		h := setup(t, &id, ConfirmFunc(func(string) bool { return false }))
		h.dispatch(t, event.Load, "", "")
		h.dispatch(t, event.Click, view.TargetLogout, "")

		assert.False(t, h.provider.Cleared)
		assert.Empty(t, h.page.Location())
	})
}

type failingSource struct{}

func (failingSource) Dataset(context.Context, domain.Identity) (*domain.Dataset, error) {
	return nil, errors.New("api unavailable")
}

func TestLoad_DataErrorKeepsNavigation(t *testing.T) {
	id := admin
	page := view.NewPage(view.DefaultLayout())
	bus := event.NewBus()
	ctrl := New(session.NewContext(&session.StaticProvider{ID: &id}, zerolog.Nop()), page, failingSource{}, nil, zerolog.Nop())
	ctrl.Attach(bus)

	err := bus.Dispatch(context.Background(), &event.Event{Kind: event.Load})
	require.Error(t, err)
	assert.Equal(t, []string{"overview-section"}, page.ActivePanels())
	assert.Equal(t, "System Administrator (admin)", page.Text(view.TextUserInfo))
}
