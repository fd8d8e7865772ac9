package domain

// Patient is a row of the patients table.
type Patient struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Age       int    `json:"age" yaml:"age"`
	Phone     string `json:"phone" yaml:"phone"`
	LastVisit string `json:"last_visit" yaml:"last_visit"`
}

// EmocCase is an emergency obstetric care admission.
type EmocCase struct {
	ID        string `json:"id" yaml:"id"`
	Patient   string `json:"patient" yaml:"patient"`
	Type      string `json:"type" yaml:"type"`
	Status    string `json:"status" yaml:"status"`
	Admission string `json:"admission" yaml:"admission"`
}

// Bill is a billing entry. Amount is preformatted with its currency sign.
type Bill struct {
	ID      string `json:"id" yaml:"id"`
	Patient string `json:"patient" yaml:"patient"`
	Service string `json:"service" yaml:"service"`
	Amount  string `json:"amount" yaml:"amount"`
	Status  string `json:"status" yaml:"status"`
	Date    string `json:"date" yaml:"date"`
}

// StaffMember is a row of the users table.
type StaffMember struct {
	Username string `json:"username" yaml:"username"`
	FullName string `json:"full_name" yaml:"full_name"`
	Role     string `json:"role" yaml:"role"`
	Clinic   string `json:"clinic" yaml:"clinic"`
	Status   string `json:"status" yaml:"status"`
}

// ClinicSummary is a row of the clinics table.
type ClinicSummary struct {
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
	Phone    string `json:"phone" yaml:"phone"`
	Patients int    `json:"patients" yaml:"patients"`
	Staff    int    `json:"staff" yaml:"staff"`
}

// Activity is an entry of the recent activity feed.
type Activity struct {
	Time        string `json:"time" yaml:"time"`
	Description string `json:"description" yaml:"description"`
}

// Stats are the overview counters.
type Stats struct {
	TotalPatients     int    `json:"total_patients" yaml:"total_patients"`
	TodayAppointments int    `json:"today_appointments" yaml:"today_appointments"`
	EmocCases         int    `json:"emoc_cases" yaml:"emoc_cases"`
	MonthlyRevenue    string `json:"monthly_revenue" yaml:"monthly_revenue"`
}

// Dataset groups everything the dashboard displays.
type Dataset struct {
	Stats     Stats           `json:"stats" yaml:"stats"`
	Activity  []Activity      `json:"activity" yaml:"activity"`
	Patients  []Patient       `json:"patients" yaml:"patients"`
	EmocCases []EmocCase      `json:"emoc_cases" yaml:"emoc_cases"`
	Bills     []Bill          `json:"bills" yaml:"bills"`
	Staff     []StaffMember   `json:"staff" yaml:"staff"`
	Clinics   []ClinicSummary `json:"clinics" yaml:"clinics"`
}

// For returns a copy of the dataset with the tables the identity may not see
// left empty.
func (d Dataset) For(id Identity) Dataset {
	out := d
	if !id.Can(CapabilityEMOC) {
		out.EmocCases = nil
	}
	if !id.Can(CapabilityAdmin) {
		out.Staff = nil
		out.Clinics = nil
	}
	return out
}
