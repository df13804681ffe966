package domain

// StaffMember сотрудник салона
type StaffMember struct {
	ID          int64
	Name        string
	Role        string
	Headshot    string
	Description string
}
