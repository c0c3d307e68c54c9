package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ID is a backend identifier. The LPS backend is inconsistent and sends
// numbers on some resources and strings on others, so both decode here.
type ID string

// UnmarshalJSON accepts a JSON string, number or null
func (id *ID) UnmarshalJSON(b []byte) error {
	s, err := decodeFlexString(b)
	if err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = ID(s)
	return nil
}

// String returns the id as a string
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id is absent
func (id ID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// Amount is a monetary value as entered on the intake form. The backend
// may echo it back as a number or as a string.
type Amount string

// UnmarshalJSON accepts a JSON string, number or null
func (a *Amount) UnmarshalJSON(b []byte) error {
	s, err := decodeFlexString(b)
	if err != nil {
		return fmt.Errorf("decode amount: %w", err)
	}
	*a = Amount(s)
	return nil
}

func decodeFlexString(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return "", nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// Role represents a user role on the LPS backend
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAgent    Role = "agent"
	RoleApprover Role = "approver"
)

// Valid reports whether the role is one the backend accepts
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleApprover:
		return true
	}
	return false
}

// User represents a backend user (admin, agent or approver)
type User struct {
	ID        ID     `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name,omitempty"`
	Name      string `json:"name,omitempty"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// DisplayName returns full_name, then name, then email
func (u User) DisplayName() string {
	switch {
	case u.FullName != "":
		return u.FullName
	case u.Name != "":
		return u.Name
	default:
		return u.Email
	}
}

// Customer represents a registered customer
type Customer struct {
	ID         ID     `json:"id,omitempty"`
	CustomerID ID     `json:"customer_id,omitempty"`
	Name       string `json:"name,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	NIK        string `json:"nik"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// Key returns whichever primary id field the backend populated
func (c Customer) Key() ID {
	if !c.ID.IsZero() {
		return c.ID
	}
	return c.CustomerID
}

// DisplayName returns name, falling back to full_name
func (c Customer) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.FullName
}

// Assignment is a customer payout case with intake data and a review status
type Assignment struct {
	ID         ID               `json:"id"`
	CustomerID ID               `json:"customer_id,omitempty"`
	AgentID    ID               `json:"agent_id,omitempty"`
	Status     AssignmentStatus `json:"status"`
	ReviewNote string           `json:"review_note,omitempty"`
	CreatedAt  string           `json:"created_at,omitempty"`
	UpdatedAt  string           `json:"updated_at,omitempty"`

	// Identity
	JenisIdentitas string `json:"jenis_identitas,omitempty"`
	NoIdentitas    string `json:"no_identitas,omitempty"`
	NamaLengkap    string `json:"nama_lengkap,omitempty"`
	TempatLahir    string `json:"tempat_lahir,omitempty"`
	TanggalLahir   string `json:"tanggal_lahir,omitempty"`
	JenisKelamin   string `json:"jenis_kelamin,omitempty"`
	Alamat         string `json:"alamat,omitempty"`
	NoTelepon      string `json:"no_telepon,omitempty"`

	// Financial / bank
	TotalSimpanan       Amount `json:"total_simpanan,omitempty"`
	StatusLayakBayar    string `json:"status_layak_bayar,omitempty"`
	NominalLayakBayar   Amount `json:"nominal_layak_bayar,omitempty"`
	BatasAkhirPengajuan string `json:"batas_akhir_pengajuan,omitempty"`
	NamaBank            string `json:"nama_bank,omitempty"`
	NoCIF               string `json:"no_cif,omitempty"`
}

// ApproverTask is a generic assignable task with file links
type ApproverTask struct {
	ID          ID       `json:"id"`
	UserID      ID       `json:"user_id"`
	Judul       string   `json:"judul"`
	Deskripsi   string   `json:"deskripsi,omitempty"`
	Attachments []string `json:"attachments"`
	CreatedBy   ID       `json:"created_by,omitempty"`
	AdminID     ID       `json:"admin_id,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

// SessionUser is the cached profile of the signed-in staff member
type SessionUser struct {
	ID       ID     `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// Session is the authenticated client state: upstream bearer token plus profile
type Session struct {
	ID        string
	Token     string
	User      SessionUser
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewSessionUser builds the cached profile from a backend user.
// Username is the local part of the email.
func NewSessionUser(u User) SessionUser {
	return SessionUser{
		ID:       u.ID,
		Email:    u.Email,
		Username: UsernameFromEmail(u.Email),
		Name:     u.FullName,
		Role:     u.Role,
	}
}

// UsernameFromEmail returns the part of the email before '@'
func UsernameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}

// FormatDate renders a backend timestamp as dd/mm/yyyy hh:mm.
// Empty input renders "-"; unparseable input is returned unchanged.
func FormatDate(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006 15:04")
		}
	}
	return s
}
