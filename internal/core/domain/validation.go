package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is a client-side validation failure naming the offending fields
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so messages match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags and converts failures to a ValidationError
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	msgs := make([]string, 0, len(verrs))
	var missing []string
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		msgs = append(msgs, fieldMessage(fe))
	}

	if len(missing) == 1 {
		msgs = append([]string{missing[0] + " is required"}, msgs...)
	} else if len(missing) > 1 {
		msgs = append([]string{strings.Join(missing, ", ") + " are required"}, msgs...)
	}

	return &ValidationError{Fields: fields, Message: strings.Join(msgs, "; ")}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// LoginInput is the credential pair posted to /auth/login
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate trims and checks the credentials
func (in *LoginInput) Validate() error {
	in.Email = strings.TrimSpace(in.Email)
	return validateStruct(in)
}

// RegisterUserInput creates a backend user via /auth/register
type RegisterUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	Role     Role   `json:"role" validate:"required,oneof=admin agent approver"`
}

// Validate defaults the role to agent and checks the form
func (in *RegisterUserInput) Validate() error {
	in.Email = strings.TrimSpace(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)
	if in.Role == "" {
		in.Role = RoleAgent
	}
	return validateStruct(in)
}

// CreateCustomerInput registers a customer
type CreateCustomerInput struct {
	Name    string `json:"name" validate:"required"`
	NIK     string `json:"nik" validate:"required,max=16"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}

// Validate trims and checks the form
func (in *CreateCustomerInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.NIK = strings.TrimSpace(in.NIK)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	return validateStruct(in)
}

// CreateAssignmentInput is the intake form for a new assignment.
// Identity number, full name, address, bank name, bank CIF and total
// savings must be present before anything is posted.
type CreateAssignmentInput struct {
	CustomerID ID `json:"customer_id,omitempty"`
	AgentID    ID `json:"agent_id,omitempty"`

	JenisIdentitas string `json:"jenis_identitas,omitempty"`
	NoIdentitas    string `json:"no_identitas" validate:"required"`
	NamaLengkap    string `json:"nama_lengkap" validate:"required"`
	TempatLahir    string `json:"tempat_lahir,omitempty"`
	TanggalLahir   string `json:"tanggal_lahir,omitempty"`
	JenisKelamin   string `json:"jenis_kelamin,omitempty"`
	Alamat         string `json:"alamat" validate:"required"`
	NoTelepon      string `json:"no_telepon,omitempty"`

	TotalSimpanan       Amount `json:"total_simpanan" validate:"required"`
	StatusLayakBayar    string `json:"status_layak_bayar,omitempty"`
	NominalLayakBayar   Amount `json:"nominal_layak_bayar,omitempty"`
	BatasAkhirPengajuan string `json:"batas_akhir_pengajuan,omitempty"`
	NamaBank            string `json:"nama_bank" validate:"required"`
	NoCIF               string `json:"no_cif" validate:"required"`
}

// Validate trims the required fields and checks them
func (in *CreateAssignmentInput) Validate() error {
	in.NoIdentitas = strings.TrimSpace(in.NoIdentitas)
	in.NamaLengkap = strings.TrimSpace(in.NamaLengkap)
	in.Alamat = strings.TrimSpace(in.Alamat)
	in.NamaBank = strings.TrimSpace(in.NamaBank)
	in.NoCIF = strings.TrimSpace(in.NoCIF)
	in.TotalSimpanan = Amount(strings.TrimSpace(string(in.TotalSimpanan)))
	return validateStruct(in)
}

// ApproverTaskInput creates or updates an approver task
type ApproverTaskInput struct {
	UserID      ID       `json:"user_id" validate:"required"`
	Judul       string   `json:"judul" validate:"required"`
	Deskripsi   string   `json:"deskripsi"`
	Attachments []string `json:"attachments"`
}

// Validate drops blank attachment rows and checks user and title
func (in *ApproverTaskInput) Validate() error {
	in.UserID = ID(strings.TrimSpace(string(in.UserID)))
	in.Judul = strings.TrimSpace(in.Judul)

	attachments := make([]string, 0, len(in.Attachments))
	for _, a := range in.Attachments {
		if a = strings.TrimSpace(a); a != "" {
			attachments = append(attachments, a)
		}
	}
	in.Attachments = attachments

	return validateStruct(in)
}
