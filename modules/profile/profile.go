package profile

import (
	"math"
	"strconv"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formvalue"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Sex is stored as a number and edited as its decimal text.
type Sex int

const (
	Male Sex = iota
	Female
)

func (s Sex) String() string {
	return strconv.Itoa(int(s))
}

// CivilStatuses are the options of the civil status select. The empty
// option means "don't know" and fails validation.
var CivilStatuses = []string{"", "single", "married", "divorced", "widowed"}

// Data is the plain profile record handed to the save callback.
type Data struct {
	Name        string `json:"name" yaml:"name"`
	Email       string `json:"email" yaml:"email"`
	Sex         Sex    `json:"sex" yaml:"sex"`
	CivilStatus string `json:"civilStatus" yaml:"civilStatus"`
	AllowPhone  bool   `json:"allowPhone" yaml:"allowPhone"`
	Phone       string `json:"phone" yaml:"phone"`
	Password    string `json:"password" yaml:"password"`
}

// Field names used in error reports and for field lookup.
const (
	FieldName           = "name"
	FieldEmail          = "email"
	FieldSex            = "sex"
	FieldCivilStatus    = "civilStatus"
	FieldAllowPhone     = "allowPhone"
	FieldPhone          = "phone"
	FieldPassword       = "password"
	FieldRepeatPassword = "repeatPassword"
)

// Values holds one form value per profile field.
type Values struct {
	Name        *formvalue.Value[string] `yaml:"name"`
	Email       *formvalue.Value[string] `yaml:"email"`
	Sex         *formvalue.Value[string] `yaml:"sex"`
	CivilStatus *formvalue.Value[string] `yaml:"civilStatus"`
	AllowPhone  *formvalue.Value[bool]   `yaml:"allowPhone"`
	Phone       *formvalue.Value[string] `yaml:"phone"`
	Password    *formvalue.Value[string] `yaml:"password"`
}

// PageData is the root record of the profile page.
type PageData struct {
	Profile        Values                   `yaml:"profile"`
	RepeatPassword *formvalue.Value[string] `yaml:"repeatPassword"`
	Message        string                   `yaml:"message"`
	Readonly       bool                     `yaml:"readonly"`
	Invalid        bool                     `yaml:"invalid"`
	Policy         form.Policy              `yaml:"-"`
}

// NewPageData builds the page from a stored profile; nil yields empty fields.
// Hydrated values start untouched and unvalidated.
func NewPageData(initial *Data) *PageData {
	p := &PageData{
		Profile: Values{
			Name:        formvalue.String(""),
			Email:       formvalue.String(""),
			Sex:         formvalue.String(""),
			CivilStatus: formvalue.String(""),
			AllowPhone:  formvalue.Bool(false),
			Phone:       formvalue.String(""),
			Password:    formvalue.String(""),
		},
		RepeatPassword: formvalue.String(""),
	}
	if initial == nil {
		return p
	}

	p.Profile.Name.Value = initial.Name
	p.Profile.Email.Value = initial.Email
	p.Profile.Sex.Value = initial.Sex.String()
	p.Profile.CivilStatus.Value = initial.CivilStatus
	p.Profile.AllowPhone.Value = initial.AllowPhone
	p.Profile.Phone.Value = initial.Phone
	p.Profile.Password.Value = initial.Password
	return p
}

var (
	validateName = validator.Compose(
		validator.Required("Please enter a name"),
		validator.MinLength(4)("Please enter a name with min 4 characters"),
		validator.MaxLength(14)("Please enter a name with max 14 characters"),
	)
	validateEmail = validator.Compose(
		validator.Required("Please enter an e-mail"),
		validator.Email("Please enter a valid e-mail"),
	)
	validatePhoneNumber = validator.Compose(
		validator.Required("Please enter a phone number"),
		validator.MinLength(4)("Please enter a phone number with min 4 characters"),
		validator.MaxLength(14)("Please enter a phone number with max 14 characters"),
	)
	validatePassword = validator.Compose(
		validator.Required("Please enter a password"),
		validator.MinLength(4)("Please enter a password with min 4 characters"),
		validator.MaxLength(14)("Please enter a password with max 14 characters"),
	)
	validateCivilStatus = validator.Required("Please enter your civil status")
)

func validatePhone(allowPhone bool) validator.Validator {
	return validator.When(allowPhone, validatePhoneNumber)
}

func validateRepeatPassword(password string) validator.Validator {
	return validator.Equals(password)("Passwords must match")
}

// Validate recomputes every field error and the aggregate Invalid flag.
func Validate(p *PageData) {
	formvalue.Validate(p.Profile.Name, validateName)
	formvalue.Validate(p.Profile.Email, validateEmail)
	formvalue.Validate(p.Profile.CivilStatus, validateCivilStatus)
	formvalue.Validate(p.Profile.Phone, validatePhone(p.Profile.AllowPhone.Value))
	formvalue.Validate(p.Profile.Password, validatePassword)
	formvalue.Validate(p.RepeatPassword, validateRepeatPassword(p.Profile.Password.Value))

	p.Invalid = p.Fields().Invalid(p.Policy)
}

// Fields lists the validated leaves in display order.
func (p *PageData) Fields() form.Fields {
	return form.Fields{
		{Name: FieldName, Field: p.Profile.Name},
		{Name: FieldEmail, Field: p.Profile.Email},
		{Name: FieldCivilStatus, Field: p.Profile.CivilStatus},
		{Name: FieldPhone, Field: p.Profile.Phone},
		{Name: FieldPassword, Field: p.Profile.Password},
		{Name: FieldRepeatPassword, Field: p.RepeatPassword},
	}
}

// Record reads the plain profile back off the form values.
func (p *PageData) Record() Data {
	return Data{
		Name:        p.Profile.Name.Value,
		Email:       p.Profile.Email.Value,
		Sex:         sexFromText(p.Profile.Sex.Value),
		CivilStatus: p.Profile.CivilStatus.Value,
		AllowPhone:  p.Profile.AllowPhone.Value,
		Phone:       p.Profile.Phone.Value,
		Password:    p.Profile.Password.Value,
	}
}

func sexFromText(s string) Sex {
	n := validator.ToNumber(s)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Male
	}
	return Sex(n)
}

// Text returns the text field called name.
func (p *PageData) Text(name string) (*formvalue.Value[string], bool) {
	fields := map[string]*formvalue.Value[string]{
		FieldName:           p.Profile.Name,
		FieldEmail:          p.Profile.Email,
		FieldSex:            p.Profile.Sex,
		FieldCivilStatus:    p.Profile.CivilStatus,
		FieldPhone:          p.Profile.Phone,
		FieldPassword:       p.Profile.Password,
		FieldRepeatPassword: p.RepeatPassword,
	}
	fv, ok := fields[name]
	return fv, ok
}

// Check returns the checkbox called name.
func (p *PageData) Check(name string) (*formvalue.Value[bool], bool) {
	if name == FieldAllowPhone {
		return p.Profile.AllowPhone, true
	}
	return nil, false
}
