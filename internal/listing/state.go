package listing

import (
	"strings"

	"github.com/umalmyha/clientes/internal/model"
)

// User facing messages
const (
	CreatedMessage       = "Cliente creado correctamente"
	UpdatedMessage       = "Cliente actualizado correctamente"
	DeletedMessage       = "Cliente eliminado correctamente"
	FormErrorsMessage    = "Por favor corrija los errores en el formulario"
	ConfirmDeleteMessage = "¿Está seguro de eliminar este cliente?"
)

// SortOrder is direction of displayed view
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Field names cliente attribute which can be edited or sorted by
type Field string

const (
	FieldRUC         Field = "ruc"
	FieldRazonSocial Field = "razonSocial"
	FieldTelefono    Field = "telefono"
	FieldCorreo      Field = "correo"
	FieldDireccion   Field = "direccion"
)

// Fields lists form fields in display order
var Fields = []Field{FieldRUC, FieldRazonSocial, FieldTelefono, FieldCorreo, FieldDireccion}

// ParseField matches s against known fields ignoring case
func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if strings.EqualFold(string(f), s) {
			return f, true
		}
	}
	return "", false
}

func fieldValue(c *model.Cliente, f Field) string {
	switch f {
	case FieldRUC:
		return c.RUC
	case FieldRazonSocial:
		return c.RazonSocial
	case FieldTelefono:
		return c.Telefono
	case FieldCorreo:
		return c.Correo
	case FieldDireccion:
		return c.Direccion
	}
	return ""
}

// Form holds entered values, OriginalRUC is set while editing
type Form struct {
	RUC         string
	RazonSocial string
	Telefono    string
	Correo      string
	Direccion   string
	OriginalRUC string
}

func (f Form) Get(field Field) string {
	return fieldValue(f.Cliente(), field)
}

// With returns copy of form with field set to value
func (f Form) With(field Field, value string) Form {
	switch field {
	case FieldRUC:
		f.RUC = value
	case FieldRazonSocial:
		f.RazonSocial = value
	case FieldTelefono:
		f.Telefono = value
	case FieldCorreo:
		f.Correo = value
	case FieldDireccion:
		f.Direccion = value
	}
	return f
}

// Cliente converts form into record to submit
func (f Form) Cliente() *model.Cliente {
	return &model.Cliente{
		RUC:         f.RUC,
		RazonSocial: f.RazonSocial,
		Telefono:    f.Telefono,
		Correo:      f.Correo,
		Direccion:   f.Direccion,
	}
}

func formFrom(c *model.Cliente) Form {
	return Form{
		RUC:         c.RUC,
		RazonSocial: c.RazonSocial,
		Telefono:    c.Telefono,
		Correo:      c.Correo,
		Direccion:   c.Direccion,
		OriginalRUC: c.RUC,
	}
}

// FieldErrors flags invalid form fields
type FieldErrors struct {
	RUC         bool
	RazonSocial bool
	Telefono    bool
	Correo      bool
	Direccion   bool
}

func (e FieldErrors) Get(field Field) bool {
	switch field {
	case FieldRUC:
		return e.RUC
	case FieldRazonSocial:
		return e.RazonSocial
	case FieldTelefono:
		return e.Telefono
	case FieldCorreo:
		return e.Correo
	case FieldDireccion:
		return e.Direccion
	}
	return false
}

func (e FieldErrors) with(field Field, invalid bool) FieldErrors {
	switch field {
	case FieldRUC:
		e.RUC = invalid
	case FieldRazonSocial:
		e.RazonSocial = invalid
	case FieldTelefono:
		e.Telefono = invalid
	case FieldCorreo:
		e.Correo = invalid
	case FieldDireccion:
		e.Direccion = invalid
	}
	return e
}

// Any reports whether submission must be blocked
func (e FieldErrors) Any() bool {
	return e.RUC || e.RazonSocial || e.Telefono || e.Correo || e.Direccion
}

// State is list screen state, transitions never mutate it in place
type State struct {
	Records        []*model.Cliente
	SearchTerm     string
	SortField      Field
	SortOrder      SortOrder
	Form           Form
	FieldErrors    FieldErrors
	FormOpen       bool
	IsEditing      bool
	Loading        bool
	Saving         bool
	SuccessMessage string
	ErrorMessage   string
	FormError      string
	Selected       *model.Cliente
}

// Initial is state of freshly opened screen
func Initial() State {
	return State{SortOrder: Asc}
}

// Displayed derives filtered and sorted view of records
func (s State) Displayed() []*model.Cliente {
	return View(s.Records, s.SearchTerm, s.SortField, s.SortOrder)
}

// Find looks up loaded record by RUC
func (s State) Find(ruc string) *model.Cliente {
	for _, c := range s.Records {
		if c.RUC == ruc {
			return c
		}
	}
	return nil
}

func LoadStarted(s State) State {
	s.Loading = true
	s.ErrorMessage = ""
	return s
}

func LoadSucceeded(s State, records []*model.Cliente) State {
	s.Records = records
	s.Loading = false
	return s
}

// LoadFailed keeps previously loaded records
func LoadFailed(s State, msg string) State {
	s.Loading = false
	s.ErrorMessage = msg
	return s
}

// CommitSearch sets search term, changed is false when term is the same
func CommitSearch(s State, term string) (next State, changed bool) {
	if s.SearchTerm == term {
		return s, false
	}
	s.SearchTerm = term
	return s, true
}

func ClearSearch(s State) State {
	s.SearchTerm = ""
	return s
}

// SortBy changes sort field keeping order, empty field means unsorted
func SortBy(s State, field Field) State {
	s.SortField = field
	return s
}

func ToggleOrder(s State) State {
	if s.SortOrder == Desc {
		s.SortOrder = Asc
	} else {
		s.SortOrder = Desc
	}
	return s
}

func clearMessages(s State) State {
	s.FormError = ""
	s.ErrorMessage = ""
	s.SuccessMessage = ""
	return s
}

func BeginCreate(s State) State {
	s = clearMessages(s)
	s.Form = Form{}
	s.FieldErrors = FieldErrors{}
	s.IsEditing = false
	s.FormOpen = true
	return s
}

func BeginEdit(s State, c *model.Cliente) State {
	s = clearMessages(s)
	s.Form = formFrom(c)
	s.FieldErrors = FieldErrors{}
	s.IsEditing = true
	s.FormOpen = true
	return s
}

// CancelForm closes form dropping entered values
func CancelForm(s State) State {
	s.Form = Form{}
	s.FieldErrors = FieldErrors{}
	s.FormError = ""
	s.FormOpen = false
	s.IsEditing = false
	return s
}

func ShowDetails(s State, c *model.Cliente) State {
	s.Selected = c
	return s
}

func CloseDetails(s State) State {
	s.Selected = nil
	return s
}

// EditFromDetails closes detail view and opens form for shown record
func EditFromDetails(s State) State {
	if s.Selected == nil {
		return s
	}
	selected := s.Selected
	return BeginEdit(CloseDetails(s), selected)
}

// SetField updates single form field and validates only it
func SetField(s State, field Field, value string) State {
	s.Form = s.Form.With(field, value)
	s.FieldErrors = s.FieldErrors.with(field, FieldInvalid(field, value))
	return s
}

// SubmitStarted validates whole form, ok is false when submission is blocked
func SubmitStarted(s State) (next State, ok bool) {
	s.FormError = ""
	s.FieldErrors = ValidateForm(s.Form)
	if s.FieldErrors.Any() {
		s.FormError = FormErrorsMessage
		return s, false
	}
	s.Saving = true
	return s, true
}

func SaveSucceeded(s State) State {
	msg := CreatedMessage
	if s.IsEditing {
		msg = UpdatedMessage
	}

	s = CancelForm(s)
	s.Saving = false
	s.SuccessMessage = msg
	return s
}

// SaveFailed keeps form open with entered values
func SaveFailed(s State, msg string) State {
	s.Saving = false
	s.FormError = msg
	return s
}

func DeleteStarted(s State) State {
	s.ErrorMessage = ""
	return s
}

func DeleteSucceeded(s State) State {
	s.SuccessMessage = DeletedMessage
	return s
}

func DeleteFailed(s State, msg string) State {
	s.ErrorMessage = msg
	return s
}

func ExpireMessage(s State) State {
	s.SuccessMessage = ""
	return s
}
