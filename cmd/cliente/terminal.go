package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/umalmyha/clientes/internal/listing"
	"github.com/umalmyha/clientes/internal/model"
)

const helpText = `Comandos:
  list                  muestra clientes
  search <texto>        filtra por RUC o razón social, sin texto limpia el filtro
  sort [campo]          ordena por ruc, razonSocial, telefono, correo o direccion
  order                 invierte el orden
  new                   nuevo cliente
  edit [ruc]            edita cliente, sin RUC edita el cliente mostrado
  set <campo> <valor>   cambia campo del formulario
  form                  muestra formulario
  save                  guarda formulario
  cancel                descarta formulario
  show <ruc>            muestra detalle del cliente
  close                 cierra detalle
  delete [ruc]          elimina cliente, sin RUC elimina el cliente mostrado
  refresh               limpia búsqueda y recarga
  quit                  salir`

var fieldLabels = map[listing.Field]string{
	listing.FieldRUC:         "RUC",
	listing.FieldRazonSocial: "Razón social",
	listing.FieldTelefono:    "Teléfono",
	listing.FieldCorreo:      "Correo",
	listing.FieldDireccion:   "Dirección",
}

type terminal struct {
	ctrl *listing.Controller
	in   *bufio.Scanner

	mu       sync.Mutex
	out      io.Writer
	lastTerm string
}

func newTerminal(in io.Reader, out io.Writer) *terminal {
	return &terminal{in: bufio.NewScanner(in), out: out}
}

func (t *terminal) printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, format, args...)
}

// confirm runs on command loop goroutine so it may read input
func (t *terminal) confirm(question string) bool {
	t.printf("%s (s/n): ", question)
	if !t.in.Scan() {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(t.in.Text()))
	return answer == "s" || answer == "si" || answer == "sí" || answer == "y"
}

// onChange renders list when debounced search term is committed
func (t *terminal) onChange(s listing.State) {
	t.mu.Lock()
	changed := s.SearchTerm != t.lastTerm
	t.lastTerm = s.SearchTerm
	t.mu.Unlock()

	if changed {
		t.renderList(s)
	}
}

func (t *terminal) run() error {
	t.printf("Cargando clientes...\n")
	t.ctrl.Load()
	t.renderList(t.ctrl.State())
	t.printf("Escriba help para ver los comandos.\n")

	for {
		t.printf("> ")
		if !t.in.Scan() {
			return t.in.Err()
		}

		if quit := t.exec(t.in.Text()); quit {
			return nil
		}
	}
}

func (t *terminal) exec(line string) bool {
	cmd, arg := splitCommand(line)

	switch cmd {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help":
		t.printf("%s\n", helpText)
	case "list":
		t.renderList(t.ctrl.State())
	case "search":
		t.ctrl.Type(arg)
	case "sort":
		t.sort(arg)
	case "order":
		t.ctrl.ToggleOrder()
		t.renderList(t.ctrl.State())
	case "new":
		t.ctrl.BeginCreate()
		t.renderForm(t.ctrl.State())
	case "edit":
		t.edit(arg)
	case "set":
		t.set(arg)
	case "form":
		t.renderForm(t.ctrl.State())
	case "save":
		t.save()
	case "cancel":
		t.ctrl.CancelForm()
	case "show":
		t.show(arg)
	case "close":
		t.ctrl.CloseDetails()
	case "delete":
		t.delete(arg)
	case "refresh":
		t.mu.Lock()
		t.lastTerm = ""
		t.mu.Unlock()

		t.printf("Cargando clientes...\n")
		t.ctrl.Refresh()
		t.renderList(t.ctrl.State())
	default:
		t.printf("Comando desconocido %q, escriba help para ver los comandos.\n", cmd)
	}
	return false
}

func (t *terminal) sort(arg string) {
	if arg == "" {
		t.ctrl.SortBy("")
		t.renderList(t.ctrl.State())
		return
	}

	field, ok := listing.ParseField(arg)
	if !ok {
		t.printf("Campo desconocido %q\n", arg)
		return
	}
	t.ctrl.SortBy(field)
	t.renderList(t.ctrl.State())
}

func (t *terminal) edit(ruc string) {
	if ruc == "" {
		if t.ctrl.State().Selected == nil {
			t.printf("Indique el RUC del cliente a editar\n")
			return
		}
		t.ctrl.EditFromDetails()
	} else if !t.ctrl.BeginEdit(ruc) {
		t.printf("Cliente no encontrado.\n")
		return
	}
	t.renderForm(t.ctrl.State())
}

func (t *terminal) set(arg string) {
	name, value := splitCommand(arg)
	field, ok := listing.ParseField(name)
	if !ok {
		t.printf("Campo desconocido %q\n", name)
		return
	}

	if !t.ctrl.State().FormOpen {
		t.printf("No hay formulario abierto, use new o edit\n")
		return
	}

	t.ctrl.SetField(field, value)
	if msg := listing.FieldMessage(field, value); msg != "" {
		t.printf("%s\n", msg)
	}
}

func (t *terminal) save() {
	if !t.ctrl.State().FormOpen {
		t.printf("No hay formulario abierto, use new o edit\n")
		return
	}

	if t.ctrl.Save() {
		s := t.ctrl.State()
		t.printf("%s\n", s.SuccessMessage)
		t.renderList(s)
		return
	}
	t.renderForm(t.ctrl.State())
}

func (t *terminal) show(ruc string) {
	if !t.ctrl.ShowDetails(ruc) {
		t.printf("Cliente no encontrado.\n")
		return
	}
	t.renderDetails(t.ctrl.State().Selected)
}

func (t *terminal) delete(ruc string) {
	var deleted bool
	if ruc == "" {
		if t.ctrl.State().Selected == nil {
			t.printf("Indique el RUC del cliente a eliminar\n")
			return
		}
		deleted = t.ctrl.DeleteFromDetails()
	} else {
		deleted = t.ctrl.Delete(ruc)
	}

	s := t.ctrl.State()
	if deleted {
		t.printf("%s\n", s.SuccessMessage)
		t.renderList(s)
		return
	}

	if s.ErrorMessage != "" {
		t.printf("%s\n", s.ErrorMessage)
	}
}

func (t *terminal) renderList(s listing.State) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s.ErrorMessage != "" {
		fmt.Fprintf(t.out, "%s\n", s.ErrorMessage)
	}

	displayed := s.Displayed()
	switch {
	case len(s.Records) == 0:
		fmt.Fprintln(t.out, "No hay clientes registrados")
		return
	case len(displayed) == 0:
		fmt.Fprintln(t.out, "No se encontraron resultados")
		return
	}

	mark := func(m string) string { return "[" + m + "]" }

	tw := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUC\tRAZÓN SOCIAL\tTELÉFONO\tCORREO\tDIRECCIÓN")
	for _, c := range displayed {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			listing.Highlight(c.RUC, s.SearchTerm, mark),
			listing.Highlight(c.RazonSocial, s.SearchTerm, mark),
			c.Telefono, c.Correo, c.Direccion,
		)
	}
	_ = tw.Flush()

	sortInfo := "sin ordenar"
	if s.SortField != "" {
		sortInfo = fmt.Sprintf("orden: %s %s", s.SortField, s.SortOrder)
	}
	fmt.Fprintf(t.out, "%d de %d clientes, %s\n", len(displayed), len(s.Records), sortInfo)
}

func (t *terminal) renderForm(s listing.State) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !s.FormOpen {
		fmt.Fprintln(t.out, "No hay formulario abierto")
		return
	}

	title := "Nuevo cliente"
	if s.IsEditing {
		title = fmt.Sprintf("Editar cliente %s", s.Form.OriginalRUC)
	}
	fmt.Fprintln(t.out, title)

	for _, f := range listing.Fields {
		value := s.Form.Get(f)
		line := fmt.Sprintf("  %-13s %s", fieldLabels[f]+":", value)
		if s.FieldErrors.Get(f) {
			line += "  <- " + listing.FieldMessage(f, value)
		}
		fmt.Fprintln(t.out, line)
	}

	if s.FormError != "" {
		fmt.Fprintln(t.out, s.FormError)
	}
}

func (t *terminal) renderDetails(c *model.Cliente) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.out, "%-13s %s\n", "RUC:", c.RUC)
	fmt.Fprintf(t.out, "%-13s %s\n", "Razón social:", c.RazonSocial)
	fmt.Fprintf(t.out, "%-13s %s\n", "Teléfono:", orDash(c.Telefono))
	fmt.Fprintf(t.out, "%-13s %s\n", "Correo:", orDash(c.Correo))
	fmt.Fprintf(t.out, "%-13s %s\n", "Dirección:", orDash(c.Direccion))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	cmd, rest, _ := strings.Cut(line, " ")
	return strings.ToLower(cmd), strings.TrimSpace(rest)
}
