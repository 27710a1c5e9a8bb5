package model

import (
	"fmt"
	"strings"
)

// Cliente is customer model entity, RUC is its natural key
type Cliente struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	RUC         string `json:"ruc" bson:"ruc"`
	RazonSocial string `json:"razonSocial" bson:"razonSocial"`
	Telefono    string `json:"telefono" bson:"telefono"`
	Correo      string `json:"correo" bson:"correo"`
	Direccion   string `json:"direccion" bson:"direccion"`
}

// MergePatch applies provided changes to the copy of cliente
func (c Cliente) MergePatch(patch ClientePatch) Cliente {
	if patch.RazonSocial != nil {
		c.RazonSocial = *patch.RazonSocial
	}

	if patch.Telefono != nil {
		c.Telefono = *patch.Telefono
	}

	if patch.Correo != nil {
		c.Correo = *patch.Correo
	}

	if patch.Direccion != nil {
		c.Direccion = *patch.Direccion
	}
	return c
}

// ClientePatch holds fields which must be changed on partial update, nil means untouched
type ClientePatch struct {
	RazonSocial *string
	Telefono    *string
	Correo      *string
	Direccion   *string
}

// IsEmpty reports whether patch changes nothing
func (p ClientePatch) IsEmpty() bool {
	return p.RazonSocial == nil && p.Telefono == nil && p.Correo == nil && p.Direccion == nil
}

// PatchFromMap builds patch from raw field map. Keys are matched case-insensitively,
// unknown keys are ignored and null clears the field.
func PatchFromMap(changes map[string]any) ClientePatch {
	var p ClientePatch
	for k, v := range changes {
		s := patchValue(v)
		switch strings.ToLower(k) {
		case "razonsocial":
			p.RazonSocial = &s
		case "telefono":
			p.Telefono = &s
		case "correo":
			p.Correo = &s
		case "direccion":
			p.Direccion = &s
		}
	}
	return p
}

func patchValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
