package model

import "strings"

// Element is a damage element.
type Element string

const (
	Pyro     Element = "pyro"
	Hydro    Element = "hydro"
	Electro  Element = "electro"
	Cryo     Element = "cryo"
	Anemo    Element = "anemo"
	Geo      Element = "geo"
	Dendro   Element = "dendro"
	Physical Element = "physical"
)

// Elements lists all eight damage elements in display order.
var Elements = [...]Element{Pyro, Hydro, Electro, Cryo, Anemo, Geo, Dendro, Physical}

// ReactiveElements lists the elements able to take part in elemental reactions.
var ReactiveElements = [...]Element{Pyro, Hydro, Electro, Cryo, Anemo, Geo, Dendro}

// ParseElement normalizes an element name ("Pyro", " PYRO ") into an Element.
// Returns false for unknown names.
func ParseElement(s string) (Element, bool) {
	e := Element(strings.ToLower(strings.TrimSpace(s)))
	if !e.Valid() {
		return "", false
	}
	return e, true
}

// Valid reports whether e is one of the eight known elements.
func (e Element) Valid() bool {
	for _, known := range Elements {
		if e == known {
			return true
		}
	}
	return false
}

// Reactive reports whether e can trigger elemental reactions.
func (e Element) Reactive() bool {
	return e.Valid() && e != Physical
}
