package data

// MustDefaultReference returns the embedded reference data and panics if it
// does not parse. Intended for tests from other packages.
func MustDefaultReference() *Reference {
	ref, err := DefaultReference()
	if err != nil {
		panic("embedded reference data: " + err.Error())
	}
	return ref
}
